package services

import (
	"log"
	"time"

	"holidayplanner/internal/config"
	"holidayplanner/internal/models/request_models"
	"holidayplanner/internal/models/response_models"
	"holidayplanner/pkg/utils"
)

const editorRole = "editor"

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	ValidateSession(token string) (*utils.Claims, error)
}

// AccountService knows a single editor account taken from the environment.
type AccountService struct {
	username   string
	password   string
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewAccountService(auth config.AuthConfig) AccountServiceInterface {
	secret := []byte(auth.JWTSecret)
	if len(secret) == 0 {
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		log.Println("JWT_SECRET is not set; sessions will not survive a restart")
		secret = []byte(generated)
	}

	ttl := auth.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &AccountService{
		username:   auth.Username,
		password:   auth.Password,
		jwtSecret:  secret,
		sessionTTL: ttl,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	if a.username == "" || a.password == "" {
		log.Println("Login attempted but AUTH_USERNAME/AUTH_PASSWORD are not configured")
		return nil, utils.ErrInvalidCredentials
	}

	userOK := utils.MatchesSecret(a.username, request.Username)
	passOK := utils.MatchesSecret(a.password, request.Password)
	if !userOK || !passOK {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.CreateToken(a.jwtSecret, request.Username, editorRole, a.sessionTTL)
	if err != nil {
		log.Printf("Error signing session token: %v", err)
		return nil, err
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (a *AccountService) ValidateSession(token string) (*utils.Claims, error) {
	return utils.ValidateToken(a.jwtSecret, token)
}
