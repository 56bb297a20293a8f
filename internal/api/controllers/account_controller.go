package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"holidayplanner/internal/models/request_models"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/middleware"
	"holidayplanner/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// POST /auth/login
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	maxAge := int(time.Until(time.Unix(session.ExpiresAt, 0)).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", c.Request.TLS != nil, true)

	utils.RespondSuccess(c, session, "Login successful")
}

// POST /auth/logout
func (a *AccountController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	utils.RespondSuccess(c, nil, "Logged out")
}
