package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/internal/models/response_models"
	"holidayplanner/pkg/utils"
)

// maxResponseTokens leaves room for long itineraries with flight and transport detail.
const maxResponseTokens = 8000

type AIScheduleServiceInterface interface {
	RequestUpdate(ctx context.Context, prompt string, current db_models.Schedule, model string) (*response_models.AIScheduleUpdateResponse, error)
}

type AIScheduleService struct {
	completion      utils.CompletionClientInterface
	scheduleService ScheduleServiceInterface
	apiKey          string
	defaultModel    string
}

func NewAIScheduleService(
	completion utils.CompletionClientInterface,
	scheduleService ScheduleServiceInterface,
	apiKey string,
	defaultModel string,
) AIScheduleServiceInterface {
	return &AIScheduleService{
		completion:      completion,
		scheduleService: scheduleService,
		apiKey:          apiKey,
		defaultModel:    defaultModel,
	}
}

// requestShaping is how a model family wants its completion request built.
type requestShaping struct {
	TokenParam  utils.TokenLimitParam
	Temperature float32
}

type modelFamily struct {
	prefix  string
	shaping requestShaping
}

// Reasoning-era models only accept max_completion_tokens and a temperature of 1.
var reasoningShaping = requestShaping{TokenParam: utils.TokenParamMaxCompletionTokens, Temperature: 1}

var modelFamilies = []modelFamily{
	{prefix: "gpt-5", shaping: reasoningShaping},
	{prefix: "o1", shaping: reasoningShaping},
	{prefix: "o3", shaping: reasoningShaping},
	{prefix: "o4", shaping: reasoningShaping},
}

// defaultShaping keeps edits conservative and repeatable.
var defaultShaping = requestShaping{TokenParam: utils.TokenParamMaxTokens, Temperature: 0.1}

func shapingFor(model string) requestShaping {
	for _, family := range modelFamilies {
		if strings.HasPrefix(model, family.prefix) {
			return family.shaping
		}
	}
	return defaultShaping
}

func (s *AIScheduleService) RequestUpdate(ctx context.Context, prompt string, current db_models.Schedule, model string) (*response_models.AIScheduleUpdateResponse, error) {
	if !utils.IsConfiguredKey(s.apiKey) {
		return nil, utils.ErrAINotConfigured
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is empty", utils.ErrInvalidInput)
	}
	if model == "" {
		model = s.defaultModel
	}

	userPrompt, err := buildUserPrompt(prompt, current)
	if err != nil {
		return nil, err
	}

	shaping := shapingFor(model)
	startTime := time.Now()
	log.Printf("Requesting AI schedule update from %s model %s", s.completion.Provider(), model)

	raw, err := s.completion.Complete(ctx, utils.CompletionRequest{
		Model:        model,
		System:       systemPrompt(),
		User:         userPrompt,
		Temperature:  shaping.Temperature,
		TokenParam:   shaping.TokenParam,
		MaxTokens:    maxResponseTokens,
		JSONResponse: true,
	})
	if err != nil {
		log.Printf("AI completion failed after %s: %v", time.Since(startTime), err)
		return nil, err
	}
	log.Printf("AI completion took %s", time.Since(startTime))

	update, err := parseAIResponse(raw, s.completion.Provider())
	if err != nil {
		log.Printf("AI schedule update rejected: %v", err)
		return nil, err
	}

	if err := s.scheduleService.SaveSchedule(update.Schedule); err != nil {
		log.Printf("Error saving AI updated schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to save updated schedule: %w", utils.ErrSchedulePersistence, err)
	}

	return update, nil
}

// parseAIResponse turns the completion text into a validated schedule and explanation.
func parseAIResponse(raw string, provider string) (*response_models.AIScheduleUpdateResponse, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: no response received from %s", utils.ErrAIInvalidResponse, provider)
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: Invalid JSON response from AI: %s", utils.ErrAIInvalidResponse, raw)
	}

	body, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: Invalid response format from AI", utils.ErrAIInvalidResponse)
	}
	scheduleRaw, hasSchedule := body["schedule"]
	explanation, _ := body["explanation"].(string)
	if !hasSchedule || scheduleRaw == nil || explanation == "" {
		return nil, fmt.Errorf("%w: Invalid response format from AI", utils.ErrAIInvalidResponse)
	}

	schedule, err := DecodeSchedule(scheduleRaw)
	if err != nil {
		return nil, err
	}

	return &response_models.AIScheduleUpdateResponse{
		Schedule:    schedule,
		Explanation: explanation,
	}, nil
}

func buildUserPrompt(prompt string, current db_models.Schedule) (string, error) {
	if current == nil {
		current = db_models.Schedule{}
	}
	encoded, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode current schedule: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("\nCurrent schedule:\n")
	b.Write(encoded)
	b.WriteString("\n\nUser request: ")
	b.WriteString(prompt)
	b.WriteString("\n\nPlease update the schedule according to the user's request and provide an explanation of the changes.")
	return b.String(), nil
}

func systemPrompt() string {
	names := make([]string, 0, len(db_models.Categories))
	for _, c := range db_models.Categories {
		names = append(names, string(c))
	}
	return fmt.Sprintf(systemPromptTemplate, strings.Join(names, ", "))
}

const systemPromptTemplate = `You are a helpful assistant that updates holiday/travel schedules based on user requests.

Current schedule structure:
- The schedule is organized by day numbers (1, 2, 3, etc.)
- Each day contains an array of activities
- Each activity has: date (YYYY-MM-DD), startTime (decimal hours, e.g. 14.5 for 2:30 PM), duration (decimal hours), label (string), category, and optional notes, mapUrl and allTrailsUrl
- Categories available: %s

Rules:
1. Always preserve existing activities unless explicitly asked to modify/delete them
2. When adding new activities, maintain chronological order within each day
3. Use realistic time estimates for activities
4. If dates aren't specified, infer based on existing schedule context
5. Provide brief explanation of changes made
6. Only return valid JSON for the schedule structure
7. Be conservative - if unsure about a change, ask for clarification rather than making assumptions

Response format: Return ONLY a JSON object with this structure:
{
  "schedule": { /* updated schedule object */ },
  "explanation": "Brief description of changes made"
}`
