package prompt_fx

import (
	"fmt"
	"log"

	"go.uber.org/fx"
	"holidayplanner/internal/config"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideAIScheduleService)

// ProvideCompletionClient picks the chat completion backend from AI_PROVIDER.
// A missing key is not fatal; the editor keeps working and AI requests report it.
func ProvideCompletionClient(ai config.AIConfig) (utils.CompletionClientInterface, error) {
	if !utils.IsConfiguredKey(ai.APIKey()) {
		log.Printf("No API key configured for %s; AI schedule updates are disabled", ai.Provider)
	} else {
		log.Printf("Initializing %s completion client with model: %s", ai.Provider, ai.Model)
	}

	switch ai.Provider {
	case "openai":
		return utils.NewOpenAICompletionClient(ai.OpenAIAPIKey, ai.OpenAIBaseURL), nil
	case "gemini":
		return utils.NewGeminiCompletionClient(ai.GeminiAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", ai.Provider)
	}
}

func ProvideAIScheduleService(
	completion utils.CompletionClientInterface,
	scheduleService services.ScheduleServiceInterface,
	ai config.AIConfig,
) services.AIScheduleServiceInterface {
	return services.NewAIScheduleService(completion, scheduleService, ai.APIKey(), ai.Model)
}
