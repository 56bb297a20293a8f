package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidayplanner/internal/models/db_models"
	"holidayplanner/internal/models/request_models"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/utils"
)

type AIScheduleController struct {
	aiService       services.AIScheduleServiceInterface
	scheduleService services.ScheduleServiceInterface
}

func NewAIScheduleController(
	aiService services.AIScheduleServiceInterface,
	scheduleService services.ScheduleServiceInterface,
) *AIScheduleController {
	return &AIScheduleController{
		aiService:       aiService,
		scheduleService: scheduleService,
	}
}

// POST /schedule/ai
func (a *AIScheduleController) UpdateScheduleHandler(c *gin.Context) {
	var req request_models.AIScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "prompt is required")
		return
	}

	var current db_models.Schedule
	var err error
	if req.CurrentSchedule != nil {
		current, err = services.DecodeSchedule(req.CurrentSchedule)
	} else {
		current, err = a.scheduleService.LoadSchedule()
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	update, err := a.aiService.RequestUpdate(c.Request.Context(), req.Prompt, current, req.Model)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, update, update.Explanation)
}
