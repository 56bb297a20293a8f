package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"holidayplanner/internal/models/request_models"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GET /schedule
func (s *ScheduleController) GetSchedule(c *gin.Context) {
	schedule, err := s.scheduleService.LoadSchedule()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule loaded")
}

// PUT /schedule replaces the whole schedule with a validated payload.
func (s *ScheduleController) ReplaceSchedule(c *gin.Context) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := s.scheduleService.ImportSchedule(raw)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule saved")
}

// GET /schedule/days
func (s *ScheduleController) GetDayViews(c *gin.Context) {
	views, err := s.scheduleService.DayViews()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, views, "")
}

// GET /schedule/summary
func (s *ScheduleController) GetSummary(c *gin.Context) {
	summary, err := s.scheduleService.Summary()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}

// GET /schedule/categories
func (s *ScheduleController) GetCategories(c *gin.Context) {
	utils.RespondSuccess(c, s.scheduleService.Categories(), "")
}

// POST /schedule/days
func (s *ScheduleController) AddDay(c *gin.Context) {
	schedule, day, err := s.scheduleService.AddDay()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"day": day, "schedule": schedule}, fmt.Sprintf("Day %d added", day))
}

// DELETE /schedule/days/:day
func (s *ScheduleController) DeleteDay(c *gin.Context) {
	day, ok := intParam(c, "day")
	if !ok {
		return
	}

	schedule, err := s.scheduleService.DeleteDay(day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, fmt.Sprintf("Day %d deleted", day))
}

// POST /schedule/days/:day/activities
func (s *ScheduleController) AddActivity(c *gin.Context) {
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity, err := req.ToActivity()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	schedule, err := s.scheduleService.AddActivity(day, activity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Activity added")
}

// PUT /schedule/days/:day/activities/:index
func (s *ScheduleController) UpdateActivity(c *gin.Context) {
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	index, ok := intParam(c, "index")
	if !ok {
		return
	}
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity, err := req.ToActivity()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	schedule, err := s.scheduleService.UpdateActivity(day, index, activity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Activity updated")
}

// DELETE /schedule/days/:day/activities/:index
func (s *ScheduleController) DeleteActivity(c *gin.Context) {
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	schedule, err := s.scheduleService.DeleteActivity(day, index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Activity deleted")
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("%s must be a number", name))
		return 0, false
	}
	return value, true
}
