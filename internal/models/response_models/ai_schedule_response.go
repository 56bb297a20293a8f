package response_models

import "holidayplanner/internal/models/db_models"

type AIScheduleUpdateResponse struct {
	Schedule    db_models.Schedule `json:"schedule"`
	Explanation string             `json:"explanation"`
}
