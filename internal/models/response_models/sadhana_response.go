package response_models

import "sadhana/internal/models/db_models"

type MonthlyEntriesResponse struct {
	Entries    []db_models.SadhanaEntry `json:"entries"`
	TotalPages int                      `json:"totalPages"`
}
