package request_models

// Field names follow the original client wire format (camelCase).
type SadhanaEntryRequest struct {
	Email          string `json:"email" binding:"required,email"`
	EntryDate      string `json:"entryDate" binding:"required"`
	WakeUpTime     string `json:"wakeUpTime"`
	ChantingRounds int    `json:"chantingRounds"`
	ReadingTime    int    `json:"readingTime"`
	ReadingTopic   string `json:"readingTopic"`
	HearingTime    int    `json:"hearingTime"`
	HearingTopic   string `json:"hearingTopic"`
	ServiceName    string `json:"serviceName"`
	ServiceTime    int    `json:"serviceTime"`
}

type SadhanaDeleteRequest struct {
	Email     string `json:"email" binding:"required,email"`
	EntryDate string `json:"entryDate" binding:"required"`
}
