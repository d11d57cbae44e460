package db_models

import "github.com/google/uuid"

// SadhanaEntry is one daily practice-log record. EntryDate is a date-only
// string (YYYY-MM-DD); the composite unique index makes the one-entry-per-day
// assumption of update/delete an actual storage constraint.
type SadhanaEntry struct {
	BaseModel
	DevoteeID      uuid.UUID `json:"devotee_id" gorm:"type:uuid;uniqueIndex:idx_devotee_entry_date"`
	EntryDate      string    `json:"entry_date" gorm:"uniqueIndex:idx_devotee_entry_date"`
	WakeUpTime     string    `json:"wake_up_time"`
	ChantingRounds int       `json:"chanting_rounds"`
	ReadingTime    int       `json:"reading_time"`
	ReadingTopic   string    `json:"reading_topic"`
	HearingTime    int       `json:"hearing_time"`
	HearingTopic   string    `json:"hearing_topic"`
	ServiceName    string    `json:"service_name"`
	ServiceTime    int       `json:"service_time"`
}
