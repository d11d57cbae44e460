package response_models

type FacilitatorResponse struct {
	UserID        string `json:"user_id"`
	InitiatedName string `json:"initiated_name"`
}

type DevoteeSummary struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	InitiatedName string `json:"initiated_name"`
}

// CounselledDevotee keeps the original wire shape of the caseload listing,
// where each row is wrapped in a "devotee" object.
type CounselledDevotee struct {
	Devotee DevoteeSummary `json:"devotee"`
}
