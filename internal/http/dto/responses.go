package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type MetaResponse struct {
	Platforms           []string            `json:"platforms"`
	CampaignStatuses    []string            `json:"campaign_statuses"`
	AssociationStatuses map[string][]string `json:"association_statuses"`
	DeliverableTypes    []string            `json:"deliverable_types"`
	ReminderPriorities  []string            `json:"reminder_priorities"`
}
