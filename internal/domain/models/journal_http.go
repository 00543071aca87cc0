package models

// Requests for journal HTTP endpoints. Defined in domain for consistency and reuse.

type CreateTransactionRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=profit loss"`
	Description string  `json:"description" validate:"max=500"`
}

type ListTransactionsRequest struct {
	StartDate string `query:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Type      string `query:"type" json:"type" validate:"omitempty,oneof=profit loss"`
}

type UpdateTransactionRequest struct {
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Type        *string  `json:"type" validate:"omitempty,oneof=profit loss"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

type StatisticsRequest struct {
	Period string `query:"period" json:"period" default:"daily" validate:"oneof=daily weekly monthly"`
	Date   string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ResetAllRequest struct {
	Action      string `json:"action" validate:"required,oneof=reset"`
	ConfirmCode string `json:"confirmCode" validate:"required"`
}

type UpdateSettingsRequest struct {
	Currency          *string `json:"currency" validate:"omitempty,min=1,max=8"`
	RiskAlertEnabled  *bool   `json:"riskAlertEnabled"`
	Theme             *string `json:"theme" validate:"omitempty,oneof=light dark"`
	AutoBackup        *bool   `json:"autoBackup"`
	DataRetentionDays *int    `json:"dataRetentionDays" validate:"omitempty,gte=1,lte=3650"`
}
