package models

import "github.com/creasty/defaults"

// Settings is the singleton user preferences record.
type Settings struct {
	Currency          string `json:"currency" default:"¥"`
	RiskAlertEnabled  bool   `json:"riskAlertEnabled" default:"true"`
	Theme             string `json:"theme" default:"light"`
	AutoBackup        bool   `json:"autoBackup" default:"true"`
	DataRetentionDays int    `json:"dataRetentionDays" default:"365"`
}

// DefaultSettings constructs the settings record used when nothing is stored
// and after a full reset.
func DefaultSettings() Settings {
	var s Settings
	_ = defaults.Set(&s)
	return s
}

// SettingsPatch carries the updatable settings fields. Nil fields are left
// untouched by an update.
type SettingsPatch struct {
	Currency          *string `json:"currency"`
	RiskAlertEnabled  *bool   `json:"riskAlertEnabled"`
	Theme             *string `json:"theme"`
	AutoBackup        *bool   `json:"autoBackup"`
	DataRetentionDays *int    `json:"dataRetentionDays"`
}
