package models

import "time"

// RiskState is the singleton cooling-off record. When IsInRisk is true,
// ConsecutiveLosses is at least 2 and RiskStartTime is set; when false,
// RiskStartTime is absent.
type RiskState struct {
	IsInRisk          bool       `json:"isInRisk"`
	ConsecutiveLosses int        `json:"consecutiveLosses"`
	RiskStartTime     *time.Time `json:"riskStartTime,omitempty"`
	LastRiskDate      *time.Time `json:"lastRiskDate,omitempty"`
}

// RiskStateView is the read-model returned to clients: the stored state plus
// the rolling 24-hour countdown derived from RiskStartTime. The countdown is
// display-only and deliberately independent from the calendar-day unblock.
type RiskStateView struct {
	RiskState
	RemainingCoolOff *CoolOffRemaining `json:"remainingCoolOff,omitempty"`
}

// CoolOffRemaining is the rolling-24h countdown shown while in risk.
type CoolOffRemaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
