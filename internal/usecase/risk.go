package usecase

import (
	"time"

	"FoxJournal/internal/domain/models"
	"FoxJournal/pkg/util"
)

// riskThreshold is the consecutive-loss count that starts the cooling-off
// period.
const riskThreshold = 2

// coolOffWindow is the rolling window behind the displayed countdown. The
// actual unblock happens at the next day boundary, not when this window
// elapses; the two clocks are intentionally different and must stay apart.
const coolOffWindow = 24 * time.Hour

// nextRiskState folds one appended transaction into the risk state. A profit
// drops back to normal unconditionally. A loss increments the counter and
// activates cooling-off at the threshold; further losses while already
// active keep counting without restarting the timer.
func nextRiskState(cur models.RiskState, txType models.TransactionType, now time.Time) (models.RiskState, bool) {
	if txType == models.TypeProfit {
		return models.RiskState{LastRiskDate: cur.LastRiskDate}, false
	}

	next := cur
	next.ConsecutiveLosses++

	if next.ConsecutiveLosses >= riskThreshold && !cur.IsInRisk {
		start := now
		day := util.DayOf(now)
		next.IsInRisk = true
		next.RiskStartTime = &start
		next.LastRiskDate = &day
		return next, true
	}

	return next, false
}

// autoResetDue reports whether at least one midnight has passed since the
// cooling-off started. Calendar-day comparison, never duration arithmetic:
// two losses at 23:50 unblock ten minutes later.
func autoResetDue(cur models.RiskState, now time.Time) bool {
	if !cur.IsInRisk || cur.RiskStartTime == nil {
		return false
	}
	return util.DaysBetween(*cur.RiskStartTime, now) >= 1
}

// clearRisk returns the post-reset state. LastRiskDate survives for history.
func clearRisk(cur models.RiskState) models.RiskState {
	return models.RiskState{LastRiskDate: cur.LastRiskDate}
}

// remainingCoolOff computes the rolling-24h countdown from RiskStartTime.
// Display-only; the unblock decision lives in autoResetDue.
func remainingCoolOff(state models.RiskState, now time.Time) *models.CoolOffRemaining {
	if !state.IsInRisk || state.RiskStartTime == nil {
		return nil
	}

	remaining := state.RiskStartTime.Add(coolOffWindow).Sub(now)
	if remaining <= 0 {
		return &models.CoolOffRemaining{}
	}

	return &models.CoolOffRemaining{
		Hours:   int(remaining / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
		Seconds: int(remaining % time.Minute / time.Second),
	}
}
