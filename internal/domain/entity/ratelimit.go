package entity

import "time"

// RateLimitState tracks one (user, provider, call type) calendar-day call
// counter. The stored count is only authoritative when LastCalledAt falls on
// today's calendar date in the deployment's reference time zone; on any
// other date the effective count is zero regardless of the stored value.
type RateLimitState struct {
	Provider       Provider
	CallType       CallType
	LastCalledAt   time.Time
	CallCountToday int
}

// EffectiveCount returns the count to compare against the tier limit at the
// given instant, applying the day-boundary reset rule.
func (s *RateLimitState) EffectiveCount(now time.Time, loc *time.Location) int {
	if s == nil || s.LastCalledAt.IsZero() {
		return 0
	}
	if !sameCalendarDay(s.LastCalledAt, now, loc) {
		return 0
	}

	return s.CallCountToday
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

// StartOfNextDay returns the instant at which the calendar-day window
// resets, i.e. midnight of the following day in the reference zone.
func StartOfNextDay(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// RateLimitPolicy is one row of the static tier budget table.
type RateLimitPolicy struct {
	Limit       int // Calls allowed per window.
	PeriodHours int // Window length; always one calendar day for now.
}

// defaultPolicies applies to every call type without a specific override.
var defaultPolicies = map[SubscriptionTier]RateLimitPolicy{
	TierFree:     {Limit: 1, PeriodHours: 24},
	TierSilver:   {Limit: 1, PeriodHours: 24},
	TierGold:     {Limit: 1, PeriodHours: 24},
	TierPlatinum: {Limit: 3, PeriodHours: 24},
}

// dailySummaryPolicies grants a higher allowance for the cheap aggregate
// daily-summary call.
var dailySummaryPolicies = map[SubscriptionTier]RateLimitPolicy{
	TierFree:     {Limit: 3, PeriodHours: 24},
	TierSilver:   {Limit: 3, PeriodHours: 24},
	TierGold:     {Limit: 3, PeriodHours: 24},
	TierPlatinum: {Limit: 6, PeriodHours: 24},
}

// PolicyFor resolves the budget for a tier and call type. Unknown tiers
// fall back to the free budget.
func PolicyFor(tier SubscriptionTier, callType CallType) RateLimitPolicy {
	table := defaultPolicies
	if callType == CallDailySummary {
		table = dailySummaryPolicies
	}

	if policy, ok := table[tier]; ok {
		return policy
	}

	return table[TierFree]
}
