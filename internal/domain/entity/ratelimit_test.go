package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveCount_SameDayKeepsCount(t *testing.T) {
	state := &RateLimitState{
		LastCalledAt:   time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		CallCountToday: 3,
	}
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, state.EffectiveCount(now, time.UTC))
}

func TestEffectiveCount_ResetsOnNextCalendarDay(t *testing.T) {
	state := &RateLimitState{
		LastCalledAt:   time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC),
		CallCountToday: 3,
	}
	now := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)

	assert.Zero(t, state.EffectiveCount(now, time.UTC))
}

func TestEffectiveCount_DayBoundaryFollowsReferenceZone(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 23:00 and 01:00 UTC straddle UTC midnight but are the same calendar
	// day in Los Angeles (16:00 and 18:00 local).
	state := &RateLimitState{
		LastCalledAt:   time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC),
		CallCountToday: 2,
	}
	now := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)

	assert.Zero(t, state.EffectiveCount(now, time.UTC))
	assert.Equal(t, 2, state.EffectiveCount(now, la))
}

func TestEffectiveCount_NilOrUnusedState(t *testing.T) {
	var state *RateLimitState
	assert.Zero(t, state.EffectiveCount(time.Now(), time.UTC))

	assert.Zero(t, (&RateLimitState{CallCountToday: 5}).EffectiveCount(time.Now(), time.UTC))
}

func TestStartOfNextDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), StartOfNextDay(now, time.UTC))
}

func TestStartOfNextDay_ReferenceZoneMidnight(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 01:00 UTC on the 15th is still the 14th in Los Angeles, so the
	// reset is LA midnight of the 15th.
	now := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, la)

	assert.Equal(t, want, StartOfNextDay(now, la))
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name     string
		tier     SubscriptionTier
		callType CallType
		want     int
	}{
		{name: "free heart rate", tier: TierFree, callType: CallHeartRate, want: 1},
		{name: "gold sleep", tier: TierGold, callType: CallSleep, want: 1},
		{name: "platinum activities", tier: TierPlatinum, callType: CallActivities, want: 3},
		{name: "free daily summary", tier: TierFree, callType: CallDailySummary, want: 3},
		{name: "platinum daily summary", tier: TierPlatinum, callType: CallDailySummary, want: 6},
		{name: "unknown tier falls back to free", tier: SubscriptionTier("diamond"), callType: CallSwim, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := PolicyFor(tt.tier, tt.callType)
			assert.Equal(t, tt.want, policy.Limit)
			assert.Equal(t, 24, policy.PeriodHours)
		})
	}
}
