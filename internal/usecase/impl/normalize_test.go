package impl

import (
	"testing"
	"time"

	"fitsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestToMeters(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  float64
		ok    bool
	}{
		{name: "kilometers", value: 5, unit: "km", want: 5000, ok: true},
		{name: "kilometer spelled out", value: 2.5, unit: "Kilometer", want: 2500, ok: true},
		{name: "miles", value: 1, unit: "mile", want: 1609.344, ok: true},
		{name: "meters pass through", value: 400, unit: "meter", want: 400, ok: true},
		{name: "yards", value: 100, unit: "yard", want: 91.44, ok: true},
		{name: "unknown unit dropped", value: 3, unit: "furlong", want: 0, ok: false},
		{name: "empty unit dropped", value: 3, unit: "", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toMeters(tt.value, tt.unit)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestClassifyLabel(t *testing.T) {
	tests := []struct {
		label string
		want  entity.ActivityType
	}{
		{label: "Run", want: entity.ActivityRunning},
		{label: "Trail Running", want: entity.ActivityRunning},
		{label: "TrailRun", want: entity.ActivityRunning},
		{label: "Hike", want: entity.ActivityHiking},
		{label: "Walk", want: entity.ActivityWalking},
		{label: "Swim", want: entity.ActivitySwimming},
		{label: "Open Water Swimming", want: entity.ActivitySwimming},
		{label: "Ride", want: entity.ActivityCycling},
		{label: "EBikeRide", want: entity.ActivityCycling},
		{label: "Cycling", want: entity.ActivityCycling},
		{label: "Workout", want: entity.ActivityWorkout},
		{label: "Strength Training", want: entity.ActivityWorkout},
		{label: "Yoga", want: entity.ActivityWorkout},
		{label: "Pickleball", want: entity.ActivityOther},
		{label: "", want: entity.ActivityOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyLabel(tt.label))
		})
	}
}

func TestFloatPtr_ZeroMeansAbsent(t *testing.T) {
	assert.Nil(t, floatPtr(0))

	got := floatPtr(72.5)
	assert.NotNil(t, got)
	assert.Equal(t, 72.5, *got)
}

func TestIntPtr_ZeroMeansAbsent(t *testing.T) {
	assert.Nil(t, intPtr(0))

	got := intPtr(12)
	assert.NotNil(t, got)
	assert.Equal(t, 12, *got)
}

func TestDateBucket_UsesLocalWallClock(t *testing.T) {
	// 23:30 local on March 9th is March 10th in UTC; the bucket follows
	// the athlete's wall clock, not UTC.
	local := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))
	assert.Equal(t, "2024-03-09", dateBucket(local))
	assert.Equal(t, "2024-03-10", dateBucket(local.UTC()))
}
