package impl

import (
	"strings"
	"time"

	"fitsync/internal/domain/entity"
)

// metersPerUnit converts the distance units providers actually emit.
// Unknown units are absent on purpose so callers drop the value instead
// of persisting a wrong number.
var metersPerUnit = map[string]float64{
	"meter":     1,
	"metre":     1,
	"km":        1000,
	"kilometer": 1000,
	"kilometre": 1000,
	"mile":      1609.344,
	"yard":      0.9144,
}

// toMeters converts a provider distance to meters. The second return is
// false when the unit is unrecognized.
func toMeters(value float64, unit string) (float64, bool) {
	factor, ok := metersPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, false
	}

	return value * factor, true
}

// dateBucket derives the YYYY-MM-DD grouping key from the local start time.
func dateBucket(local time.Time) string {
	return local.Format(entity.DateBucketFormat)
}

// floatPtr returns a pointer to v, or nil when v is zero. Providers emit
// zero for fields they did not measure, so zero means absent here.
func floatPtr(v float64) *float64 {
	if v == 0 {
		return nil
	}

	return &v
}

// intPtr is floatPtr for integer fields.
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}

	return &v
}

// classifyLabel maps free-form provider activity names onto the canonical
// activity types. Matching is case-insensitive on whole words first, then
// substrings, so "Trail Running" classifies as running.
func classifyLabel(label string) entity.ActivityType {
	l := strings.ToLower(label)

	switch {
	case strings.Contains(l, "run"):
		return entity.ActivityRunning
	case strings.Contains(l, "hik"):
		return entity.ActivityHiking
	case strings.Contains(l, "walk"):
		return entity.ActivityWalking
	case strings.Contains(l, "swim"):
		return entity.ActivitySwimming
	case strings.Contains(l, "ride"), strings.Contains(l, "bike"), strings.Contains(l, "cycl"):
		return entity.ActivityCycling
	case strings.Contains(l, "workout"), strings.Contains(l, "training"), strings.Contains(l, "crossfit"),
		strings.Contains(l, "yoga"), strings.Contains(l, "weight"):
		return entity.ActivityWorkout
	default:
		return entity.ActivityOther
	}
}
