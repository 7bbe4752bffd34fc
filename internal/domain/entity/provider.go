// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Provider identifies one of the supported fitness data providers.
type Provider string

const (
	ProviderFitbit    Provider = "fitbit"
	ProviderStrava    Provider = "strava"
	ProviderGoogleFit Provider = "googlefit"
)

// AllProviders lists every provider the engine knows how to sync.
var AllProviders = []Provider{ProviderFitbit, ProviderStrava, ProviderGoogleFit}

// ErrUnknownProvider is returned when a provider string cannot be parsed.
var ErrUnknownProvider = errors.New("unknown provider")

// ParseProvider converts a string into a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderFitbit:
		return ProviderFitbit, nil
	case ProviderStrava:
		return ProviderStrava, nil
	case ProviderGoogleFit:
		return ProviderGoogleFit, nil
	default:
		return "", errors.Wrapf(ErrUnknownProvider, "%q", s)
	}
}

// String returns the wire form of the provider name.
func (p Provider) String() string {
	return string(p)
}

// DisplayName returns the human-readable provider name.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderFitbit:
		return "Fitbit"
	case ProviderStrava:
		return "Strava"
	case ProviderGoogleFit:
		return "Google Fit"
	default:
		return string(p)
	}
}

// CallType identifies one budgeted class of provider API calls.
// Rate limits are tracked per (user, provider, call type).
type CallType string

const (
	// CallDailySummary fetches the aggregate activity summary for one day.
	CallDailySummary CallType = "daily_activity_summary"
	// CallHeartRate fetches the heart-rate time series for one day.
	CallHeartRate CallType = "heart_rate"
	// CallSleep fetches all sleep logs ending on one date.
	CallSleep CallType = "sleep"
	// CallSwim fetches swim sessions through the dedicated swim path.
	CallSwim CallType = "swim"
	// CallActivities fetches the generic logged-activities list. For Google
	// Fit this covers the session list plus its per-metric aggregate
	// queries, which share a single budget slot.
	CallActivities CallType = "activities"
)

// CallTypesFor returns the call types a provider supports, in the order
// they are synced. Swim runs before the generic activities path so the
// normalizer can skip already-ingested swim records.
func CallTypesFor(p Provider) []CallType {
	switch p {
	case ProviderFitbit:
		return []CallType{CallDailySummary, CallHeartRate, CallSleep, CallSwim, CallActivities}
	case ProviderStrava:
		return []CallType{CallActivities}
	case ProviderGoogleFit:
		return []CallType{CallActivities}
	default:
		return nil
	}
}
