package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"providers": map[string]any{
			"googleFit": map[string]any{
				"oauth": map[string]any{
					"clientId": "",
				},
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"sync": map[string]any{
			"dayZone": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PROVIDERS_GOOGLEFIT_OAUTH_CLIENTID", want: "providers.googleFit.oauth.clientId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SYNC_DAYZONE", want: "sync.dayZone"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDayLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.DayLocation()
	if err != nil {
		t.Fatalf("DayLocation() error = %v", err)
	}
	if loc != time.UTC {
		t.Fatalf("DayLocation() = %v, want UTC", loc)
	}

	cfg.Sync.DayZone = "America/Los_Angeles"
	loc, err = cfg.DayLocation()
	if err != nil {
		t.Fatalf("DayLocation() error = %v", err)
	}
	if loc.String() != "America/Los_Angeles" {
		t.Fatalf("DayLocation() = %v, want America/Los_Angeles", loc)
	}

	cfg.Sync.DayZone = "Not/AZone"
	if _, err = cfg.DayLocation(); err == nil {
		t.Fatal("DayLocation() expected error for invalid zone")
	}
}
