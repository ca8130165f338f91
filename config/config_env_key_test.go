package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"auth": map[string]any{
				"sslMode":  "disable",
				"userName": "user",
			},
		},
		"exchangeRates": map[string]any{
			"baseUrl": "",
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_AUTH_SSLMODE", want: "database.auth.sslMode"},
		{envKey: "DATABASE_AUTH_USERNAME", want: "database.auth.userName"},
		{envKey: "EXCHANGERATES_BASEURL", want: "exchangeRates.baseUrl"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
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
