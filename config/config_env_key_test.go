package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"type": "sqlite",
			"pool": map[string]any{
				"maxOpenConns":   5,
				"acquireTimeout": "30s",
			},
			"postgres": map[string]any{
				"sslMode":  "disable",
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"counter": map[string]any{
			"defaultAppId": "ram-bank",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_TYPE", want: "database.type"},
		{envKey: "DATABASE_POOL_MAXOPENCONNS", want: "database.pool.maxOpenConns"},
		{envKey: "DATABASE_POOL_ACQUIRETIMEOUT", want: "database.pool.acquireTimeout"},
		{envKey: "DATABASE_POSTGRES_SSLMODE", want: "database.postgres.sslMode"},
		{envKey: "DATABASE_POSTGRES_USERNAME", want: "database.postgres.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "COUNTER_DEFAULTAPPID", want: "counter.defaultAppId"},
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
