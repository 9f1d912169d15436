package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
		"pagination": map[string]any{
			"maxTake": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "PAGINATION_MAXTAKE", want: "pagination.maxTake"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Fatalf("storage driver = %q, want %q", cfg.Storage.Driver, StorageDriverPostgres)
	}
	if cfg.Pagination.DefaultTake != defaultTake || cfg.Pagination.MaxTake != defaultMaxTake {
		t.Fatalf("pagination = %+v, want defaults", *cfg.Pagination)
	}
	if cfg.Auth == nil {
		t.Fatal("auth section should be initialised")
	}
}

func TestApplyDefaults_ClampsDefaultTake(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultTake: 50, MaxTake: 10}}
	applyDefaults(cfg)

	if cfg.Pagination.DefaultTake != 10 {
		t.Fatalf("default take = %d, want 10", cfg.Pagination.DefaultTake)
	}
}
