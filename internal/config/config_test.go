package config

import "testing"

func TestValidate_InvalidDriver(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "postgres",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid driver")
	}

	expected := `database.driver must be "redis" or "memory", got "postgres"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidDrivers(t *testing.T) {
	cases := []struct {
		driver string
		addrs  []string
	}{
		{driver: "redis", addrs: []string{"localhost:6379"}},
		{driver: "memory"},
	}

	for _, tc := range cases {
		t.Run("driver="+tc.driver, func(t *testing.T) {
			cfg := Config{
				HTTP: HTTPConfig{Port: 8080},
				Database: DatabaseConfig{
					Driver: tc.driver,
					Addrs:  tc.addrs,
				},
			}

			err := cfg.Validate()
			if err != nil {
				t.Fatalf("unexpected error for valid driver %q: %v", tc.driver, err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Driver: "memory",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "redis",
			Addrs:  []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_UnknownVocabularyCategory(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "memory",
		},
		Catalog: CatalogConfig{
			Vocabulary: map[string][]string{
				"team": {"Choir"},
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown vocabulary category")
	}
}

func TestValidate_AttachmentsEnabled(t *testing.T) {
	base := AttachmentsConfig{
		Enabled:         true,
		Endpoint:        "https://storage.example.com",
		Bucket:          "dochub-files",
		AccessKeyID:     "key-id",
		SecretAccessKey: "secret",
	}

	cases := []struct {
		name   string
		mutate func(*AttachmentsConfig)
	}{
		{name: "missing bucket", mutate: func(a *AttachmentsConfig) { a.Bucket = "" }},
		{name: "missing endpoint", mutate: func(a *AttachmentsConfig) { a.Endpoint = "" }},
		{name: "missing access key", mutate: func(a *AttachmentsConfig) { a.AccessKeyID = "" }},
		{name: "missing secret", mutate: func(a *AttachmentsConfig) { a.SecretAccessKey = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				HTTP: HTTPConfig{Port: 8080},
				Database: DatabaseConfig{
					Driver: "memory",
				},
				Attachments: base,
			}
			tc.mutate(&cfg.Attachments)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error for incomplete attachment config")
			}
		})
	}

	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "memory",
		},
		Attachments: base,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for complete attachment config: %v", err)
	}
}

func TestValidate_AttachmentsDisabled(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "memory",
		},
		Attachments: AttachmentsConfig{Enabled: false},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for disabled attachments: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected Driver='redis', got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Catalog.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Catalog.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Catalog.MaxPageSize)
	}
	if cfg.Storage.KeyPrefix != "dochub:" {
		t.Errorf("expected KeyPrefix='dochub:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Attachments.MaxSizeMB != 15 {
		t.Errorf("expected MaxSizeMB=15, got %d", cfg.Attachments.MaxSizeMB)
	}
	if cfg.Attachments.URLExpiryMinutes != 5 {
		t.Errorf("expected URLExpiryMinutes=5, got %d", cfg.Attachments.URLExpiryMinutes)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:        HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:    DatabaseConfig{Driver: "memory", ReadinessTimeout: 15},
		Catalog:     CatalogConfig{DefaultPageSize: 50, MaxPageSize: 500},
		Storage:     StorageConfig{KeyPrefix: "custom:"},
		Attachments: AttachmentsConfig{MaxSizeMB: 25, URLExpiryMinutes: 30},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("expected Driver='memory', got %q", cfg.Database.Driver)
	}
	if cfg.Catalog.DefaultPageSize != 50 {
		t.Errorf("expected DefaultPageSize=50, got %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Attachments.MaxSizeMB != 25 {
		t.Errorf("expected MaxSizeMB=25, got %d", cfg.Attachments.MaxSizeMB)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCHUB_TEST_SECRET", "s3cret")

	in := []byte("password: ${DOCHUB_TEST_SECRET}\nbucket: ${DOCHUB_TEST_BUCKET:-fallback-bucket}\n")
	out := string(expandEnvVars(in))

	expected := "password: s3cret\nbucket: fallback-bucket\n"
	if out != expected {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", out, expected)
	}
}
