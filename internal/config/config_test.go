package config

import (
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{URI: "mongodb://localhost:27017"},
		Query:    QueryConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingURI(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URI = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database.uri")
	}
}

func TestValidate_NonMongoURI(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URI = "redis://localhost:6379"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for non-mongodb URI")
	}
}

func TestValidate_SRVURI(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URI = "mongodb+srv://cluster0.example.net"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for srv URI: %v", err)
	}
}

func TestValidate_DefaultPageSizeExceedsMax(t *testing.T) {
	cfg := validConfig()
	cfg.Query.DefaultPageSize = 200
	cfg.Query.MaxPageSize = 100

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when default_page_size exceeds max_page_size")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Database.Database != "aac" {
		t.Errorf("database: got %q, want %q", cfg.Database.Database, "aac")
	}
	if cfg.Database.Collection != "animals" {
		t.Errorf("collection: got %q, want %q", cfg.Database.Collection, "animals")
	}
	if cfg.Cache.TTLSec != 300 {
		t.Errorf("cache ttl: got %d, want 300", cfg.Cache.TTLSec)
	}
	if cfg.Query.DefaultPageSize != 20 || cfg.Query.MaxPageSize != 100 {
		t.Errorf("page sizes: got %d/%d, want 20/100", cfg.Query.DefaultPageSize, cfg.Query.MaxPageSize)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http timeouts not defaulted: %+v", cfg.HTTP)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{Collection: "outcomes"},
		Query:    QueryConfig{DefaultPageSize: 50},
	}
	cfg.ApplyDefaults()

	if cfg.Database.Collection != "outcomes" {
		t.Errorf("collection overwritten: got %q", cfg.Database.Collection)
	}
	if cfg.Query.DefaultPageSize != 50 {
		t.Errorf("default page size overwritten: got %d", cfg.Query.DefaultPageSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SHELTERDEX_TEST_URI", "mongodb://db:27017")

	in := []byte("uri: ${SHELTERDEX_TEST_URI}")
	got := string(expandEnvVars(in))
	want := "uri: mongodb://db:27017"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandEnvVars_Default(t *testing.T) {
	tests := []struct {
		name string
		in   string
		env  string
		want string
	}{
		{
			name: "unset uses default",
			in:   "uri: ${SHELTERDEX_UNSET_VAR:-mongodb://localhost:27017}",
			want: "uri: mongodb://localhost:27017",
		},
		{
			name: "set wins over default",
			in:   "uri: ${SHELTERDEX_SET_VAR:-mongodb://localhost:27017}",
			env:  "mongodb://other:27017",
			want: "uri: mongodb://other:27017",
		},
		{
			name: "unset without default expands to empty",
			in:   "password: ${SHELTERDEX_UNSET_VAR}",
			want: "password: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("SHELTERDEX_SET_VAR", tt.env)
			}
			got := string(expandEnvVars([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("got %q, want %q", got, "prod")
	}

	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("got %q, want %q", got, "local")
	}
}
