package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.AuthSecret != defaultAuthSecret {
		t.Errorf("expected default auth secret %q, got %q", defaultAuthSecret, cfg.AuthSecret)
	}
	if cfg.SessionTTL != defaultSessionTTL {
		t.Errorf("expected default session ttl %v, got %v", defaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("expected production environment, got %q", cfg.Environment)
	}
	if cfg.IsDevelopment() {
		t.Errorf("did not expect development mode by default")
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("expected default log level %q, got %q", defaultLogLevel, cfg.LogLevel)
	}
	if cfg.CookieSecure {
		t.Errorf("did not expect secure cookie by default")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":      ":7070",
		"AUTH_SECRET":      "env-secret",
		"SESSION_TTL":      "2h",
		"SHUTDOWN_TIMEOUT": "3s",
		"ENVIRONMENT":      "Development",
		"LOG_LEVEL":        "DEBUG",
		"COOKIE_SECURE":    "true",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Errorf("expected run address :7070, got %q", cfg.RunAddress)
	}
	if cfg.AuthSecret != "env-secret" {
		t.Errorf("expected env secret, got %q", cfg.AuthSecret)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected session ttl 2h, got %v", cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected shutdown timeout 3s, got %v", cfg.ShutdownTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %q", cfg.LogLevel)
	}
	if !cfg.CookieSecure {
		t.Errorf("expected secure cookie")
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS": ":7070",
		"SESSION_TTL": "2h",
	}

	args := []string{
		"-a", ":9090",
		"--auth-secret", "flag-secret",
		"--session-ttl", "15m",
		"--shutdown-timeout", "20s",
		"--env", "development",
		"--log-level", "warn",
		"--cookie-secure",
	}

	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.AuthSecret != "flag-secret" {
		t.Errorf("expected auth secret override, got %q", cfg.AuthSecret)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Errorf("expected session ttl 15m, got %v", cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn log level, got %q", cfg.LogLevel)
	}
	if !cfg.CookieSecure {
		t.Errorf("expected secure cookie from flag")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	noEnv := func(string) (string, bool) { return "", false }

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"session ttl", []string{"--session-ttl", "bad"}, "invalid session ttl"},
		{"shutdown timeout", []string{"--shutdown-timeout", "bad"}, "invalid shutdown timeout"},
		{"environment", []string{"--env", "staging"}, "unknown environment"},
		{"log level", []string{"--log-level", "trace"}, "unknown log level"},
		{"unknown flag", []string{"--nope"}, "parse flags"},
		{"empty secret", []string{"--auth-secret", ""}, "auth secret must be provided"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(tc.args, noEnv)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	env := map[string]string{
		"SESSION_TTL":      "0",
		"SHUTDOWN_TIMEOUT": "-1s",
		"COOKIE_SECURE":    "not-a-bool",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.SessionTTL != defaultSessionTTL {
		t.Errorf("expected default session ttl %v, got %v", defaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.CookieSecure {
		t.Errorf("expected invalid bool to fall back to default")
	}
}

func TestLoadReadsSecretFromFile(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{"AUTH_SECRET_FILE": secretFile}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.AuthSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.AuthSecret)
	}
}

func TestLoadMissingSecretFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	_, err := load(nil, lookupFrom(map[string]string{"AUTH_SECRET_FILE": missing}))
	if err == nil || !strings.Contains(err.Error(), "read auth secret file") {
		t.Fatalf("expected secret file error, got %v", err)
	}
}

func TestLoadSecretFlagOverridesSecretFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	cfg, err := load([]string{"-auth-secret", "flag-secret"}, lookupFrom(map[string]string{"AUTH_SECRET_FILE": secretFile}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.AuthSecret != "flag-secret" {
		t.Errorf("expected flag to win over secret file, got %q", cfg.AuthSecret)
	}
}

func TestUsesDefaultAuthSecret(t *testing.T) {
	cfg, err := load(nil, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if !cfg.UsesDefaultAuthSecret() {
		t.Errorf("expected built-in secret to be reported")
	}

	cfg, err = load([]string{"-auth-secret", "custom"}, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.UsesDefaultAuthSecret() {
		t.Errorf("custom secret must not be reported as default")
	}
}
