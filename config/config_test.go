package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/asynciter"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSettingsApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := Settings{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" || !cfg.Debug {
			t.Errorf("expected development with debug, got %q debug=%v", cfg.Environment, cfg.Debug)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug log level, got %q", cfg.Logging.Level)
		}
		if cfg.Stream.Stage != "svc" {
			t.Errorf("expected stage to default to the name, got %q", cfg.Stream.Stage)
		}
	})

	t.Run("production keeps info level", func(t *testing.T) {
		cfg := Settings{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug || cfg.Logging.Level != "info" {
			t.Errorf("expected info without debug, got %q debug=%v", cfg.Logging.Level, cfg.Debug)
		}
	})

	t.Run("observability sections inherit service identity", func(t *testing.T) {
		cfg := Settings{
			Name:    "svc",
			Version: "2.1.0",
			Tracing: &observability.TracerConfig{Endpoint: "collector:4318"},
			Metrics: &observability.MeterConfig{Endpoint: "collector:4318", ServiceName: "custom"},
		}
		cfg.ApplyDefaults()
		if cfg.Tracing.ServiceName != "svc" || cfg.Tracing.ServiceVersion != "2.1.0" {
			t.Errorf("unexpected tracing identity %+v", cfg.Tracing)
		}
		if cfg.Metrics.ServiceName != "custom" || cfg.Metrics.Environment != "development" {
			t.Errorf("unexpected metrics identity %+v", cfg.Metrics)
		}
	})
}

func TestSettingsValidate(t *testing.T) {
	valid := func() Settings {
		s := Settings{Name: "svc"}
		s.ApplyDefaults()
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"missing name", func(s *Settings) { s.Name = "" }},
		{"invalid environment", func(s *Settings) { s.Environment = "qa" }},
		{"invalid log level", func(s *Settings) { s.Logging.Level = "loud" }},
		{"negative buffer", func(s *Settings) { s.Stream.BufferSize = -1 }},
		{"tracing sample rate", func(s *Settings) {
			s.Tracing = observability.DefaultTracerConfig("svc")
			s.Tracing.SampleRate = 2
		}},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}

func TestLoadWithYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: seqkit-test
environment: staging
logging:
  level: warn
  format: json
stream:
  stage: ingest
  buffer_size: 4
  batch_timeout: 250ms
  logging: true
`)
	t.Setenv("SEQKIT_TEST_STREAM_BUFFER_SIZE", "8")
	t.Setenv("SEQKIT_TEST_LOGGING_OUTPUT", "stderr")

	var s Settings
	err := Load("seqkit-test", &s, WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, ".env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := asynciter.Config{Stage: "ingest", BufferSize: 8, BatchTimeout: 250 * time.Millisecond, Logging: true}
	if diff := cmp.Diff(want, s.Stream); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
	if s.Environment != "staging" || s.Debug {
		t.Errorf("unexpected environment %q debug=%v", s.Environment, s.Debug)
	}
	if s.Logging.Level != "warn" || s.Logging.Format != "json" || s.Logging.Output != "stderr" {
		t.Errorf("unexpected logging %+v", s.Logging)
	}
	if s.Tracing != nil || s.Metrics != nil {
		t.Error("absent observability sections should stay nil")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "SEQKIT_ENVTEST_NAME=from-dotenv\nSEQKIT_ENVTEST_VERSION=3.0.0\n")
	t.Cleanup(func() {
		os.Unsetenv("SEQKIT_ENVTEST_NAME")
		os.Unsetenv("SEQKIT_ENVTEST_VERSION")
	})

	var s Settings
	if err := Load("seqkit-envtest", &s, WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "from-dotenv" || s.Version != "3.0.0" {
		t.Errorf("expected values from .env, got name=%q version=%q", s.Name, s.Version)
	}
}

func TestLoadValidationError(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: svc\nenvironment: qa\n")

	var s Settings
	err := Load("seqkit-invalid", &s, WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, ".env")))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadDecodeError(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: svc\nstream:\n  buffer_size: lots\n")

	var s Settings
	err := Load("seqkit-decode", &s, WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, ".env")))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("SEQKIT_MISSING_NAME", "env-only")

	var s Settings
	err := Load("seqkit-missing", &s, WithConfigFile("/nonexistent/path.yml"), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing files, got %v", err)
	}
	if s.Name != "env-only" {
		t.Errorf("expected name from env, got %q", s.Name)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/demo/config.yaml": true,
		"./config/.env":          true,
		"./.env.seqkit-demo":     true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("seqkit-demo", LoaderConfig{})
	if files.ConfigFile != "./cmd/demo/config.yaml" {
		t.Errorf("expected short-name config file, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env.seqkit-demo" {
		t.Errorf("expected name-specific env file to win, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles("seqkit-demo", LoaderConfig{ConfigFile: "explicit.yml"})
	if files.ConfigFile != "explicit.yml" {
		t.Errorf("explicit path should win, got %q", files.ConfigFile)
	}
}

func TestLoadWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env": true}}
	t.Setenv("SEQKIT_MOCK_NAME", "mocked")

	var s Settings
	if err := Load("seqkit-mock", &s, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if fs.loaded != "./.env" {
		t.Errorf("expected ./.env to be loaded, got %q", fs.loaded)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = path
	return nil
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("STREAM_BUFFER_SIZE")
	want := []string{"stream_buffer_size", "stream.buffer.size", "stream.buffer_size"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name"}, generateEnvKeyVariants("NAME")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := envPrefix("seqkit-demo"); got != "SEQKIT_DEMO_" {
		t.Errorf("got %q", got)
	}
	if got := envPrefix(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	if lc.FileSystem != fs || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("options not applied: %+v", lc)
	}
}

func TestBuildAndInstrument(t *testing.T) {
	s := Settings{Name: "svc", Environment: "production", Stream: asynciter.Config{BufferSize: 2, Logging: true}}
	s.Logging.Level = "error"
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	rt, err := s.Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer rt.Shutdown(ctx)
	t.Cleanup(func() { logger.Unregister("iterator") })

	if rt.Logger == nil || rt.Deps.Logger == nil || rt.Deps.Metrics != nil {
		t.Fatalf("unexpected runtime %+v", rt)
	}

	it, err := asynciter.Instrument[int](asynciter.FromSlice([]int{1, 2, 3}), s.Stream, rt.Deps)
	if err != nil {
		t.Fatal(err)
	}
	got, err := it.Collect(ctx)
	if err != nil || !cmp.Equal([]int{1, 2, 3}, got) {
		t.Errorf("Collect = %v, %v", got, err)
	}
}

func TestBuildRejectsInvalidTracing(t *testing.T) {
	s := Settings{Name: "svc", Tracing: &observability.TracerConfig{ServiceName: "svc"}}
	s.Logging.Level = "error"
	s.Logging.ApplyDefaults()
	t.Cleanup(func() { logger.Unregister("iterator") })
	if _, err := s.Build(context.Background()); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for missing endpoint, got %v", err)
	}
}
