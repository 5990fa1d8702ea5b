package config

import (
	"path/filepath"
	"testing"
	"time"
)

func clearClarityEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "CLARITY_ANTHROPIC_BASE", "CLARITY_ANTHROPIC_MODEL",
		"CLARITY_ANALYSIS_MAX_TOKENS", "CLARITY_QUESTION_MAX_TOKENS", "CLARITY_ANTHROPIC_TIMEOUT_S",
		"DEEPGRAM_API_KEY", "DEEPGRAM_API_BASE", "DEEPGRAM_MODEL", "DEEPGRAM_LANGUAGE", "DEEPGRAM_SMART_FORMAT",
		"CLARITY_DATA_DIR", "CLARITY_DB_PATH", "CLARITY_RECORDINGS_DIR",
		"CLARITY_FFMPEG_COMMAND", "CLARITY_AUDIO_INPUT_FORMAT", "CLARITY_AUDIO_INPUT_DEVICE",
		"CLARITY_SAMPLE_RATE", "CLARITY_CHANNELS",
		"CLARITY_AUDIO_CHUNK_SIZE", "CLARITY_STREAMING_GRACE_MS", "CLARITY_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearClarityEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Anthropic.APIBaseURL != "https://api.anthropic.com" {
		t.Fatalf("unexpected anthropic base: %q", cfg.Anthropic.APIBaseURL)
	}
	if cfg.Anthropic.AnalysisMaxTokens != 1500 || cfg.Anthropic.QuestionMaxTokens != 200 {
		t.Fatalf("unexpected token budgets: %d/%d", cfg.Anthropic.AnalysisMaxTokens, cfg.Anthropic.QuestionMaxTokens)
	}
	if cfg.Anthropic.Timeout != 60*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Anthropic.Timeout)
	}
	if cfg.Deepgram.Model != "nova-2" || !cfg.Deepgram.SmartFormat {
		t.Fatalf("unexpected deepgram defaults: %+v", cfg.Deepgram)
	}
	if cfg.Audio.SampleRate != 16000 || cfg.Audio.Channels != 1 {
		t.Fatalf("unexpected audio defaults: %+v", cfg.Audio)
	}

	wantDB := filepath.Join(home, ".config", "clarity", "clarity.db")
	if cfg.Storage.DBPath != wantDB {
		t.Fatalf("unexpected db path: %q", cfg.Storage.DBPath)
	}
	wantRecordings := filepath.Join(home, ".config", "clarity", "recordings")
	if cfg.Storage.RecordingsDir != wantRecordings {
		t.Fatalf("unexpected recordings dir: %q", cfg.Storage.RecordingsDir)
	}

	if cfg.Session.ChunkSize != 4096 || cfg.Session.StreamingGrace != time.Second {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadRespectsOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearClarityEnv(t)

	t.Setenv("ANTHROPIC_API_KEY", " sk-test ")
	t.Setenv("CLARITY_ANTHROPIC_MODEL", "claude-test")
	t.Setenv("CLARITY_ANALYSIS_MAX_TOKENS", "900")
	t.Setenv("DEEPGRAM_API_KEY", "dg-test")
	t.Setenv("DEEPGRAM_SMART_FORMAT", "off")
	t.Setenv("CLARITY_DB_PATH", "/tmp/elsewhere/clarity.db")
	t.Setenv("CLARITY_SAMPLE_RATE", "48000")
	t.Setenv("CLARITY_STREAMING_GRACE_MS", "250")
	t.Setenv("CLARITY_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("api key should be trimmed: %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-test" || cfg.Anthropic.AnalysisMaxTokens != 900 {
		t.Fatalf("anthropic overrides not applied: %+v", cfg.Anthropic)
	}
	if cfg.Deepgram.SmartFormat {
		t.Fatalf("smart format override not applied")
	}
	if cfg.Storage.DBPath != "/tmp/elsewhere/clarity.db" {
		t.Fatalf("db path override not applied: %q", cfg.Storage.DBPath)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Fatalf("sample rate override not applied: %d", cfg.Audio.SampleRate)
	}
	if cfg.Session.StreamingGrace != 250*time.Millisecond {
		t.Fatalf("grace override not applied: %v", cfg.Session.StreamingGrace)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level override not applied: %q", cfg.Log.Level)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearClarityEnv(t)

	t.Setenv("CLARITY_SAMPLE_RATE", "not-a-number")
	t.Setenv("CLARITY_AUDIO_CHUNK_SIZE", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Fatalf("malformed sample rate should fall back, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Session.ChunkSize != 4096 {
		t.Fatalf("tiny chunk size should fall back, got %d", cfg.Session.ChunkSize)
	}
}

func TestEnvOrDefaultBool(t *testing.T) {
	cases := map[string]struct {
		value    string
		fallback bool
		want     bool
	}{
		"one":     {value: "1", want: true},
		"yes":     {value: "YES", want: true},
		"off":     {value: "off", fallback: true, want: false},
		"garbage": {value: "maybe", fallback: true, want: true},
		"empty":   {value: "", fallback: false, want: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CLARITY_TEST_BOOL", tc.value)
			if got := envOrDefaultBool("CLARITY_TEST_BOOL", tc.fallback); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
