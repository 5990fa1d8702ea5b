package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config stores runtime configuration for the backend.
type Config struct {
	Anthropic AnthropicConfig
	Deepgram  DeepgramConfig
	Audio     AudioConfig
	Storage   StorageConfig
	Session   SessionConfig
	Log       LogConfig
}

type AnthropicConfig struct {
	APIKey            string
	APIBaseURL        string
	Model             string
	AnalysisMaxTokens int
	QuestionMaxTokens int
	Timeout           time.Duration
}

type DeepgramConfig struct {
	APIKey      string
	APIBaseURL  string
	Model       string
	Language    string
	SmartFormat bool
}

type AudioConfig struct {
	RecorderCommand string
	InputFormat     string
	InputDevice     string
	SampleRate      int
	Channels        int
}

type StorageConfig struct {
	DBPath        string
	RecordingsDir string
}

type SessionConfig struct {
	ChunkSize      int
	StreamingGrace time.Duration
}

type LogConfig struct {
	Level string
}

// Load resolves configuration from environment variables and sensible defaults.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, errors.New("could not determine home directory")
	}

	dataDir := envOrDefault("CLARITY_DATA_DIR", filepath.Join(home, ".config", "clarity"))

	cfg := Config{
		Anthropic: AnthropicConfig{
			APIKey:            strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			APIBaseURL:        envOrDefault("CLARITY_ANTHROPIC_BASE", "https://api.anthropic.com"),
			Model:             envOrDefault("CLARITY_ANTHROPIC_MODEL", "claude-sonnet-4-5-20250514"),
			AnalysisMaxTokens: envOrDefaultInt("CLARITY_ANALYSIS_MAX_TOKENS", 1500),
			QuestionMaxTokens: envOrDefaultInt("CLARITY_QUESTION_MAX_TOKENS", 200),
			Timeout:           time.Duration(envOrDefaultInt("CLARITY_ANTHROPIC_TIMEOUT_S", 60)) * time.Second,
		},
		Deepgram: DeepgramConfig{
			APIKey:      strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
			APIBaseURL:  envOrDefault("DEEPGRAM_API_BASE", "https://api.deepgram.com/v1"),
			Model:       envOrDefault("DEEPGRAM_MODEL", "nova-2"),
			Language:    strings.TrimSpace(os.Getenv("DEEPGRAM_LANGUAGE")),
			SmartFormat: envOrDefaultBool("DEEPGRAM_SMART_FORMAT", true),
		},
		Audio: AudioConfig{
			RecorderCommand: envOrDefault("CLARITY_FFMPEG_COMMAND", "ffmpeg"),
			InputFormat:     envOrDefault("CLARITY_AUDIO_INPUT_FORMAT", "pulse"),
			InputDevice:     envOrDefault("CLARITY_AUDIO_INPUT_DEVICE", "default"),
			SampleRate:      envOrDefaultInt("CLARITY_SAMPLE_RATE", 16000),
			Channels:        envOrDefaultInt("CLARITY_CHANNELS", 1),
		},
		Storage: StorageConfig{
			DBPath:        envOrDefault("CLARITY_DB_PATH", filepath.Join(dataDir, "clarity.db")),
			RecordingsDir: envOrDefault("CLARITY_RECORDINGS_DIR", filepath.Join(dataDir, "recordings")),
		},
		Session: SessionConfig{
			ChunkSize:      envOrDefaultInt("CLARITY_AUDIO_CHUNK_SIZE", 4096),
			StreamingGrace: time.Duration(envOrDefaultInt("CLARITY_STREAMING_GRACE_MS", 1000)) * time.Millisecond,
		},
		Log: LogConfig{
			Level: envOrDefault("CLARITY_LOG_LEVEL", "info"),
		},
	}

	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = 16000
	}
	if cfg.Audio.Channels <= 0 {
		cfg.Audio.Channels = 1
	}
	if cfg.Anthropic.AnalysisMaxTokens <= 0 {
		cfg.Anthropic.AnalysisMaxTokens = 1500
	}
	if cfg.Anthropic.QuestionMaxTokens <= 0 {
		cfg.Anthropic.QuestionMaxTokens = 200
	}
	if cfg.Session.ChunkSize < 256 {
		cfg.Session.ChunkSize = 4096
	}

	return cfg, nil
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
