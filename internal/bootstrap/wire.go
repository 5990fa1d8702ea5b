package bootstrap

import (
	"go.uber.org/zap"

	"clarity/internal/audio"
	"clarity/internal/config"
	"clarity/internal/logging"
	"clarity/internal/ports"
	"clarity/internal/prompts"
	"clarity/internal/providers/anthropic"
	"clarity/internal/providers/deepgram"
	"clarity/internal/store"
	"clarity/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Drill    *usecase.DrillController
	Recorder *usecase.Recorder
	Store    *store.SQLiteStore
	Config   config.Config
	Log      *zap.Logger
}

// Build wires all backend dependencies for the current runtime.
func Build(eventSink ports.EventSink) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	log := logging.New(cfg.Log.Level)

	stateStore, err := store.NewSQLite(cfg.Storage.DBPath, log.Named("store"))
	if err != nil {
		return Services{}, err
	}

	coach := anthropic.NewClient(anthropic.Config{
		APIKey:            cfg.Anthropic.APIKey,
		APIBaseURL:        cfg.Anthropic.APIBaseURL,
		Model:             cfg.Anthropic.Model,
		AnalysisMaxTokens: cfg.Anthropic.AnalysisMaxTokens,
		QuestionMaxTokens: cfg.Anthropic.QuestionMaxTokens,
		Timeout:           cfg.Anthropic.Timeout,
	}, log.Named("anthropic"))

	transcription := deepgram.NewProvider(deepgram.Config{
		APIKey:      cfg.Deepgram.APIKey,
		APIBaseURL:  cfg.Deepgram.APIBaseURL,
		Model:       cfg.Deepgram.Model,
		Language:    cfg.Deepgram.Language,
		SmartFormat: cfg.Deepgram.SmartFormat,
	}, log.Named("deepgram"))

	recorder := usecase.NewRecorder(
		transcription,
		audio.NewFFMPEGCapture(cfg.Audio.RecorderCommand),
		eventSink,
		usecase.RecorderConfig{
			Audio: ports.AudioConfig{
				SampleRate:  cfg.Audio.SampleRate,
				Channels:    cfg.Audio.Channels,
				InputFormat: cfg.Audio.InputFormat,
				InputDevice: cfg.Audio.InputDevice,
			},
			Streaming: ports.StreamingConfig{
				SampleRate:     cfg.Audio.SampleRate,
				Channels:       cfg.Audio.Channels,
				Encoding:       "linear16",
				InterimResults: true,
			},
			ChunkSize:      cfg.Session.ChunkSize,
			StreamingGrace: cfg.Session.StreamingGrace,
			RecordingsDir:  cfg.Storage.RecordingsDir,
		},
		log.Named("recorder"),
	)

	drill := usecase.NewDrillController(
		stateStore,
		prompts.NewSelector(),
		coach,
		coach,
		eventSink,
		usecase.NewSystemClock(),
		usecase.NewUUIDGenerator(),
		log.Named("drill"),
	)

	return Services{
		Drill:    drill,
		Recorder: recorder,
		Store:    stateStore,
		Config:   cfg,
		Log:      log,
	}, nil
}
