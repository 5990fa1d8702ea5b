package ports

import (
	"context"
	"io"
	"time"

	"clarity/internal/domain"
)

// AudioConfig describes how the microphone should be captured.
type AudioConfig struct {
	SampleRate  int
	Channels    int
	InputFormat string
	InputDevice string
}

// AudioSession is a live capture session.
type AudioSession interface {
	io.ReadCloser
	Stop() error
}

// AudioCapture creates microphone capture sessions.
type AudioCapture interface {
	Start(ctx context.Context, cfg AudioConfig) (AudioSession, error)
}

// StreamingConfig describes provider-agnostic streaming settings.
type StreamingConfig struct {
	SampleRate     int
	Channels       int
	Encoding       string
	InterimResults bool
}

// StreamingSession is an active provider websocket session.
type StreamingSession interface {
	SendAudio(chunk []byte) error
	CloseSend() error
	Events() <-chan domain.TranscriptEvent
	Wait() error
	Close() error
}

// TranscriptionProvider starts streaming transcription sessions.
type TranscriptionProvider interface {
	StartStreaming(ctx context.Context, cfg StreamingConfig) (StreamingSession, error)
	Supported() bool
}

// AnalysisRequest is the payload sent to the coaching service.
type AnalysisRequest struct {
	Question     string
	QuestionType domain.QuestionType
	Transcript   string
}

// AnalysisClient is the opaque boundary to the external coaching service.
type AnalysisClient interface {
	Analyze(ctx context.Context, req AnalysisRequest) (domain.AnalysisResult, error)
}

// QuestionRequest asks the generation service for a fresh drill question.
type QuestionRequest struct {
	Category   domain.QuestionType
	Domains    []domain.Domain
	Difficulty domain.Difficulty
}

// QuestionGenerator produces dynamic drill questions.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, req QuestionRequest) (string, error)
}

// StateStore is the durable client-local store. It is the single source of
// truth for the profile, session history, and used-prompt set.
type StateStore interface {
	Profile() (*domain.Profile, error)
	SaveProfile(profile domain.Profile) error
	ClearProfile() error

	Sessions() ([]domain.Session, error)
	SaveSession(session domain.Session) error

	UsedPromptIDs() ([]string, error)
	MarkPromptUsed(id string) error

	// Reset clears all three namespaces together.
	Reset() error
}

// Clipboard writes text into the system clipboard.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

// Clock abstracts time to keep the drill machine deterministic in tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator creates session identifiers.
type IDGenerator interface {
	NewID() string
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	PhaseChanged(phase domain.DrillPhase, reason domain.PhaseReason)
	PartialTranscript(text string)
	CaptureTick(elapsedSeconds int)
	CaptureFinished(result domain.CaptureResult)
	DrillError(code domain.ErrorCode, detail string)
}
