package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"clarity/internal/bootstrap"
	"clarity/internal/config"
	"clarity/internal/domain"
	"clarity/internal/export"
	"clarity/internal/ports"
	"clarity/internal/stats"
	"clarity/internal/store"
	"clarity/internal/usecase"
)

const (
	eventPhase   = "clarity:phase"
	eventPartial = "clarity:partial"
	eventTick    = "clarity:tick"
	eventCapture = "clarity:capture"
	eventError   = "clarity:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	drill     *usecase.DrillController
	recorder  *usecase.Recorder
	store     *store.SQLiteStore
	clipboard ports.Clipboard
	cfg       config.Config
	bootErr   error
}

func NewApp() *App {
	return &App{clipboard: &wailsClipboard{}}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a)
	if err != nil {
		a.bootErr = err
		a.DrillError(domain.ErrorCodeStartup, err.Error())
		return
	}

	a.cfg = services.Config
	a.drill = services.Drill
	a.recorder = services.Recorder
	a.store = services.Store
}

func (a *App) shutdown(ctx context.Context) {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
}

// StartDrill selects a fresh prompt and resets the drill. preferredType
// optionally restricts the category; pass "" for any.
func (a *App) StartDrill(preferredType string) (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	if err := a.drill.StartDrill(a.ctx, domain.QuestionType(preferredType)); err != nil {
		return domain.DrillState{}, err
	}
	return a.drill.State(), nil
}

// StartDailyDrill starts a drill on today's deterministic prompt.
func (a *App) StartDailyDrill() (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	if err := a.drill.StartDailyDrill(a.ctx); err != nil {
		return domain.DrillState{}, err
	}
	return a.drill.State(), nil
}

// GetDailyPrompt returns today's prompt without starting a drill.
func (a *App) GetDailyPrompt() (domain.Prompt, error) {
	if err := a.requireReady(); err != nil {
		return domain.Prompt{}, err
	}
	return a.drill.DailyPrompt()
}

// GenerateQuestion asks the coaching service for a novel question in the
// given category and starts a drill on it.
func (a *App) GenerateQuestion(category string, difficulty string) (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	err := a.drill.StartGeneratedDrill(a.ctx, domain.QuestionType(category), domain.Difficulty(difficulty))
	if err != nil {
		return domain.DrillState{}, err
	}
	return a.drill.State(), nil
}

// StartCapture begins recording the answer. maxDurationSeconds bounds the
// recording when timed mode is on; pass 0 for unbounded.
func (a *App) StartCapture(maxDurationSeconds int, recordAudio bool) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if err := a.drill.BeginRecording(); err != nil {
		return err
	}
	err := a.recorder.Start(a.ctx, usecase.CaptureOptions{
		MaxDuration: maxDurationSeconds,
		RecordAudio: recordAudio,
	})
	if err != nil {
		a.drill.CancelRecording()
		a.DrillError(domain.ErrorCodeCapture, err.Error())
		return err
	}
	return nil
}

// StopCapture ends the recording and returns the captured transcript. The
// answer is not analyzed until SubmitRecording.
func (a *App) StopCapture() (domain.CaptureResult, error) {
	if err := a.requireReady(); err != nil {
		return domain.CaptureResult{}, err
	}
	return a.recorder.Stop(), nil
}

// AbortCapture discards the recording without producing an attempt.
func (a *App) AbortCapture() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.recorder.Abort()
	a.drill.CancelRecording()
	return nil
}

// SubmitRecording sends a finished answer to analysis and, on success,
// persists the attempt into the current session.
func (a *App) SubmitRecording(transcript string, durationSeconds int) (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	err := a.drill.SubmitRecording(a.ctx, transcript, durationSeconds)
	if err != nil && errors.Is(err, usecase.ErrTranscriptTooShort) {
		return a.drill.State(), fmt.Errorf("that answer was too short to analyze, try again")
	}
	return a.drill.State(), err
}

// Retry returns to ready on the same prompt; the next attempt joins the
// same session.
func (a *App) Retry() (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	if err := a.drill.Retry(); err != nil {
		return domain.DrillState{}, err
	}
	return a.drill.State(), nil
}

// NextDrill abandons the current prompt and selects a fresh one.
func (a *App) NextDrill(preferredType string) (domain.DrillState, error) {
	if err := a.requireReady(); err != nil {
		return domain.DrillState{}, err
	}
	if err := a.drill.NextDrill(a.ctx, domain.QuestionType(preferredType)); err != nil {
		return domain.DrillState{}, err
	}
	return a.drill.State(), nil
}

// GetState returns the current drill snapshot.
func (a *App) GetState() domain.DrillState {
	if a.drill == nil {
		state := domain.DrillState{Phase: domain.PhaseReady}
		if a.bootErr != nil {
			state.Error = a.bootErr.Error()
		}
		return state
	}
	return a.drill.State()
}

// GetProfile returns the stored profile, or nil before onboarding.
func (a *App) GetProfile() (*domain.Profile, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.store.Profile()
}

// SaveProfile validates and stores the profile.
func (a *App) SaveProfile(profile domain.Profile) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := a.store.SaveProfile(profile); err != nil {
		a.DrillError(domain.ErrorCodeStorage, err.Error())
		return err
	}
	return nil
}

// ResetAll wipes the profile, the session history, and the used-prompt set.
func (a *App) ResetAll() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if err := a.store.Reset(); err != nil {
		a.DrillError(domain.ErrorCodeStorage, err.Error())
		return err
	}
	return nil
}

// GetSessions returns the session history, newest first.
func (a *App) GetSessions() ([]domain.Session, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.store.Sessions()
}

// GetStats returns the dashboard aggregates.
func (a *App) GetStats() (stats.Overview, error) {
	if err := a.requireReady(); err != nil {
		return stats.Overview{}, err
	}
	sessions, err := a.store.Sessions()
	if err != nil {
		return stats.Overview{}, err
	}
	return stats.Compute(sessions, time.Now()), nil
}

// GetCoaching returns persistent-weakness insights over recent sessions.
func (a *App) GetCoaching() ([]stats.Insight, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	sessions, err := a.store.Sessions()
	if err != nil {
		return nil, err
	}
	return stats.Coaching(sessions), nil
}

// CompareAttempts contrasts the first and latest attempt of a session.
func (a *App) CompareAttempts(sessionID string) (stats.Comparison, error) {
	session, err := a.findSession(sessionID)
	if err != nil {
		return stats.Comparison{}, err
	}
	cmp, ok := stats.Compare(session)
	if !ok {
		return stats.Comparison{}, fmt.Errorf("session has fewer than two attempts")
	}
	return cmp, nil
}

// ExportSession renders a session summary as shareable text.
func (a *App) ExportSession(sessionID string) (string, error) {
	session, err := a.findSession(sessionID)
	if err != nil {
		return "", err
	}
	return export.SessionText(session), nil
}

// CopySessionSummary renders a session summary and puts it on the clipboard.
func (a *App) CopySessionSummary(sessionID string) error {
	text, err := a.ExportSession(sessionID)
	if err != nil {
		return err
	}
	if err := a.clipboard.SetText(a.ctx, text); err != nil {
		a.DrillError(domain.ErrorCodeClipboard, err.Error())
		return err
	}
	return nil
}

// IsSpeechSupported reports whether live transcription is available.
func (a *App) IsSpeechSupported() bool {
	if a.recorder == nil {
		return false
	}
	return a.recorder.Supported()
}

// GetRuntimeInfo returns non-sensitive config for the UI.
func (a *App) GetRuntimeInfo() map[string]string {
	if a.bootErr != nil {
		return map[string]string{"error": a.bootErr.Error()}
	}

	return map[string]string{
		"analysisModel":      a.cfg.Anthropic.Model,
		"transcriptionModel": a.cfg.Deepgram.Model,
		"audioInput":         a.cfg.Audio.InputDevice,
		"audioInputFormat":   a.cfg.Audio.InputFormat,
		"databasePath":       a.cfg.Storage.DBPath,
		"recordingsDir":      a.cfg.Storage.RecordingsDir,
	}
}

func (a *App) findSession(sessionID string) (domain.Session, error) {
	if err := a.requireReady(); err != nil {
		return domain.Session{}, err
	}
	sessions, err := a.store.Sessions()
	if err != nil {
		return domain.Session{}, err
	}
	for _, s := range sessions {
		if s.ID == sessionID {
			return s, nil
		}
	}
	return domain.Session{}, fmt.Errorf("session %q not found", sessionID)
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.drill == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// PhaseChanged emits drill lifecycle updates to the frontend.
func (a *App) PhaseChanged(phase domain.DrillPhase, reason domain.PhaseReason) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPhase, map[string]string{
		"phase":   string(phase),
		"reason":  string(reason),
		"message": phaseReasonMessage(reason),
	})
}

// PartialTranscript emits the live transcript view while recording.
func (a *App) PartialTranscript(text string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPartial, map[string]string{"text": text})
}

// CaptureTick emits the elapsed recording time once a second.
func (a *App) CaptureTick(elapsedSeconds int) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventTick, map[string]int{"elapsed": elapsedSeconds})
}

// CaptureFinished emits the final capture result.
func (a *App) CaptureFinished(result domain.CaptureResult) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventCapture, result)
}

// DrillError emits backend errors to the UI.
func (a *App) DrillError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

func phaseReasonMessage(reason domain.PhaseReason) string {
	switch reason {
	case domain.ReasonDrillStarted:
		return "New question ready"
	case domain.ReasonRecordingStarted:
		return "Recording"
	case domain.ReasonRecordingStopped:
		return "Recording stopped"
	case domain.ReasonAnalyzing:
		return "Analyzing your answer..."
	case domain.ReasonAttemptAnalyzed:
		return "Feedback ready"
	case domain.ReasonAnalysisFailed:
		return "Analysis failed"
	case domain.ReasonRetry:
		return "Try the same question again"
	default:
		return ""
	}
}

func errorMessage(code domain.ErrorCode, detail string) string {
	switch code {
	case domain.ErrorCodeStartup:
		return "Startup failed"
	case domain.ErrorCodeAnalysis:
		return "Analysis failed"
	case domain.ErrorCodeQuestionGeneration:
		return "Could not generate a question"
	case domain.ErrorCodeCapture:
		return "Transcription error"
	case domain.ErrorCodeAudio:
		return "Audio capture issue"
	case domain.ErrorCodeStorage:
		return "Could not save your data"
	case domain.ErrorCodeClipboard:
		return "Clipboard write failed"
	default:
		if detail == "" {
			return "Unknown error"
		}
		return detail
	}
}

type wailsClipboard struct{}

func (c *wailsClipboard) SetText(ctx context.Context, text string) error {
	return runtime.ClipboardSetText(ctx, text)
}
