package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"clarity/internal/domain"
	"clarity/internal/ports"
	"clarity/internal/prompts"
)

var (
	// ErrNoProfile means the drill was started before onboarding finished.
	ErrNoProfile = errors.New("no profile configured")

	// ErrNoActiveDrill means a recording-phase operation arrived with no
	// prompt selected.
	ErrNoActiveDrill = errors.New("no active drill")

	// ErrTranscriptTooShort rejects answers under the minimum length before
	// any analysis call is made.
	ErrTranscriptTooShort = errors.New("transcript too short to analyze")

	// ErrAnalysisInFlight rejects a second submission while one is pending.
	ErrAnalysisInFlight = errors.New("analysis already in progress")
)

// minTranscriptChars is the shortest trimmed transcript worth analyzing.
const minTranscriptChars = 10

// DrillController owns the drill lifecycle: prompt selection, the
// ready/recording/analyzing/feedback phases, attempt accumulation, and
// session persistence. All mutation goes through its mutex; the UI only ever
// sees snapshots.
type DrillController struct {
	store     ports.StateStore
	selector  *prompts.Selector
	analysis  ports.AnalysisClient
	generator ports.QuestionGenerator
	events    ports.EventSink
	clock     ports.Clock
	ids       ports.IDGenerator
	log       *zap.Logger

	mu         sync.Mutex
	phase      domain.DrillPhase
	prompt     *domain.Prompt
	attempts   []domain.Attempt
	sessionID  string
	errMsg     string
	analyzing  bool
	generation uint64
}

func NewDrillController(
	store ports.StateStore,
	selector *prompts.Selector,
	analysis ports.AnalysisClient,
	generator ports.QuestionGenerator,
	events ports.EventSink,
	clock ports.Clock,
	ids ports.IDGenerator,
	log *zap.Logger,
) *DrillController {
	if log == nil {
		log = zap.NewNop()
	}
	return &DrillController{
		store:     store,
		selector:  selector,
		analysis:  analysis,
		generator: generator,
		events:    events,
		clock:     clock,
		ids:       ids,
		log:       log,
		phase:     domain.PhaseReady,
	}
}

// StartDrill selects a fresh prompt for the profile's domains and resets the
// machine to ready. Unseen prompts are preferred; preferredType optionally
// restricts the category.
func (d *DrillController) StartDrill(ctx context.Context, preferredType domain.QuestionType) error {
	profile, err := d.store.Profile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return ErrNoProfile
	}

	usedIDs, err := d.store.UsedPromptIDs()
	if err != nil {
		// Selection still works, it just loses repeat avoidance.
		d.log.Warn("could not load used prompt ids", zap.Error(err))
		usedIDs = nil
	}

	prompt := d.selector.Pick(profile.Domains, usedIDs, preferredType)
	d.beginDrill(prompt)
	return nil
}

// StartGeneratedDrill asks the question service for a novel prompt in the
// requested category and starts a drill on it.
func (d *DrillController) StartGeneratedDrill(ctx context.Context, category domain.QuestionType, difficulty domain.Difficulty) error {
	profile, err := d.store.Profile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return ErrNoProfile
	}
	if !category.Valid() {
		return fmt.Errorf("unknown question category %q", category)
	}
	if difficulty == "" {
		difficulty = profile.PreferredDifficulty
	}

	text, err := d.generator.GenerateQuestion(ctx, ports.QuestionRequest{
		Category:   category,
		Domains:    profile.Domains,
		Difficulty: difficulty,
	})
	if err != nil {
		d.events.DrillError(domain.ErrorCodeQuestionGeneration, err.Error())
		return fmt.Errorf("generate question: %w", err)
	}

	prompt := domain.Prompt{
		ID:         fmt.Sprintf("generated-%d", d.clock.Now().UnixMilli()),
		Text:       text,
		Type:       category,
		Domains:    profile.Domains,
		Difficulty: difficulty,
	}
	d.beginDrill(prompt)
	return nil
}

// DailyPrompt returns today's deterministic prompt for the profile's domains.
func (d *DrillController) DailyPrompt() (domain.Prompt, error) {
	profile, err := d.store.Profile()
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return domain.Prompt{}, ErrNoProfile
	}
	return d.selector.Daily(profile.Domains, d.clock.Now()), nil
}

// StartDailyDrill starts a drill on today's deterministic prompt.
func (d *DrillController) StartDailyDrill(ctx context.Context) error {
	prompt, err := d.DailyPrompt()
	if err != nil {
		return err
	}
	d.beginDrill(prompt)
	return nil
}

func (d *DrillController) beginDrill(prompt domain.Prompt) {
	d.mu.Lock()
	d.sessionID = d.ids.NewID()
	p := prompt
	d.prompt = &p
	d.attempts = nil
	d.errMsg = ""
	d.analyzing = false
	d.generation++
	d.phase = domain.PhaseReady
	d.mu.Unlock()

	d.events.PhaseChanged(domain.PhaseReady, domain.ReasonDrillStarted)
}

// BeginRecording marks the machine as recording. The actual capture is owned
// by the Recorder; this only tracks the phase.
func (d *DrillController) BeginRecording() error {
	d.mu.Lock()
	if d.prompt == nil {
		d.mu.Unlock()
		return ErrNoActiveDrill
	}
	if d.analyzing {
		d.mu.Unlock()
		return ErrAnalysisInFlight
	}
	d.phase = domain.PhaseRecording
	d.errMsg = ""
	d.mu.Unlock()

	d.events.PhaseChanged(domain.PhaseRecording, domain.ReasonRecordingStarted)
	return nil
}

// CancelRecording abandons the capture and restores the previous resting
// phase without producing an attempt.
func (d *DrillController) CancelRecording() {
	d.mu.Lock()
	if d.phase != domain.PhaseRecording {
		d.mu.Unlock()
		return
	}
	d.phase = d.restingPhaseLocked()
	phase := d.phase
	d.mu.Unlock()

	d.events.PhaseChanged(phase, domain.ReasonRecordingStopped)
}

// SubmitRecording sends a finished answer to analysis. On success the
// attempt is appended to the current session and persisted; on failure the
// machine returns to ready and nothing is stored. Responses for a drill that
// has since been replaced are discarded.
func (d *DrillController) SubmitRecording(ctx context.Context, transcript string, duration int) error {
	d.mu.Lock()
	if d.prompt == nil {
		d.mu.Unlock()
		return ErrNoActiveDrill
	}
	if d.analyzing {
		d.mu.Unlock()
		return ErrAnalysisInFlight
	}

	trimmed := strings.TrimSpace(transcript)
	if len(trimmed) < minTranscriptChars {
		d.phase = d.restingPhaseLocked()
		phase := d.phase
		d.mu.Unlock()
		d.events.PhaseChanged(phase, domain.ReasonRecordingStopped)
		return ErrTranscriptTooShort
	}

	prompt := *d.prompt
	gen := d.generation
	d.analyzing = true
	d.phase = domain.PhaseAnalyzing
	d.mu.Unlock()

	d.events.PhaseChanged(domain.PhaseAnalyzing, domain.ReasonAnalyzing)

	result, err := d.analysis.Analyze(ctx, ports.AnalysisRequest{
		Question:     prompt.Text,
		QuestionType: prompt.Type,
		Transcript:   trimmed,
	})

	d.mu.Lock()
	if d.generation != gen {
		// A new drill started while this analysis was in flight.
		d.mu.Unlock()
		return nil
	}
	d.analyzing = false

	if err != nil {
		d.errMsg = err.Error()
		d.phase = domain.PhaseReady
		d.mu.Unlock()

		d.events.DrillError(domain.ErrorCodeAnalysis, err.Error())
		d.events.PhaseChanged(domain.PhaseReady, domain.ReasonAnalysisFailed)
		return fmt.Errorf("analyze attempt: %w", err)
	}

	attempt := domain.Attempt{
		Transcript: trimmed,
		Duration:   duration,
		Analysis:   result,
		RecordedAt: d.clock.Now(),
	}
	d.attempts = append(d.attempts, attempt)
	session := domain.Session{
		ID:        d.sessionID,
		Prompt:    prompt,
		Attempts:  append([]domain.Attempt(nil), d.attempts...),
		CreatedAt: d.attempts[0].RecordedAt,
	}
	d.errMsg = ""
	d.phase = domain.PhaseFeedback
	d.mu.Unlock()

	if err := d.store.SaveSession(session); err != nil {
		d.log.Error("could not persist session", zap.String("session_id", session.ID), zap.Error(err))
		d.events.DrillError(domain.ErrorCodeStorage, err.Error())
	}
	if err := d.store.MarkPromptUsed(prompt.ID); err != nil {
		d.log.Warn("could not mark prompt as used", zap.String("prompt_id", prompt.ID), zap.Error(err))
	}

	d.events.PhaseChanged(domain.PhaseFeedback, domain.ReasonAttemptAnalyzed)
	return nil
}

// Retry returns from feedback to ready, keeping the prompt and the attempts
// already made so the next answer lands in the same session.
func (d *DrillController) Retry() error {
	d.mu.Lock()
	if d.prompt == nil {
		d.mu.Unlock()
		return ErrNoActiveDrill
	}
	if d.analyzing {
		d.mu.Unlock()
		return ErrAnalysisInFlight
	}
	d.phase = domain.PhaseReady
	d.errMsg = ""
	d.mu.Unlock()

	d.events.PhaseChanged(domain.PhaseReady, domain.ReasonRetry)
	return nil
}

// NextDrill abandons the current prompt and selects a fresh one.
func (d *DrillController) NextDrill(ctx context.Context, preferredType domain.QuestionType) error {
	return d.StartDrill(ctx, preferredType)
}

// State returns a snapshot for the UI.
func (d *DrillController) State() domain.DrillState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := domain.DrillState{
		Phase: d.phase,
		Error: d.errMsg,
	}
	if d.prompt != nil {
		p := *d.prompt
		state.Prompt = &p
	}
	if len(d.attempts) > 0 {
		state.Attempts = append([]domain.Attempt(nil), d.attempts...)
	}
	return state
}

// restingPhaseLocked is the phase to fall back to when a recording does not
// produce an attempt: feedback if earlier attempts exist, otherwise ready.
func (d *DrillController) restingPhaseLocked() domain.DrillPhase {
	if len(d.attempts) > 0 {
		return domain.PhaseFeedback
	}
	return domain.PhaseReady
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() ports.Clock { return systemClock{} }
