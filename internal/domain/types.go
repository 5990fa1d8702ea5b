package domain

import "time"

// QuestionType categorizes a drill prompt. The set is fixed.
type QuestionType string

const (
	QuestionBigPicture QuestionType = "big-picture"
	QuestionDrillDown  QuestionType = "drill-down"
	QuestionCurveball  QuestionType = "curveball"
	QuestionDefend     QuestionType = "defend"
	QuestionSimplify   QuestionType = "simplify"
)

// QuestionTypes lists every valid question type.
func QuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionBigPicture,
		QuestionDrillDown,
		QuestionCurveball,
		QuestionDefend,
		QuestionSimplify,
	}
}

// Valid reports whether t is one of the five fixed categories.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionBigPicture, QuestionDrillDown, QuestionCurveball, QuestionDefend, QuestionSimplify:
		return true
	}
	return false
}

// Domain tags a prompt with a professional field.
type Domain string

const (
	DomainMarketing   Domain = "marketing"
	DomainAI          Domain = "ai"
	DomainProduct     Domain = "product"
	DomainStrategy    Domain = "strategy"
	DomainFinance     Domain = "finance"
	DomainEngineering Domain = "engineering"
	DomainDesign      Domain = "design"
	DomainSales       Domain = "sales"
	DomainOperations  Domain = "operations"
	DomainLeadership  Domain = "leadership"
)

// Difficulty optionally narrows prompt selection and question generation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Prompt is one drill question, either a corpus entry or a generated one.
// Immutable once created; persisted only embedded inside its Session.
type Prompt struct {
	ID         string       `json:"id"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Domains    []Domain     `json:"domains"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
}

// Attempt is one spoken, transcribed, analyzed answer to a Prompt.
// Created only after analysis succeeds; never mutated afterwards.
type Attempt struct {
	Transcript string         `json:"transcript"`
	Duration   int            `json:"duration"`
	Analysis   AnalysisResult `json:"analysis"`
	RecordedAt time.Time      `json:"recordedAt"`
}

// Session is the persisted record of one drill: a Prompt plus its ordered
// Attempts. All attempts answer the same prompt; a retry appends to the
// same session while "next question" starts a new one.
type Session struct {
	ID        string    `json:"id"`
	Prompt    Prompt    `json:"prompt"`
	Attempts  []Attempt `json:"attempts"`
	CreatedAt time.Time `json:"createdAt"`
}

// DrillPhase models the drill lifecycle.
type DrillPhase string

const (
	PhaseReady     DrillPhase = "ready"
	PhaseRecording DrillPhase = "recording"
	PhaseAnalyzing DrillPhase = "analyzing"
	PhaseFeedback  DrillPhase = "feedback"
)

// PhaseReason provides a structured reason for phase transitions.
type PhaseReason string

const (
	ReasonDrillStarted     PhaseReason = "drill_started"
	ReasonRecordingStarted PhaseReason = "recording_started"
	ReasonRecordingStopped PhaseReason = "recording_stopped"
	ReasonAnalyzing        PhaseReason = "analyzing"
	ReasonAttemptAnalyzed  PhaseReason = "attempt_analyzed"
	ReasonAnalysisFailed   PhaseReason = "analysis_failed"
	ReasonRetry            PhaseReason = "retry"
)

// ErrorCode identifies user-surfaced backend errors.
type ErrorCode string

const (
	ErrorCodeStartup            ErrorCode = "startup"
	ErrorCodeAnalysis           ErrorCode = "analysis"
	ErrorCodeQuestionGeneration ErrorCode = "question_generation"
	ErrorCodeCapture            ErrorCode = "capture"
	ErrorCodeAudio              ErrorCode = "audio"
	ErrorCodeStorage            ErrorCode = "storage"
	ErrorCodeClipboard          ErrorCode = "clipboard"
)

// TranscriptKind identifies whether a stream event is interim or final text.
type TranscriptKind string

const (
	TranscriptKindPartial TranscriptKind = "partial"
	TranscriptKindFinal   TranscriptKind = "final"
)

// TranscriptEvent represents incremental transcription output from a provider.
type TranscriptEvent struct {
	Kind          TranscriptKind `json:"kind"`
	Text          string         `json:"text"`
	IsSpeechFinal bool           `json:"isSpeechFinal"`
}

// CaptureResult is returned once a recording is stopped.
type CaptureResult struct {
	Transcript string `json:"transcript"`
	Elapsed    int    `json:"elapsed"`
	AudioPath  string `json:"audioPath,omitempty"`
	AutoStop   bool   `json:"autoStop"`
}

// DrillState summarizes the drill machine for the UI.
type DrillState struct {
	Phase    DrillPhase `json:"phase"`
	Prompt   *Prompt    `json:"prompt"`
	Attempts []Attempt  `json:"attempts"`
	Error    string     `json:"error,omitempty"`
}
