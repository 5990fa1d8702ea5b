package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"clarity/internal/domain"
	"clarity/internal/ports"
)

type fakeAudioCapture struct {
	sessions []ports.AudioSession
	err      error
	calls    int
}

func (f *fakeAudioCapture) Start(_ context.Context, _ ports.AudioConfig) (ports.AudioSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls >= len(f.sessions) {
		return nil, errors.New("no audio session configured")
	}
	session := f.sessions[f.calls]
	f.calls++
	return session, nil
}

type fakeAudioSession struct {
	mu        sync.Mutex
	chunks    [][]byte
	index     int
	stopCalls int
	stopErr   error
}

func (f *fakeAudioSession) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.index >= len(f.chunks) {
		return 0, io.EOF
	}
	n := copy(p, f.chunks[f.index])
	f.index++
	return n, nil
}

func (f *fakeAudioSession) Close() error { return nil }

func (f *fakeAudioSession) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopCalls++
	return f.stopErr
}

type fakeProvider struct {
	sessions    []ports.StreamingSession
	err         error
	unsupported bool
	calls       int
}

func (f *fakeProvider) Supported() bool { return !f.unsupported }

func (f *fakeProvider) StartStreaming(_ context.Context, _ ports.StreamingConfig) (ports.StreamingSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls >= len(f.sessions) {
		return nil, errors.New("no stream session configured")
	}
	session := f.sessions[f.calls]
	f.calls++
	return session, nil
}

type fakeStreamingSession struct {
	events     chan domain.TranscriptEvent
	waitErr    error
	closeSend  int
	closeCalls int
	closed     bool
	mu         sync.Mutex
}

func newFakeStreamingSession() *fakeStreamingSession {
	return &fakeStreamingSession{events: make(chan domain.TranscriptEvent, 16)}
}

func (f *fakeStreamingSession) SendAudio(_ []byte) error { return nil }

func (f *fakeStreamingSession) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeSend++
	if !f.closed {
		close(f.events)
		f.closed = true
	}
	return nil
}

func (f *fakeStreamingSession) Events() <-chan domain.TranscriptEvent { return f.events }

func (f *fakeStreamingSession) Wait() error {
	time.Sleep(5 * time.Millisecond)
	return f.waitErr
}

func (f *fakeStreamingSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	if !f.closed {
		close(f.events)
		f.closed = true
	}
	return nil
}

type phaseEvent struct {
	phase  domain.DrillPhase
	reason domain.PhaseReason
}

type errEvent struct {
	code   domain.ErrorCode
	detail string
}

type fakeEventSink struct {
	mu sync.Mutex

	phases   []phaseEvent
	partials []string
	ticks    []int
	captures []domain.CaptureResult
	errors   []errEvent
}

func (f *fakeEventSink) PhaseChanged(phase domain.DrillPhase, reason domain.PhaseReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phases = append(f.phases, phaseEvent{phase: phase, reason: reason})
}

func (f *fakeEventSink) PartialTranscript(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.partials = append(f.partials, text)
}

func (f *fakeEventSink) CaptureTick(elapsedSeconds int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks = append(f.ticks, elapsedSeconds)
}

func (f *fakeEventSink) CaptureFinished(result domain.CaptureResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures = append(f.captures, result)
}

func (f *fakeEventSink) DrillError(code domain.ErrorCode, detail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, errEvent{code: code, detail: detail})
}

func (f *fakeEventSink) snapshotPhases() []phaseEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]phaseEvent, len(f.phases))
	copy(out, f.phases)
	return out
}

func (f *fakeEventSink) snapshotPartials() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.partials))
	copy(out, f.partials)
	return out
}

func (f *fakeEventSink) snapshotTicks() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.ticks))
	copy(out, f.ticks)
	return out
}

func (f *fakeEventSink) snapshotCaptures() []domain.CaptureResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.CaptureResult, len(f.captures))
	copy(out, f.captures)
	return out
}

func (f *fakeEventSink) snapshotErrors() []errEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]errEvent, len(f.errors))
	copy(out, f.errors)
	return out
}

type fakeAnalysis struct {
	mu      sync.Mutex
	result  domain.AnalysisResult
	err     error
	calls   int
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeAnalysis) Analyze(_ context.Context, _ ports.AnalysisRequest) (domain.AnalysisResult, error) {
	f.mu.Lock()
	f.calls++
	entered := f.entered
	block := f.block
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if f.err != nil {
		return domain.AnalysisResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeAnalysis) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeGenerator struct {
	text string
	err  error
	last ports.QuestionRequest
}

func (f *fakeGenerator) GenerateQuestion(_ context.Context, req ports.QuestionRequest) (string, error) {
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (f *seqIDs) NewID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return fmt.Sprintf("session-%d", f.n)
}

func validAnalysis(overall int) domain.AnalysisResult {
	dim := func(score int) domain.DimensionScore {
		return domain.DimensionScore{Score: score, Note: "note"}
	}
	return domain.AnalysisResult{
		Overall: overall,
		Dimensions: domain.Dimensions{
			Structure:   dim(overall),
			Clarity:     dim(overall),
			Conciseness: dim(overall),
			Altitude:    dim(overall),
			Confidence:  dim(overall),
		},
		Summary:         "solid answer",
		KeyImprovement:  "tighten the opening",
		PolishedVersion: "a polished rendition",
		FillerWords:     []string{"um"},
	}
}
