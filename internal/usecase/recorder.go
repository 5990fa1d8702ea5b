package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"clarity/internal/domain"
	"clarity/internal/ports"
)

// ErrCaptureUnsupported is returned when live transcription cannot be
// offered at all. The UI checks the capability before showing any recording
// controls, so reaching this error is a caller bug.
var ErrCaptureUnsupported = errors.New("live transcription is not available")

// RecorderConfig controls capture behavior.
type RecorderConfig struct {
	Audio          ports.AudioConfig
	Streaming      ports.StreamingConfig
	ChunkSize      int
	StreamingGrace time.Duration
	TickInterval   time.Duration
	RecordingsDir  string
}

// CaptureOptions are the recognized per-capture options.
type CaptureOptions struct {
	// MaxDuration bounds the recording in seconds; 0 disables the bound.
	MaxDuration int
	// OnAutoStop is invoked exactly once if MaxDuration stops the capture.
	OnAutoStop func()
	// RecordAudio asks for a parallel audio artifact for playback. Failure
	// to acquire the device degrades to transcript-only capture.
	RecordAudio bool
}

// Recorder wraps the live transcription device and the optional parallel
// audio recorder behind a stable start/stop/transcript/elapsed contract.
type Recorder struct {
	provider ports.TranscriptionProvider
	audio    ports.AudioCapture
	events   ports.EventSink
	cfg      RecorderConfig
	log      *zap.Logger

	mu      sync.Mutex
	current *activeCapture
}

func NewRecorder(
	provider ports.TranscriptionProvider,
	audio ports.AudioCapture,
	events ports.EventSink,
	cfg RecorderConfig,
	log *zap.Logger,
) *Recorder {
	if cfg.ChunkSize < 256 {
		cfg.ChunkSize = 4096
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{
		provider: provider,
		audio:    audio,
		events:   events,
		cfg:      cfg,
		log:      log,
	}
}

// Supported reports whether capture can be offered.
func (r *Recorder) Supported() bool {
	return r.provider.Supported()
}

type activeCapture struct {
	cancel     context.CancelFunc
	stream     ports.StreamingSession
	audio      ports.AudioSession
	aggregator *transcriptAggregator
	opts       CaptureOptions

	pcmMu sync.Mutex
	pcm   []byte

	elapsedMu sync.Mutex
	elapsed   int

	eventsDone chan struct{}
	audioDone  chan struct{}
	tickStop   chan struct{}

	stopOnce sync.Once
	result   domain.CaptureResult
}

func (c *activeCapture) bumpElapsed() int {
	c.elapsedMu.Lock()
	defer c.elapsedMu.Unlock()
	c.elapsed++
	return c.elapsed
}

func (c *activeCapture) getElapsed() int {
	c.elapsedMu.Lock()
	defer c.elapsedMu.Unlock()
	return c.elapsed
}

func (c *activeCapture) appendPCM(chunk []byte) {
	c.pcmMu.Lock()
	c.pcm = append(c.pcm, chunk...)
	c.pcmMu.Unlock()
}

func (c *activeCapture) takePCM() []byte {
	c.pcmMu.Lock()
	defer c.pcmMu.Unlock()
	return c.pcm
}

// Start begins a new capture. Any previous capture is torn down first; the
// microphone handle is never held by two sessions at once.
func (r *Recorder) Start(ctx context.Context, opts CaptureOptions) error {
	if !r.provider.Supported() {
		return ErrCaptureUnsupported
	}

	r.mu.Lock()
	previous := r.current
	r.current = nil
	r.mu.Unlock()
	if previous != nil {
		r.teardown(previous)
	}

	captureCtx, cancel := context.WithCancel(ctx)
	stream, err := r.provider.StartStreaming(captureCtx, r.cfg.Streaming)
	if err != nil {
		cancel()
		return err
	}

	var audioSession ports.AudioSession
	if opts.RecordAudio && r.audio != nil {
		audioSession, err = r.audio.Start(captureCtx, r.cfg.Audio)
		if err != nil {
			// Transcript-only mode; the drill continues without playback.
			r.log.Warn("audio device unavailable, capturing transcript only", zap.Error(err))
			audioSession = nil
		}
	}

	active := &activeCapture{
		cancel:     cancel,
		stream:     stream,
		audio:      audioSession,
		aggregator: newTranscriptAggregator(),
		opts:       opts,
		eventsDone: make(chan struct{}),
		audioDone:  make(chan struct{}),
		tickStop:   make(chan struct{}),
	}

	r.mu.Lock()
	r.current = active
	r.mu.Unlock()

	go r.consumeTranscriptionEvents(active)
	if audioSession != nil {
		go r.pumpAudio(active)
	} else {
		close(active.audioDone)
	}
	go r.tickLoop(active)

	return nil
}

// Stop ends the active capture and returns its result. Stopping when no
// capture is active is a no-op.
func (r *Recorder) Stop() domain.CaptureResult {
	r.mu.Lock()
	active := r.current
	r.mu.Unlock()
	if active == nil {
		return domain.CaptureResult{}
	}
	return r.finish(active, false)
}

// Abort discards the active capture without producing a result.
func (r *Recorder) Abort() {
	r.mu.Lock()
	active := r.current
	r.current = nil
	r.mu.Unlock()
	if active == nil {
		return
	}
	r.teardown(active)
}

// Close tears down any outstanding capture and clock. Safe to call even when
// Stop was never invoked.
func (r *Recorder) Close() {
	r.Abort()
}

func (r *Recorder) consumeTranscriptionEvents(active *activeCapture) {
	defer close(active.eventsDone)

	for event := range active.stream.Events() {
		view := active.aggregator.Add(event)
		if view != "" {
			r.events.PartialTranscript(view)
		}
	}
}

func (r *Recorder) pumpAudio(active *activeCapture) {
	defer close(active.audioDone)

	buf := make([]byte, r.cfg.ChunkSize)
	for {
		n, err := active.audio.Read(buf)
		if n > 0 {
			active.appendPCM(buf[:n])
			if sendErr := active.stream.SendAudio(buf[:n]); sendErr != nil {
				r.log.Warn("audio streaming interrupted", zap.Error(sendErr))
				return
			}
		}
		if err != nil {
			if !isEOF(err) {
				r.events.DrillError(domain.ErrorCodeAudio, fmt.Sprintf("audio capture error: %v", err))
			}
			return
		}
	}
}

func (r *Recorder) tickLoop(active *activeCapture) {
	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-active.tickStop:
			return
		case <-ticker.C:
			elapsed := active.bumpElapsed()
			r.events.CaptureTick(elapsed)
			if active.opts.MaxDuration > 0 && elapsed >= active.opts.MaxDuration {
				go r.autoStop(active)
				return
			}
		}
	}
}

// autoStop runs the internal stop path and then the caller's notification,
// in that order, when the elapsed clock reaches the configured bound.
func (r *Recorder) autoStop(active *activeCapture) {
	r.finish(active, true)
	if active.opts.OnAutoStop != nil {
		active.opts.OnAutoStop()
	}
}

// finish drives the full stop sequence exactly once; concurrent callers
// block until the first completes and observe the same result.
func (r *Recorder) finish(active *activeCapture, auto bool) domain.CaptureResult {
	active.stopOnce.Do(func() {
		close(active.tickStop)

		if active.audio != nil {
			if err := active.audio.Stop(); err != nil {
				r.log.Warn("audio device did not stop cleanly", zap.Error(err))
			}
		}

		if r.cfg.StreamingGrace > 0 {
			time.Sleep(r.cfg.StreamingGrace)
		}

		_ = active.stream.CloseSend()
		streamErr := waitForStream(active.stream, 4*time.Second)
		<-active.eventsDone
		<-active.audioDone

		elapsed := active.getElapsed()
		if auto && active.opts.MaxDuration > 0 {
			elapsed = active.opts.MaxDuration
		}

		result := domain.CaptureResult{
			Transcript: active.aggregator.Final(),
			Elapsed:    elapsed,
			AutoStop:   auto,
		}

		if streamErr != nil && result.Transcript == "" {
			r.events.DrillError(domain.ErrorCodeCapture, streamErr.Error())
		}

		if pcm := active.takePCM(); len(pcm) > 0 && r.cfg.RecordingsDir != "" {
			path := filepath.Join(r.cfg.RecordingsDir, fmt.Sprintf("answer-%d.wav", time.Now().UnixNano()))
			if err := writeWAV(path, pcm, r.cfg.Audio.SampleRate, r.cfg.Audio.Channels); err != nil {
				r.log.Warn("could not finalize audio artifact", zap.Error(err))
			} else {
				result.AudioPath = path
			}
		}

		active.cancel()
		active.result = result

		r.mu.Lock()
		if r.current == active {
			r.current = nil
		}
		r.mu.Unlock()

		r.events.CaptureFinished(result)
	})
	return active.result
}

// teardown releases a capture's resources without emitting a result.
func (r *Recorder) teardown(active *activeCapture) {
	active.stopOnce.Do(func() {
		close(active.tickStop)
		active.cancel()
		if active.audio != nil {
			_ = active.audio.Stop()
		}
		_ = active.stream.Close()
		<-active.eventsDone
		<-active.audioDone
	})
}
