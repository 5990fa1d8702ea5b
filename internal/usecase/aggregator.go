package usecase

import (
	"strings"
	"sync"

	"clarity/internal/domain"
)

// transcriptAggregator reconciles interim and final transcription events
// into one forward-only transcript. Finalized text is never retracted; the
// visible view only ever extends it with the latest interim segment.
type transcriptAggregator struct {
	mu      sync.Mutex
	finals  []string
	interim string
}

func newTranscriptAggregator() *transcriptAggregator {
	return &transcriptAggregator{}
}

// Add folds one event in and returns the updated visible transcript.
func (a *transcriptAggregator) Add(event domain.TranscriptEvent) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	text := strings.TrimSpace(event.Text)
	if text == "" {
		return a.viewLocked()
	}

	if event.Kind == domain.TranscriptKindFinal {
		a.finals = append(a.finals, text)
		a.interim = ""
	} else {
		a.interim = text
	}
	return a.viewLocked()
}

// View returns the current visible transcript: all confirmed text followed
// by the most recent interim segment.
func (a *transcriptAggregator) View() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewLocked()
}

// Final returns the transcript to submit: the confirmed text, falling back
// to the last interim segment when nothing was ever finalized.
func (a *transcriptAggregator) Final() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	confirmed := strings.TrimSpace(strings.Join(a.finals, " "))
	if confirmed == "" {
		return a.interim
	}
	return confirmed
}

func (a *transcriptAggregator) viewLocked() string {
	parts := make([]string, 0, len(a.finals)+1)
	parts = append(parts, a.finals...)
	if a.interim != "" {
		parts = append(parts, a.interim)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
