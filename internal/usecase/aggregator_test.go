package usecase

import (
	"testing"

	"clarity/internal/domain"
)

func TestAggregatorInterimThenFinal(t *testing.T) {
	t.Parallel()

	agg := newTranscriptAggregator()

	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindPartial, Text: "hel"}); got != "hel" {
		t.Fatalf("unexpected view: %q", got)
	}
	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindPartial, Text: "hello wor"}); got != "hello wor" {
		t.Fatalf("interim should replace interim, got %q", got)
	}
	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindFinal, Text: "hello world"}); got != "hello world" {
		t.Fatalf("final should replace interim, got %q", got)
	}
	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindPartial, Text: "how"}); got != "hello world how" {
		t.Fatalf("interim should extend finals, got %q", got)
	}
	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindFinal, Text: "how are you"}); got != "hello world how are you" {
		t.Fatalf("unexpected view after second final: %q", got)
	}

	if got := agg.Final(); got != "hello world how are you" {
		t.Fatalf("unexpected final transcript: %q", got)
	}
}

func TestAggregatorFinalFallsBackToInterim(t *testing.T) {
	t.Parallel()

	agg := newTranscriptAggregator()
	agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindPartial, Text: "only interim"})

	if got := agg.Final(); got != "only interim" {
		t.Fatalf("expected interim fallback, got %q", got)
	}
}

func TestAggregatorIgnoresEmptyEvents(t *testing.T) {
	t.Parallel()

	agg := newTranscriptAggregator()
	agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindFinal, Text: "kept"})

	if got := agg.Add(domain.TranscriptEvent{Kind: domain.TranscriptKindFinal, Text: "   "}); got != "kept" {
		t.Fatalf("blank final should not change the view, got %q", got)
	}
	if got := agg.View(); got != "kept" {
		t.Fatalf("unexpected view: %q", got)
	}
}

func TestAggregatorEmpty(t *testing.T) {
	t.Parallel()

	agg := newTranscriptAggregator()
	if agg.View() != "" || agg.Final() != "" {
		t.Fatalf("empty aggregator should return empty strings")
	}
}
