package export

import (
	"strings"
	"testing"
	"time"

	"clarity/internal/domain"
)

func TestSessionText(t *testing.T) {
	t.Parallel()

	dim := func(score int) domain.DimensionScore {
		return domain.DimensionScore{Score: score, Note: "n"}
	}
	session := domain.Session{
		ID: "s-1",
		Prompt: domain.Prompt{
			ID:   "bp-1",
			Text: "Why does this product exist?",
			Type: domain.QuestionBigPicture,
		},
		CreatedAt: time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
		Attempts: []domain.Attempt{
			{
				Transcript: "first try",
				Duration:   40,
				Analysis: domain.AnalysisResult{
					Overall: 5,
					Dimensions: domain.Dimensions{
						Structure: dim(4), Clarity: dim(5), Conciseness: dim(5), Altitude: dim(6), Confidence: dim(5),
					},
					Summary:         "Rambling but honest.",
					KeyImprovement:  "Lead with the point.",
					PolishedVersion: "p",
				},
			},
			{
				Transcript: "second try",
				Duration:   38,
				Analysis: domain.AnalysisResult{
					Overall: 8,
					Dimensions: domain.Dimensions{
						Structure: dim(8), Clarity: dim(8), Conciseness: dim(7), Altitude: dim(8), Confidence: dim(8),
					},
					Summary:         "Much tighter.",
					KeyImprovement:  "Drop the last caveat.",
					PolishedVersion: "p",
				},
			},
		},
	}

	text := SessionText(session)

	if !strings.HasPrefix(text, "Clarity — Session Summary\n") {
		t.Fatalf("unexpected header: %q", text)
	}
	for _, want := range []string{
		"Question: Why does this product exist?",
		"Type: big-picture",
		"Date: March 10, 2026",
		"--- Attempt 1 ---",
		"Score: 5/10",
		"Structure: 4 | Clarity: 5 | Conciseness: 5 | Altitude: 6 | Confidence: 5",
		"Summary: Rambling but honest.",
		"Key Improvement: Lead with the point.",
		"Transcript: first try",
		"--- Attempt 2 ---",
		"Score: 8/10",
		"Transcript: second try",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing line %q in:\n%s", want, text)
		}
	}

	if strings.Index(text, "--- Attempt 1 ---") > strings.Index(text, "--- Attempt 2 ---") {
		t.Fatalf("attempts out of order")
	}
}

func TestSessionTextWithoutAttempts(t *testing.T) {
	t.Parallel()

	session := domain.Session{
		Prompt:    domain.Prompt{Text: "Q", Type: domain.QuestionDefend},
		CreatedAt: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}

	text := SessionText(session)
	if strings.Contains(text, "Attempt") {
		t.Fatalf("no attempt blocks expected: %q", text)
	}
	if !strings.Contains(text, "Date: January 2, 2026") {
		t.Fatalf("missing date: %q", text)
	}
}
