// Package export renders sessions into shareable plain text.
package export

import (
	"fmt"
	"strings"

	"clarity/internal/domain"
)

// SessionText renders a session summary for the clipboard or a text file.
func SessionText(session domain.Session) string {
	var lines []string
	lines = append(lines,
		"Clarity — Session Summary",
		fmt.Sprintf("Question: %s", session.Prompt.Text),
		fmt.Sprintf("Type: %s", session.Prompt.Type),
		fmt.Sprintf("Date: %s", session.CreatedAt.Format("January 2, 2006")),
		"",
	)

	for i, a := range session.Attempts {
		d := a.Analysis.Dimensions
		lines = append(lines,
			fmt.Sprintf("--- Attempt %d ---", i+1),
			fmt.Sprintf("Score: %d/10", a.Analysis.Overall),
			fmt.Sprintf("Structure: %d | Clarity: %d | Conciseness: %d | Altitude: %d | Confidence: %d",
				d.Structure.Score, d.Clarity.Score, d.Conciseness.Score, d.Altitude.Score, d.Confidence.Score),
			fmt.Sprintf("Summary: %s", a.Analysis.Summary),
			fmt.Sprintf("Key Improvement: %s", a.Analysis.KeyImprovement),
			fmt.Sprintf("Transcript: %s", a.Transcript),
			"",
		)
	}

	return strings.Join(lines, "\n")
}
