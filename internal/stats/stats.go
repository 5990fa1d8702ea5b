// Package stats derives dashboard aggregates from the session history.
// Everything here is a pure function of the stored sessions; nothing is
// persisted.
package stats

import (
	"math"
	"sort"
	"time"

	"clarity/internal/domain"
)

// ScorePoint is one point on the recent-score trend, oldest first.
type ScorePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Overview is the dashboard summary.
type Overview struct {
	TotalSessions      int                `json:"totalSessions"`
	CurrentStreak      int                `json:"currentStreak"`
	LongestStreak      int                `json:"longestStreak"`
	AverageScore       float64            `json:"averageScore"`
	AverageImprovement float64            `json:"averageImprovement"`
	ScoresByDimension  map[string]float64 `json:"scoresByDimension"`
	RecentScores       []ScorePoint       `json:"recentScores"`
}

// Compute builds the overview from sessions ordered newest first, the order
// the store returns them in. Averages use each session's first attempt;
// improvement uses last minus first within multi-attempt sessions.
func Compute(sessions []domain.Session, now time.Time) Overview {
	overview := Overview{
		ScoresByDimension: map[string]float64{},
		RecentScores:      []ScorePoint{},
	}
	if len(sessions) == 0 {
		return overview
	}
	overview.TotalSessions = len(sessions)

	firstAttempts := make([]domain.Attempt, 0, len(sessions))
	for _, s := range sessions {
		if len(s.Attempts) > 0 {
			firstAttempts = append(firstAttempts, s.Attempts[0])
		}
	}

	if len(firstAttempts) > 0 {
		sum := 0
		for _, a := range firstAttempts {
			sum += a.Analysis.Overall
		}
		overview.AverageScore = float64(sum) / float64(len(firstAttempts))
	}

	improvements := 0
	improved := 0
	for _, s := range sessions {
		if len(s.Attempts) >= 2 {
			improvements++
			improved += s.Attempts[len(s.Attempts)-1].Analysis.Overall - s.Attempts[0].Analysis.Overall
		}
	}
	if improvements > 0 {
		overview.AverageImprovement = float64(improved) / float64(improvements)
	}

	for _, dim := range domain.DimensionNames() {
		if len(firstAttempts) == 0 {
			overview.ScoresByDimension[dim] = 0
			continue
		}
		sum := 0
		for _, a := range firstAttempts {
			if score, ok := a.Analysis.Dimensions.ByName(dim); ok {
				sum += score.Score
			}
		}
		overview.ScoresByDimension[dim] = float64(sum) / float64(len(firstAttempts))
	}

	recent := sessions
	if len(recent) > 20 {
		recent = recent[:20]
	}
	for i := len(recent) - 1; i >= 0; i-- {
		s := recent[i]
		if len(s.Attempts) == 0 {
			continue
		}
		overview.RecentScores = append(overview.RecentScores, ScorePoint{
			Date:  s.CreatedAt.In(now.Location()).Format("Jan 2"),
			Score: s.Attempts[0].Analysis.Overall,
		})
	}

	overview.CurrentStreak, overview.LongestStreak = streaks(sessions, now)
	return overview
}

// streaks counts consecutive practice days. The current streak is alive only
// if the most recent practice day is today or yesterday.
func streaks(sessions []domain.Session, now time.Time) (current, longest int) {
	if len(sessions) == 0 {
		return 0, 0
	}

	seen := map[time.Time]struct{}{}
	for _, s := range sessions {
		seen[startOfDay(s.CreatedAt, now.Location())] = struct{}{}
	}
	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := startOfDay(now, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	if days[0].Equal(today) || days[0].Equal(yesterday) {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Sub(days[i]) == 24*time.Hour {
				current++
			} else {
				break
			}
		}
	}

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return current, longest
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Insight flags one dimension that has scored persistently low, with a
// concrete practice tip.
type Insight struct {
	Dimension string  `json:"dimension"`
	Tip       string  `json:"tip"`
	AvgScore  float64 `json:"avgScore"`
}

var coachingTips = map[string]string{
	"structure":   `Try the "preview, body, recap" framework: state your main point, give 2-3 supporting details, then summarize. This gives listeners a clear roadmap.`,
	"clarity":     `Replace vague phrases with specifics. Instead of "we should improve things," say "we should reduce response time from 3s to 1s." Concrete language builds credibility.`,
	"conciseness": `Practice the "headline first" technique: lead with your conclusion, then add detail only if needed. Cut any sentence that doesn't add new information.`,
	"altitude":    `Match your answer to the question level. Strategic questions need frameworks, not tactics. Tactical questions need steps, not vision. Re-read the question before answering.`,
	"confidence":  `Eliminate hedging phrases like "I think maybe" or "sort of." State your position directly. If you're uncertain, say "my hypothesis is..." rather than undermining your point.`,
}

// Coaching surfaces dimensions scoring below 6 in at least 60% of the last
// ten sessions' first attempts. It needs at least three scored sessions
// before saying anything.
func Coaching(sessions []domain.Session) []Insight {
	if len(sessions) > 10 {
		sessions = sessions[:10]
	}
	if len(sessions) < 3 {
		return nil
	}

	insights := []Insight{}
	for _, dim := range domain.DimensionNames() {
		scores := []int{}
		for _, s := range sessions {
			if len(s.Attempts) == 0 {
				continue
			}
			if score, ok := s.Attempts[0].Analysis.Dimensions.ByName(dim); ok {
				scores = append(scores, score.Score)
			}
		}
		if len(scores) < 3 {
			continue
		}

		low := 0
		sum := 0
		for _, score := range scores {
			sum += score
			if score < 6 {
				low++
			}
		}
		if float64(low)/float64(len(scores)) >= 0.6 {
			avg := float64(sum) / float64(len(scores))
			insights = append(insights, Insight{
				Dimension: dim,
				Tip:       coachingTips[dim],
				AvgScore:  math.Round(avg*10) / 10,
			})
		}
	}
	return insights
}

// DimensionDelta compares one dimension between the first and latest attempt.
type DimensionDelta struct {
	Dimension string `json:"dimension"`
	First     int    `json:"first"`
	Last      int    `json:"last"`
	Delta     int    `json:"delta"`
}

// Comparison contrasts the first and latest attempt of one session.
type Comparison struct {
	AttemptCount    int              `json:"attemptCount"`
	FirstOverall    int              `json:"firstOverall"`
	LastOverall     int              `json:"lastOverall"`
	OverallDelta    int              `json:"overallDelta"`
	Dimensions      []DimensionDelta `json:"dimensions"`
	FirstTranscript string           `json:"firstTranscript"`
	LastTranscript  string           `json:"lastTranscript"`
}

// Compare reports first-versus-latest progress within a session. It returns
// false when the session has fewer than two attempts.
func Compare(session domain.Session) (Comparison, bool) {
	if len(session.Attempts) < 2 {
		return Comparison{}, false
	}

	first := session.Attempts[0]
	last := session.Attempts[len(session.Attempts)-1]

	cmp := Comparison{
		AttemptCount:    len(session.Attempts),
		FirstOverall:    first.Analysis.Overall,
		LastOverall:     last.Analysis.Overall,
		OverallDelta:    last.Analysis.Overall - first.Analysis.Overall,
		FirstTranscript: first.Transcript,
		LastTranscript:  last.Transcript,
	}
	for _, dim := range domain.DimensionNames() {
		f, _ := first.Analysis.Dimensions.ByName(dim)
		l, _ := last.Analysis.Dimensions.ByName(dim)
		cmp.Dimensions = append(cmp.Dimensions, DimensionDelta{
			Dimension: dim,
			First:     f.Score,
			Last:      l.Score,
			Delta:     l.Score - f.Score,
		})
	}
	return cmp, true
}
