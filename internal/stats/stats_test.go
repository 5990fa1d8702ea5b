package stats

import (
	"testing"
	"time"

	"clarity/internal/domain"
)

func attempt(overall int, dims map[string]int) domain.Attempt {
	dim := func(name string) domain.DimensionScore {
		score, ok := dims[name]
		if !ok {
			score = overall
		}
		return domain.DimensionScore{Score: score, Note: "n"}
	}
	return domain.Attempt{
		Transcript: "an answer",
		Duration:   40,
		Analysis: domain.AnalysisResult{
			Overall: overall,
			Dimensions: domain.Dimensions{
				Structure:   dim("structure"),
				Clarity:     dim("clarity"),
				Conciseness: dim("conciseness"),
				Altitude:    dim("altitude"),
				Confidence:  dim("confidence"),
			},
			Summary:         "s",
			KeyImprovement:  "k",
			PolishedVersion: "p",
		},
	}
}

func session(id string, created time.Time, overalls ...int) domain.Session {
	s := domain.Session{
		ID:        id,
		Prompt:    domain.Prompt{ID: "bp-1", Type: domain.QuestionBigPicture},
		CreatedAt: created,
	}
	for _, overall := range overalls {
		s.Attempts = append(s.Attempts, attempt(overall, nil))
	}
	return s
}

var statsNow = time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return statsNow.AddDate(0, 0, offset)
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	overview := Compute(nil, statsNow)
	if overview.TotalSessions != 0 || overview.CurrentStreak != 0 || overview.LongestStreak != 0 {
		t.Fatalf("unexpected zero-state overview: %+v", overview)
	}
	if overview.AverageScore != 0 || len(overview.RecentScores) != 0 {
		t.Fatalf("unexpected zero-state overview: %+v", overview)
	}
}

func TestComputeAverages(t *testing.T) {
	t.Parallel()

	// Newest first. The middle session improved from 5 to 8.
	sessions := []domain.Session{
		session("c", day(0), 8),
		session("b", day(-1), 5, 8),
		session("a", day(-2), 6),
	}

	overview := Compute(sessions, statsNow)
	if overview.TotalSessions != 3 {
		t.Fatalf("unexpected total: %d", overview.TotalSessions)
	}
	// First attempts: 8, 5, 6.
	if want := (8 + 5 + 6) / 3.0; overview.AverageScore != want {
		t.Fatalf("unexpected average score: %v", overview.AverageScore)
	}
	if overview.AverageImprovement != 3 {
		t.Fatalf("unexpected improvement: %v", overview.AverageImprovement)
	}
	if got := overview.ScoresByDimension["clarity"]; got != (8+5+6)/3.0 {
		t.Fatalf("unexpected clarity average: %v", got)
	}
}

func TestComputeRecentScoresAreChronological(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("c", day(0), 9),
		session("b", day(-1), 7),
		session("a", day(-2), 5),
	}

	overview := Compute(sessions, statsNow)
	if len(overview.RecentScores) != 3 {
		t.Fatalf("expected 3 points, got %d", len(overview.RecentScores))
	}
	if overview.RecentScores[0].Score != 5 || overview.RecentScores[2].Score != 9 {
		t.Fatalf("scores should be oldest first: %+v", overview.RecentScores)
	}
	if overview.RecentScores[0].Date != "Mar 8" {
		t.Fatalf("unexpected date label: %q", overview.RecentScores[0].Date)
	}
}

func TestComputeRecentScoresCapAtTwenty(t *testing.T) {
	t.Parallel()

	var sessions []domain.Session
	for i := 0; i < 25; i++ {
		sessions = append(sessions, session("s", day(-i), 7))
	}

	overview := Compute(sessions, statsNow)
	if len(overview.RecentScores) != 20 {
		t.Fatalf("expected 20 points, got %d", len(overview.RecentScores))
	}
}

func TestStreakAliveToday(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("c", day(0), 7),
		session("b", day(-1), 7),
		session("a", day(-2), 7),
	}

	overview := Compute(sessions, statsNow)
	if overview.CurrentStreak != 3 {
		t.Fatalf("unexpected current streak: %d", overview.CurrentStreak)
	}
	if overview.LongestStreak != 3 {
		t.Fatalf("unexpected longest streak: %d", overview.LongestStreak)
	}
}

func TestStreakAliveYesterday(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("b", day(-1), 7),
		session("a", day(-2), 7),
	}

	overview := Compute(sessions, statsNow)
	if overview.CurrentStreak != 2 {
		t.Fatalf("a streak ending yesterday is still alive, got %d", overview.CurrentStreak)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("c", day(-3), 7),
		session("b", day(-4), 7),
		session("a", day(-5), 7),
	}

	overview := Compute(sessions, statsNow)
	if overview.CurrentStreak != 0 {
		t.Fatalf("a streak ending three days ago is dead, got %d", overview.CurrentStreak)
	}
	if overview.LongestStreak != 3 {
		t.Fatalf("longest streak should survive the gap, got %d", overview.LongestStreak)
	}
}

func TestStreakCountsEachDayOnce(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("c", day(0).Add(-2*time.Hour), 7),
		session("b", day(0), 7),
		session("a", day(-1), 7),
	}

	overview := Compute(sessions, statsNow)
	if overview.CurrentStreak != 2 {
		t.Fatalf("two sessions on one day count once, got %d", overview.CurrentStreak)
	}
}

func TestCoachingNeedsThreeSessions(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("b", day(0), 4),
		session("a", day(-1), 4),
	}
	if got := Coaching(sessions); got != nil {
		t.Fatalf("expected no insights with two sessions, got %v", got)
	}
}

func TestCoachingFlagsPersistentWeakness(t *testing.T) {
	t.Parallel()

	weakStructure := func(id string, created time.Time, structure int) domain.Session {
		s := domain.Session{ID: id, CreatedAt: created}
		s.Attempts = append(s.Attempts, attempt(7, map[string]int{"structure": structure, "clarity": 8}))
		return s
	}

	sessions := []domain.Session{
		weakStructure("e", day(0), 4),
		weakStructure("d", day(-1), 5),
		weakStructure("c", day(-2), 5),
		weakStructure("b", day(-3), 7),
		weakStructure("a", day(-4), 4),
	}

	insights := Coaching(sessions)
	if len(insights) != 1 {
		t.Fatalf("expected one insight, got %+v", insights)
	}
	if insights[0].Dimension != "structure" {
		t.Fatalf("unexpected dimension: %s", insights[0].Dimension)
	}
	if insights[0].Tip == "" {
		t.Fatalf("insight must carry a tip")
	}
	if insights[0].AvgScore != 5.0 {
		t.Fatalf("unexpected average: %v", insights[0].AvgScore)
	}
}

func TestCoachingIgnoresOccasionalLowScores(t *testing.T) {
	t.Parallel()

	sessions := []domain.Session{
		session("c", day(0), 8),
		session("b", day(-1), 4),
		session("a", day(-2), 8),
	}
	if got := Coaching(sessions); len(got) != 0 {
		t.Fatalf("one low score in three is below the threshold, got %+v", got)
	}
}

func TestCompareRequiresTwoAttempts(t *testing.T) {
	t.Parallel()

	if _, ok := Compare(session("a", day(0), 7)); ok {
		t.Fatalf("single-attempt session has nothing to compare")
	}
}

func TestCompareFirstAgainstLatest(t *testing.T) {
	t.Parallel()

	s := session("a", day(0), 5, 6, 8)
	cmp, ok := Compare(s)
	if !ok {
		t.Fatalf("expected a comparison")
	}
	if cmp.AttemptCount != 3 {
		t.Fatalf("unexpected attempt count: %d", cmp.AttemptCount)
	}
	if cmp.FirstOverall != 5 || cmp.LastOverall != 8 || cmp.OverallDelta != 3 {
		t.Fatalf("unexpected overall comparison: %+v", cmp)
	}
	if len(cmp.Dimensions) != 5 {
		t.Fatalf("expected all five dimensions, got %d", len(cmp.Dimensions))
	}
	if cmp.Dimensions[0].Dimension != "structure" || cmp.Dimensions[0].Delta != 3 {
		t.Fatalf("unexpected dimension delta: %+v", cmp.Dimensions[0])
	}
}
