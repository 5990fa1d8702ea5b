package prompts

import (
	"math/rand"
	"time"

	"clarity/internal/domain"
)

// Selector picks prompts from a corpus. The random source is injectable so
// selection is deterministic in tests.
type Selector struct {
	corpus []domain.Prompt
	intn   func(n int) int
}

// NewSelector returns a selector over the full static corpus.
func NewSelector() *Selector {
	return NewSelectorFor(Corpus, rand.Intn)
}

// NewSelectorFor builds a selector over a custom corpus and random source.
func NewSelectorFor(corpus []domain.Prompt, intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.Intn
	}
	return &Selector{corpus: corpus, intn: intn}
}

// Pick chooses a prompt sharing at least one of the caller's domains,
// optionally restricted to one question type. Prompts whose id is not in
// usedIDs are preferred; once every candidate has been seen, repeats are
// allowed. Selection among the final pool is uniform. An empty domain filter
// result falls back to the first corpus entry so Pick never returns nothing.
func (s *Selector) Pick(domains []domain.Domain, usedIDs []string, preferredType domain.QuestionType) domain.Prompt {
	pool := filterByDomains(s.corpus, domains)
	if preferredType != "" {
		pool = filterByType(pool, preferredType)
	}
	if len(pool) == 0 {
		return s.corpus[0]
	}

	used := make(map[string]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}

	unused := make([]domain.Prompt, 0, len(pool))
	for _, p := range pool {
		if _, ok := used[p.ID]; !ok {
			unused = append(unused, p)
		}
	}

	candidates := pool
	if len(unused) > 0 {
		candidates = unused
	}
	return candidates[s.intn(len(candidates))]
}

// Daily returns the deterministic prompt for a calendar date: the UTC date
// string is hashed into an index over the domain-filtered pool, so every
// installation with the same domains sees the same prompt on a given day.
func (s *Selector) Daily(domains []domain.Domain, date time.Time) domain.Prompt {
	pool := filterByDomains(s.corpus, domains)
	if len(pool) == 0 {
		return s.corpus[0]
	}
	idx := hashDate(date.UTC().Format("2006-01-02")) % len(pool)
	return pool[idx]
}

// hashDate folds the date string into a non-negative int using 31-based
// int32 string hashing, matching the index every other installation computes.
func hashDate(dateStr string) int {
	var hash int32
	for i := 0; i < len(dateStr); i++ {
		hash = hash*31 + int32(dateStr[i])
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return int(v)
}

func filterByDomains(pool []domain.Prompt, domains []domain.Domain) []domain.Prompt {
	wanted := make(map[domain.Domain]struct{}, len(domains))
	for _, d := range domains {
		wanted[d] = struct{}{}
	}

	out := make([]domain.Prompt, 0, len(pool))
	for _, p := range pool {
		for _, d := range p.Domains {
			if _, ok := wanted[d]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func filterByType(pool []domain.Prompt, t domain.QuestionType) []domain.Prompt {
	out := make([]domain.Prompt, 0, len(pool))
	for _, p := range pool {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}
