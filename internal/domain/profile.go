package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrTooFewDomains rejects a profile with fewer than two chosen domains.
var ErrTooFewDomains = errors.New("profile needs at least 2 domains")

// TimerDurations are the selectable fixed timer lengths, in seconds.
var TimerDurations = []int{60, 90, 120}

// Profile is the single local user profile, created during onboarding and
// replaced wholesale on settings save.
type Profile struct {
	Domains             []Domain   `json:"domains"`
	CreatedAt           time.Time  `json:"createdAt"`
	TimedMode           bool       `json:"timedMode,omitempty"`
	TimerDuration       int        `json:"timerDuration,omitempty"`
	PreferredDifficulty Difficulty `json:"preferredDifficulty,omitempty"`
}

// Validate enforces profile invariants before the profile reaches storage.
func (p Profile) Validate() error {
	if len(p.Domains) < 2 {
		return ErrTooFewDomains
	}
	if p.TimerDuration != 0 {
		valid := false
		for _, d := range TimerDurations {
			if p.TimerDuration == d {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("timer duration %d is not one of 60, 90, 120", p.TimerDuration)
		}
	}
	switch p.PreferredDifficulty {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q", p.PreferredDifficulty)
	}
	return nil
}
