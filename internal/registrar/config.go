package registrar

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinAllowedTopLevelAccountLength is the name length from which names are no longer auctioned.
	MinAllowedTopLevelAccountLength = 32

	DefaultWeekModulus   uint64 = 52
	DefaultWeek                 = 7 * 24 * time.Hour
	DefaultBiddingWindow        = DefaultWeek
	DefaultRevealWindow         = DefaultWeek
)

// Config holds the registrar schedule and window settings.
type Config struct {
	Launch        time.Time
	Week          time.Duration
	BiddingWindow time.Duration
	RevealWindow  time.Duration
	WeekModulus   uint64
	MinNameLength int
}

// DefaultConfig returns the production constants for a launch instant.
func DefaultConfig(launch time.Time) Config {
	return Config{
		Launch:        launch,
		Week:          DefaultWeek,
		BiddingWindow: DefaultBiddingWindow,
		RevealWindow:  DefaultRevealWindow,
		WeekModulus:   DefaultWeekModulus,
		MinNameLength: MinAllowedTopLevelAccountLength,
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Launch.IsZero() {
		return errors.New("launch time is required")
	}
	if c.Week <= 0 {
		return fmt.Errorf("week duration must be positive, got %s", c.Week)
	}
	if c.BiddingWindow <= 0 {
		return fmt.Errorf("bidding window must be positive, got %s", c.BiddingWindow)
	}
	if c.RevealWindow <= 0 {
		return fmt.Errorf("reveal window must be positive, got %s", c.RevealWindow)
	}
	if c.WeekModulus == 0 {
		return errors.New("week modulus must be positive")
	}
	if c.MinNameLength <= 1 {
		return fmt.Errorf("min name length must be greater than 1, got %d", c.MinNameLength)
	}
	return nil
}
