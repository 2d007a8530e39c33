package registrar

import (
	"encoding/binary"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/pkg/safe"
	"golang.org/x/crypto/sha3"
)

// ReleaseScheduler maps names to the week from which bidding may open.
type ReleaseScheduler struct {
	launch  time.Time
	week    time.Duration
	modulus uint64
}

// NewReleaseScheduler builds a scheduler counting whole weeks from launch.
func NewReleaseScheduler(launch time.Time, week time.Duration, modulus uint64) *ReleaseScheduler {
	return &ReleaseScheduler{launch: launch, week: week, modulus: modulus}
}

// WeekIndex returns hash(name) mod modulus.
func WeekIndex(name model.Name, modulus uint64) uint64 {
	sum := sha3.Sum256([]byte(name))
	return binary.BigEndian.Uint64(sum[:8]) % modulus
}

// WeekIndex returns the release week of name.
func (s *ReleaseScheduler) WeekIndex(name model.Name) uint64 {
	return WeekIndex(name, s.modulus)
}

// CurrentWeek returns the number of whole weeks elapsed since launch. The
// second result is false before launch.
func (s *ReleaseScheduler) CurrentWeek(now time.Time) (uint64, bool) {
	if now.Before(s.launch) {
		return 0, false
	}
	week, err := safe.Uint64(int64(now.Sub(s.launch) / s.week))
	if err != nil {
		return 0, false
	}
	return week, true
}

// IsReleased reports whether name is open for bidding in currentWeek.
func (s *ReleaseScheduler) IsReleased(name model.Name, currentWeek uint64) bool {
	return currentWeek >= s.WeekIndex(name)
}

// Released reports whether name is open for bidding at now.
func (s *ReleaseScheduler) Released(name model.Name, now time.Time) bool {
	week, ok := s.CurrentWeek(now)
	return ok && s.IsReleased(name, week)
}

// ReleaseTime returns the instant name becomes biddable.
func (s *ReleaseScheduler) ReleaseTime(name model.Name) time.Time {
	return s.launch.Add(time.Duration(s.WeekIndex(name)) * s.week)
}

// ValidateName checks that name is an auctionable top-level name.
func ValidateName(name model.Name, minLength int) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(name) >= minLength {
		return ErrNotAuctioned
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
			if i == 0 || i == len(name)-1 || name[i-1] == '-' || name[i-1] == '_' {
				return ErrInvalidName
			}
		default:
			return ErrInvalidName
		}
	}
	return nil
}
