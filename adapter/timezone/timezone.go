// Package timezone contains the default [domain.TimeZone] implementation.
package timezone

import (
	"time"

	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

// TimeZone implements [domain.TimeZone]. It is read-only once built and can be
// shared by any number of goroutines.
type TimeZone struct {
	loc *time.Location
}

// NewTimeZone returns a new implementation of domain.TimeZone. Without
// [WithLocation], no zone is active.
func NewTimeZone(opts ...Option) domain.TimeZone {
	var t TimeZone
	for _, opt := range opts {
		opt(&t)
	}
	return &t
}

// Load returns a [domain.TimeZone] for the IANA zone name, such as
// "America/New_York". An empty name means no active zone, and "UTC" or
// "Local" select the respective zones.
func Load(name string) (domain.TimeZone, error) {
	if name == "" {
		return NewTimeZone(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return NewTimeZone(WithLocation(loc)), nil
}

// Location implements [domain.TimeZone].
func (t *TimeZone) Location() *time.Location {
	return t.loc
}
