package timezone

import "time"

// WithLocation sets the active zone. A nil location means no active zone.
func WithLocation(loc *time.Location) Option {
	return func(t *TimeZone) {
		t.loc = loc
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*TimeZone)
