package domain

import (
	"math"
	"time"
)

// LifecycleStatus is the derived validity category of a registration.
// It is recomputed on read and never stored.
type LifecycleStatus string

const (
	LifecycleActive       LifecycleStatus = "ACTIVE"
	LifecycleNeedsRenewal LifecycleStatus = "NEEDS_RENEWAL"
	LifecycleInactive     LifecycleStatus = "INACTIVE"
)

// Registrations are valid for two years. A first-time registration's clock
// starts when the chainsaw was acquired; a renewal's clock restarts at the
// moment the renewal record was created.
const (
	validityYears    = 2
	expiringSoonDays = 30
)

// ValidUntil returns the instant the registration stops being valid.
func (e *Equipment) ValidUntil() time.Time {
	if e.IsNew {
		return e.DateAcquired.AddDate(validityYears, 0, 0)
	}
	return e.CreatedAt.AddDate(validityYears, 0, 0)
}

// Lifecycle classifies the record at the given instant. An expired
// first-time registration is INACTIVE; an expired renewal is presented as
// NEEDS_RENEWAL rather than inactive.
func (e *Equipment) Lifecycle(now time.Time) LifecycleStatus {
	if now.After(e.ValidUntil()) {
		if e.IsNew {
			return LifecycleInactive
		}
		return LifecycleNeedsRenewal
	}
	return LifecycleActive
}

// DaysUntilExpiry returns the number of whole days (rounded up) until the
// validity window closes. Negative values are days since expiry.
func (e *Equipment) DaysUntilExpiry(now time.Time) int {
	hours := e.ValidUntil().Sub(now).Hours()
	return int(math.Ceil(hours / 24))
}

// ExpiringSoon reports whether the record is still valid but within the
// 30-day renewal warning window. This is a presentation threshold, not a
// stored status.
func (e *Equipment) ExpiringSoon(now time.Time) bool {
	if now.After(e.ValidUntil()) {
		return false
	}
	return e.DaysUntilExpiry(now) <= expiringSoonDays
}
