package calculation

import "time"

// nowFunc stamps generated reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Now returns the current time from the overridable provider.
func Now() time.Time { return nowFunc() }
