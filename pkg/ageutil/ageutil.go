package ageutil

import "math"

// epsilon absorbs float drift from repeated fractional increments (e.g. 365 steps of 1/365).
const epsilon = 1e-9

const (
	MonthsPerYear = 12
	WeeksPerYear  = 52
	DaysPerYear   = 365
)

// WholeYears returns the completed years of a fractional age
func WholeYears(age float64) int {
	return int(math.Floor(age + epsilon))
}

// CrossedBoundaries returns how many integer ages lie in (before, after].
func CrossedBoundaries(before, after float64) int {
	n := WholeYears(after) - WholeYears(before)
	if n < 0 {
		return 0
	}
	return n
}

// Elapsed splits the time between start and current age into whole years, months and days.
func Elapsed(start, current float64) (years, months, days int) {
	span := current - start
	if span <= 0 {
		return 0, 0, 0
	}
	years = int(math.Floor(span + epsilon))
	months = int(math.Floor(span*MonthsPerYear + epsilon))
	days = int(math.Floor(span*DaysPerYear + epsilon))
	return years, months, days
}

// YearsToMonths converts a fractional year span into (fractional) months.
func YearsToMonths(years float64) float64 {
	return years * MonthsPerYear
}
