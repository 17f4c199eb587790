package dateutil

import (
	"time"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of a year
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonthsClamped adds months keeping the day within the target month:
// Jan 31 + 1 month is Feb 28 (or 29).
func AddMonthsClamped(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	month := time.Month(m + 1)

	day := date.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// InstallmentIntervalMonths returns the months between installments of a
// yearly policy paid in divisor parts (2 -> 6, 4 -> 3, 12 -> 1). Divisors
// that do not split a year evenly round down, never below one month.
func InstallmentIntervalMonths(divisor int) int {
	if divisor <= 1 {
		return 12
	}
	interval := 12 / divisor
	if interval < 1 {
		return 1
	}
	return interval
}
