package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// now is swapped out in tests.
var now = time.Now

// ParseDate parses input in the local time zone. It accepts the usual layouts
// browsers hand back from date inputs (2006-01-02) as well as looser forms such
// as 01/02/2006 or "January 2, 2006".
func ParseDate(input string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(input), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	return t, nil
}

func IsDate(input string) bool {
	if input == "" {
		return false
	}

	_, err := ParseDate(input)
	return err == nil
}

// IsBeforeDate reports whether input falls on or before reference. It returns
// false when either argument is empty and ErrInvalidDate when either is not a date.
func IsBeforeDate(input, reference string) (bool, error) {
	if input == "" || reference == "" {
		return false, nil
	}

	in, ref, err := parseDates(input, reference)
	if err != nil {
		return false, err
	}

	return !in.After(ref), nil
}

// IsAfterDate reports whether input falls on or after reference. It returns
// false when either argument is empty and ErrInvalidDate when either is not a date.
func IsAfterDate(input, reference string) (bool, error) {
	if input == "" || reference == "" {
		return false, nil
	}

	in, ref, err := parseDates(input, reference)
	if err != nil {
		return false, err
	}

	return !in.Before(ref), nil
}

// IsBeforeToday reports whether input is earlier than midnight today, local time.
func IsBeforeToday(input string) (bool, error) {
	if input == "" {
		return false, nil
	}

	t, err := ParseDate(input)
	if err != nil {
		return false, err
	}

	return t.Before(startOfToday()), nil
}

// IsAfterToday reports whether input is later than midnight today, local time.
// A bare date for today is not after today.
func IsAfterToday(input string) (bool, error) {
	if input == "" {
		return false, nil
	}

	t, err := ParseDate(input)
	if err != nil {
		return false, err
	}

	return t.After(startOfToday()), nil
}

// IsOfAge reports whether the calendar years between dob and today reach age.
// Birthdays later in the year are not taken into account.
func IsOfAge(dob string, age int) bool {
	if dob == "" || age == 0 {
		return false
	}

	born, err := ParseDate(dob)
	if err != nil {
		return false
	}

	return now().Year()-born.Year() >= age
}

func parseDates(input, reference string) (time.Time, time.Time, error) {
	in, err := ParseDate(input)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	ref, err := ParseDate(reference)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return in, ref, nil
}

func startOfToday() time.Time {
	y, m, d := now().In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
