package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// RIPS dates are day-first with a fixed four-digit year.
const ripsDateLayout = "02/01/2006"

var ripsDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsDateShaped reports whether v looks like a dd/mm/yyyy date.
func IsDateShaped(v string) bool {
	return ripsDatePattern.MatchString(v)
}

// ParseDate parses a dd/mm/yyyy string. Returns nil when the input is not a
// parseable date.
func ParseDate(s string) *time.Time {
	if !ripsDatePattern.MatchString(s) {
		return nil
	}
	t, err := time.Parse(ripsDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// DateToSerial converts a dd/mm/yyyy string to the legacy spreadsheet
// day-serial: days since 1900-01-01 inclusive, with a +1 correction after day
// 59 so that the nonexistent 1900-02-29 counts as a day. Anything that is not
// a well-formed date passes through unchanged.
func DateToSerial(v string) string {
	t := ParseDate(v)
	if t == nil {
		return v
	}
	days := int(t.Sub(serialEpoch).Hours()/24) + 1
	if days > 59 {
		days++
	}
	return strconv.Itoa(days)
}

// PeriodLabel renders a dd/mm/yyyy string as "YYYY-MM". ok is false when the
// input does not parse.
func PeriodLabel(s string) (string, bool) {
	t := ParseDate(s)
	if t == nil {
		return "", false
	}
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month())), true
}
