package sync

import (
	"fmt"
	"strings"
	"time"
)

// ToISODate converts a dd/mm/yy or dd/mm/yyyy date string to ISO yyyy-mm-dd:
// split on "/", left-pad day and month to two digits, expand a two-digit
// year to 20YY. Inputs that are not three slash-separated parts are returned
// unchanged; an empty input stays empty.
func ToISODate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return dateStr
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
}

// FromISODate converts an ISO yyyy-mm-dd date back to dd/mm/yy.
func FromISODate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	year := parts[0]
	if len(year) == 4 {
		year = year[2:]
	}
	return fmt.Sprintf("%s/%s/%s", pad2(parts[2]), pad2(parts[1]), year)
}

// EpochToISO converts an epoch-millisecond timestamp to ISO yyyy-mm-dd.
func EpochToISO(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format("2006-01-02")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
