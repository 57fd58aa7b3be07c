package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
)

// smartDateLayouts are tried in order; month-first wins for ambiguous dashed dates.
var smartDateLayouts = []string{
	"01-02-2006",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	consts.DateLayout,
	"01/02/2006",
	"02-01-06",
	"02/01/06",
}

// OfficePrefix returns the office part of a loan number.
func OfficePrefix(loanNo string) string {
	loanNo = strings.TrimSpace(loanNo)
	if len(loanNo) <= consts.OfficePrefixLength {
		return loanNo
	}
	return loanNo[:consts.OfficePrefixLength]
}

// ParseSmartDate accepts the date spellings clerks type in and returns the calendar day in UTC.
func ParseSmartDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range smartDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil && t.Year() > 1900 {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date format %q", s)
}

// FormatDate renders t in the API date layout.
func FormatDate(t time.Time) string {
	return t.Format(consts.DateLayout)
}
