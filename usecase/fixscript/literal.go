package fixscript

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const sqlTimeLayout = "2006-01-02 15:04:05.000"

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func timestamp(t time.Time) string {
	return quote(t.Format(sqlTimeLayout))
}

func integer(n int64) string {
	return strconv.FormatInt(n, 10)
}

// lastPastedLine returns the last non-blank line of a spreadsheet paste.
func lastPastedLine(pasted string) string {
	var line string
	for _, l := range strings.Split(strings.ReplaceAll(pasted, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
		}
	}
	return line
}

func joinStatements(parts ...string) string {
	return strings.Join(parts, "\n\n")
}
