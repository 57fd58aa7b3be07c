package consts

import "fmt"

// CheckKind identifies one of the receipt checks. The declared order is the execution order.
type CheckKind int

const (
	CheckLoanExistence CheckKind = iota + 1
	CheckExactMatch
	CheckAmountMismatch
	CheckDateMismatch
	CheckDuplicateReceiptNo
	CheckDuplicateReceiptInOffice
)

// CheckOrder is the fixed order in which the checks run.
var CheckOrder = []CheckKind{
	CheckLoanExistence,
	CheckExactMatch,
	CheckAmountMismatch,
	CheckDateMismatch,
	CheckDuplicateReceiptNo,
	CheckDuplicateReceiptInOffice,
}

var checkTitles = map[CheckKind]string{
	CheckLoanExistence:            "Loan Existence Check",
	CheckExactMatch:               "Exact Match Check",
	CheckAmountMismatch:           "Amount Mismatch Check",
	CheckDateMismatch:             "Date Mismatch Check",
	CheckDuplicateReceiptNo:       "Duplicate Receipt No. Check",
	CheckDuplicateReceiptInOffice: "Duplicate Receipt in Office Check",
}

// Title returns the display name of the check.
func (k CheckKind) Title() string {
	if title, ok := checkTitles[k]; ok {
		return title
	}
	return fmt.Sprintf("CheckKind(%d)", int(k))
}

func (k CheckKind) String() string {
	return k.Title()
}

// Valid reports whether k is one of the declared checks.
func (k CheckKind) Valid() bool {
	_, ok := checkTitles[k]
	return ok
}

// ParseCheckKind maps a check title back to its kind.
func ParseCheckKind(title string) (CheckKind, error) {
	for kind, t := range checkTitles {
		if t == title {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown check %q", title)
}
