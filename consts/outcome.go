package consts

// Outcome is the overall classification of a receipt check.
type Outcome string

const (
	OutcomeError                    Outcome = "error"
	OutcomeReceiptFound             Outcome = "receipt_found"
	OutcomeDuplicateReceiptNo       Outcome = "duplicate_receipt_no"
	OutcomeDuplicateReceiptInOffice Outcome = "duplicate_receipt_in_office"
	OutcomeAmountMismatchWarning    Outcome = "amount_mismatch_warning"
	OutcomeDateWarning              Outcome = "date_warning"
	OutcomeDoubleEntryWarning       Outcome = "double_entry_warning"
	OutcomeNotFound                 Outcome = "not_found"
	OutcomeLoanNotFound             Outcome = "loan_not_found"
)

// severityOrder lists the reducible outcomes from most to least severe.
// loan_not_found is terminal and never takes part in the reduction.
var severityOrder = []Outcome{
	OutcomeError,
	OutcomeReceiptFound,
	OutcomeDuplicateReceiptNo,
	OutcomeDuplicateReceiptInOffice,
	OutcomeAmountMismatchWarning,
	OutcomeDateWarning,
	OutcomeDoubleEntryWarning,
	OutcomeNotFound,
}

var severityRank = func() map[Outcome]int {
	m := make(map[Outcome]int, len(severityOrder))
	for i, o := range severityOrder {
		m[o] = len(severityOrder) - i
	}
	return m
}()

// Severity returns the rank of o; higher is more severe. Unknown outcomes rank 0.
func (o Outcome) Severity() int {
	return severityRank[o]
}

// MoreSevere returns whichever of a and b ranks higher, preferring a on ties.
func MoreSevere(a, b Outcome) Outcome {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// Message returns the human readable summary shown next to the final badge.
func (o Outcome) Message() string {
	switch o {
	case OutcomeError:
		return "One or more checks could not be completed."
	case OutcomeReceiptFound:
		return "An exact match for this receipt was found."
	case OutcomeDuplicateReceiptNo:
		return "This receipt number has been used for this loan with different details."
	case OutcomeDuplicateReceiptInOffice:
		return "This receipt number is used for another loan in the same office."
	case OutcomeAmountMismatchWarning:
		return "A record with the same loan, receipt number, and date was found, but the amount is different."
	case OutcomeDateWarning:
		return "A record with the same loan and receipt number was found, but the date is different."
	case OutcomeDoubleEntryWarning:
		return "A transaction with the same amount and date already exists for this loan."
	case OutcomeNotFound:
		return "This receipt does not exist in the database."
	case OutcomeLoanNotFound:
		return "This loan number does not exist."
	}
	return string(o)
}
