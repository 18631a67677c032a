package operation

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of an operation.
type Status string

const (
	StatusOngoing Status = "ONGOING"
	StatusClosed  Status = "CLOSED"
)

// Operation represents a single financial movement against a budget.
// An operation carries a quotation leg, an invoice leg, or both; amounts
// are signed cents (negative = expense, positive = income).
type Operation struct {
	ID              int64
	Name            string
	Status          Status
	BudgetID        int64
	Store           string
	Comment         string
	Quotation       *string
	Invoice         *string
	QuotationDate   *time.Time
	InvoiceDate     *time.Time
	QuotationAmount *int64
	InvoiceAmount   *int64
}

// DeriveStatus computes the operation status from the presence of an
// invoice amount. An operation is CLOSED exactly when it has been
// invoiced; caller-supplied statuses are never trusted.
func DeriveStatus(invoiceAmount *int64) Status {
	if invoiceAmount != nil {
		return StatusClosed
	}

	return StatusOngoing
}

// OngoingQuotation reports whether the operation is a quotation that has
// not been invoiced yet. Only such quotations count toward the virtual
// remaining projection; once invoiced, the quotation amount must not be
// double-counted.
func (o *Operation) OngoingQuotation() bool {
	return o.QuotationAmount != nil && o.InvoiceAmount == nil
}

// DateLayout is the textual date format accepted from clients (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// InvalidDateError reports a textual date that does not match DateLayout.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected DD/MM/YYYY", e.Value)
}

// ParseDate parses a client-supplied calendar date. Day granularity only;
// no time-of-day semantics.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}

	return t, nil
}
