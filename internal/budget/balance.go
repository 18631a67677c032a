package budget

import "github.com/softcybersec/superd/internal/operation"

// Balance holds the two remaining-balance figures of a budget, in cents.
//
// Real counts only invoiced legs. Virtual projects the balance once the
// still-open quotations are honored: invoicing a quotation moves its
// contribution from the pending term into Real, so the virtual total
// changes by exactly invoiceAmount - quotationAmount.
type Balance struct {
	Real    int64
	Virtual int64
}

// ComputeBalance aggregates a budget's operations into its remaining
// balances. Pure function over the full operation list; there is no
// cached value to invalidate.
func ComputeBalance(ops []*operation.Operation) Balance {
	var invoiced, pending int64

	for _, op := range ops {
		if op.InvoiceAmount != nil {
			invoiced += *op.InvoiceAmount
		}

		if op.OngoingQuotation() {
			pending += *op.QuotationAmount
		}
	}

	return Balance{
		Real:    invoiced,
		Virtual: invoiced + pending,
	}
}

// RealMajor returns the real remaining in major currency units. Cents
// divide evenly into two fractional digits, so the conversion is exact;
// rounding never accumulates across sums.
func (b Balance) RealMajor() float64 {
	return float64(b.Real) / 100
}

// VirtualMajor returns the virtual remaining in major currency units.
func (b Balance) VirtualMajor() float64 {
	return float64(b.Virtual) / 100
}
