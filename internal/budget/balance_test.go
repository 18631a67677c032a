package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/softcybersec/superd/internal/budget"
	"github.com/softcybersec/superd/internal/operation"
)

func int64Ptr(v int64) *int64 { return &v }

func TestComputeBalance(t *testing.T) {
	ops := []*operation.Operation{
		{Name: "subvention mairie", InvoiceAmount: int64Ptr(240309)},
		{Name: "commande stylos", QuotationAmount: int64Ptr(-4100), InvoiceAmount: int64Ptr(-4200)},
		{Name: "commande cahiers", QuotationAmount: int64Ptr(-7102)},
		{Name: "sortie scolaire", QuotationAmount: int64Ptr(-56300)},
		{Name: "subvention coop", InvoiceAmount: int64Ptr(81300)},
	}

	b := budget.ComputeBalance(ops)

	assert.Equal(t, int64(317409), b.Real)
	assert.Equal(t, int64(254007), b.Virtual)
	assert.InDelta(t, 3174.09, b.RealMajor(), 0.0001)
	assert.InDelta(t, 2540.07, b.VirtualMajor(), 0.0001)
}

func TestComputeBalance_Empty(t *testing.T) {
	b := budget.ComputeBalance(nil)
	assert.Zero(t, b.Real)
	assert.Zero(t, b.Virtual)
}

// Invoicing a quotation must move its contribution out of the pending
// term: the virtual remaining changes by exactly invoice - quotation.
func TestComputeBalance_InvoicingShiftsQuotation(t *testing.T) {
	before := []*operation.Operation{
		{QuotationAmount: int64Ptr(-4100)},
		{QuotationAmount: int64Ptr(-7102)},
	}
	after := []*operation.Operation{
		{QuotationAmount: int64Ptr(-4100), InvoiceAmount: int64Ptr(-4200)},
		{QuotationAmount: int64Ptr(-7102)},
	}

	bBefore := budget.ComputeBalance(before)
	bAfter := budget.ComputeBalance(after)

	assert.Equal(t, int64(0), bBefore.Real)
	assert.Equal(t, int64(-4200), bAfter.Real)
	assert.Equal(t, bBefore.Virtual+(-4200)-(-4100), bAfter.Virtual)
}
