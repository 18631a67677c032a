package budget

import (
	"time"

	"github.com/softcybersec/superd/internal/budget"
	"github.com/softcybersec/superd/internal/operation"
)

type idResponse struct {
	ID int64 `json:"id"`
}

type summaryResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Reference        string  `json:"reference"`
	Type             string  `json:"type"`
	Recipient        string  `json:"recipient"`
	RealRemaining    float64 `json:"realRemaining"`
	VirtualRemaining float64 `json:"virtualRemaining"`
}

type homeResponse struct {
	BudgetSummaries []summaryResponse `json:"budgetSummaries"`
}

func toHomeResponse(summaries []*budget.Summary) homeResponse {
	resp := homeResponse{BudgetSummaries: make([]summaryResponse, len(summaries))}

	for i, s := range summaries {
		resp.BudgetSummaries[i] = summaryResponse{
			ID:               s.Budget.ID,
			Name:             s.Budget.Name,
			Reference:        s.Budget.Reference,
			Type:             s.Budget.TypeName,
			Recipient:        s.Budget.RecipientName,
			RealRemaining:    s.Balance.RealMajor(),
			VirtualRemaining: s.Balance.VirtualMajor(),
		}
	}

	return resp
}

type operationResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Status          operation.Status `json:"status"`
	Store           string           `json:"store"`
	Comment         string           `json:"comment"`
	Quotation       *string          `json:"quotation"`
	Invoice         *string          `json:"invoice"`
	QuotationDate   *string          `json:"quotationDate"`
	InvoiceDate     *string          `json:"invoiceDate"`
	QuotationAmount *int64           `json:"quotationAmount"`
	InvoiceAmount   *int64           `json:"invoiceAmount"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(operation.DateLayout)

	return &s
}

func toOperationResponse(op *operation.Operation) operationResponse {
	return operationResponse{
		ID:              op.ID,
		Name:            op.Name,
		Status:          op.Status,
		Store:           op.Store,
		Comment:         op.Comment,
		Quotation:       op.Quotation,
		Invoice:         op.Invoice,
		QuotationDate:   formatDate(op.QuotationDate),
		InvoiceDate:     formatDate(op.InvoiceDate),
		QuotationAmount: op.QuotationAmount,
		InvoiceAmount:   op.InvoiceAmount,
	}
}

type detailResponse struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Reference        string              `json:"reference"`
	Type             string              `json:"type"`
	Recipient        string              `json:"recipient"`
	Creditor         string              `json:"creditor"`
	Comment          string              `json:"comment"`
	RealRemaining    float64             `json:"realRemaining"`
	VirtualRemaining float64             `json:"virtualRemaining"`
	Operations       []operationResponse `json:"operations"`
}

type budgetEnvelope struct {
	Budget detailResponse `json:"budget"`
}

func toDetailResponse(det *budget.Detail) detailResponse {
	ops := make([]operationResponse, len(det.Operations))
	for i, op := range det.Operations {
		ops[i] = toOperationResponse(op)
	}

	return detailResponse{
		ID:               det.Budget.ID,
		Name:             det.Budget.Name,
		Reference:        det.Budget.Reference,
		Type:             det.Budget.TypeName,
		Recipient:        det.Budget.RecipientName,
		Creditor:         det.Budget.CreditorName,
		Comment:          det.Budget.Comment,
		RealRemaining:    det.Balance.RealMajor(),
		VirtualRemaining: det.Balance.VirtualMajor(),
		Operations:       ops,
	}
}
