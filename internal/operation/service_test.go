package operation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softcybersec/superd/internal/operation"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     operation.Params
		setupMock  func(m *operation.MockRepository)
		wantStatus operation.Status
		wantErr    error
	}

	tests := []testCase{
		{
			name: "QuotationOnlyIsOngoing",
			params: operation.Params{
				Name:            "commande stylos",
				Store:           "Sadel",
				QuotationAmount: int64Ptr(-5630),
			},
			setupMock: func(m *operation.MockRepository) {
				m.EXPECT().
					CreateOperation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, op *operation.Operation) error {
						op.ID = 42
						return nil
					})
			},
			wantStatus: operation.StatusOngoing,
		},
		{
			name: "InvoicedIsClosed",
			params: operation.Params{
				Name:          "subvention mairie",
				InvoiceAmount: int64Ptr(240309),
			},
			setupMock: func(m *operation.MockRepository) {
				m.EXPECT().
					CreateOperation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, op *operation.Operation) error {
						op.ID = 43
						return nil
					})
			},
			wantStatus: operation.StatusClosed,
		},
		{
			name:    "NoLegsRejected",
			params:  operation.Params{Name: "vide"},
			wantErr: operation.ErrNoAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := operation.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := operation.NewService(repo)
			got, err := svc.Create(context.Background(), 7, tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, int64(7), got.BudgetID)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestService_Update_RederivesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := operation.NewMockRepository(ctrl)
	svc := operation.NewService(repo)

	stored := &operation.Operation{
		ID:              9,
		Name:            "commande stylos",
		Status:          operation.StatusOngoing,
		BudgetID:        7,
		QuotationAmount: int64Ptr(-4100),
	}

	repo.EXPECT().GetOperation(gomock.Any(), int64(9)).Return(stored, nil)
	repo.EXPECT().
		UpdateOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op *operation.Operation) error {
			assert.Equal(t, operation.StatusClosed, op.Status)
			return nil
		})

	got, err := svc.Update(context.Background(), 7, 9, operation.Params{
		Name:            "commande stylos",
		QuotationAmount: int64Ptr(-4100),
		InvoiceAmount:   int64Ptr(-4200),
	})
	require.NoError(t, err)
	assert.Equal(t, operation.StatusClosed, got.Status)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, int64(7), got.BudgetID)
}

func TestService_Update_WrongBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := operation.NewMockRepository(ctrl)
	svc := operation.NewService(repo)

	stored := &operation.Operation{ID: 9, BudgetID: 7, QuotationAmount: int64Ptr(-100)}

	repo.EXPECT().GetOperation(gomock.Any(), int64(9)).Return(stored, nil)

	_, err := svc.Update(context.Background(), 8, 9, operation.Params{QuotationAmount: int64Ptr(-100)})
	require.ErrorIs(t, err, operation.ErrWrongBudget)
}

func TestService_ListByBudget_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := operation.NewMockRepository(ctrl)
	svc := operation.NewService(repo)

	// Rows come back in whatever order the store produced them; the
	// service guarantees descending ids regardless.
	repo.EXPECT().
		ListByBudget(gomock.Any(), int64(7)).
		Return([]*operation.Operation{
			{ID: 1, Name: "subvention mairie", BudgetID: 7},
			{ID: 3, Name: "commande cahiers", BudgetID: 7},
			{ID: 2, Name: "commande stylos", BudgetID: 7},
		}, nil)

	ops, err := svc.ListByBudget(context.Background(), 7)
	require.NoError(t, err)

	ids := make([]int64, len(ops))
	for i, op := range ops {
		ids[i] = op.ID
	}

	assert.Equal(t, []int64{3, 2, 1}, ids)
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		budgetID  int64
		setupMock func(m *operation.MockRepository)
		wantErr   error
	}

	stored := &operation.Operation{ID: 5, BudgetID: 7, QuotationAmount: int64Ptr(-100)}

	tests := []testCase{
		{
			name:     "OwningBudget",
			budgetID: 7,
			setupMock: func(m *operation.MockRepository) {
				m.EXPECT().GetOperation(gomock.Any(), int64(5)).Return(stored, nil)
				m.EXPECT().DeleteOperation(gomock.Any(), int64(5)).Return(nil)
			},
		},
		{
			name:     "CrossBudgetRejected",
			budgetID: 8,
			setupMock: func(m *operation.MockRepository) {
				// No DeleteOperation expected: nothing may be removed.
				m.EXPECT().GetOperation(gomock.Any(), int64(5)).Return(stored, nil)
			},
			wantErr: operation.ErrWrongBudget,
		},
		{
			name:     "MissingOperation",
			budgetID: 7,
			setupMock: func(m *operation.MockRepository) {
				m.EXPECT().GetOperation(gomock.Any(), int64(5)).Return(nil, operation.ErrNotFound)
			},
			wantErr: operation.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := operation.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := operation.NewService(repo)
			err := svc.Delete(context.Background(), tt.budgetID, 5)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
