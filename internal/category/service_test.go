package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softcybersec/superd/internal/category"
)

func TestService_Resolve(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *category.MockRepository)
		wantID    int64
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "KnownName",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					GetByName(gomock.Any(), category.KindBudgetType, int64(1), "fonctionnement").
					Return(&category.Item{ID: 11, Name: "fonctionnement", SchoolID: 1}, nil)
			},
			wantID: 11,
		},
		{
			name: "UnknownName",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					GetByName(gomock.Any(), category.KindBudgetType, int64(1), "fonctionnement").
					Return(nil, category.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := category.NewService(repo)
			item, err := svc.Resolve(context.Background(), category.KindBudgetType, 1, "fonctionnement")

			if tt.wantErr {
				require.Error(t, err)

				var unknown *category.UnknownNameError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, category.KindBudgetType, unknown.Kind)
				assert.Equal(t, "fonctionnement", unknown.Name)
				assert.ErrorIs(t, err, category.ErrNotFound)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, item.ID)
		})
	}
}
