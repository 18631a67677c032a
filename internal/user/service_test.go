package user_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softcybersec/superd/internal/user"
)

const testSalt = "pepper"

func TestService_HashPassword(t *testing.T) {
	svc := user.NewService(nil, testSalt)

	sum := sha256.Sum256([]byte(testSalt + "pass123"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, svc.HashPassword("pass123"))
	assert.NotEqual(t, svc.HashPassword("pass123"), svc.HashPassword("pass124"))
}

func TestService_Authenticate(t *testing.T) {
	type testCase struct {
		name      string
		password  string
		setupMock func(m *user.MockRepository, hash string)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "pass123",
			setupMock: func(m *user.MockRepository, hash string) {
				m.EXPECT().
					GetByEmail(gomock.Any(), "claire@superd.net").
					Return(&user.User{ID: 1, Email: "claire@superd.net", PasswordHash: hash, SchoolID: 1}, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "nope",
			setupMock: func(m *user.MockRepository, hash string) {
				m.EXPECT().
					GetByEmail(gomock.Any(), "claire@superd.net").
					Return(&user.User{ID: 1, Email: "claire@superd.net", PasswordHash: hash, SchoolID: 1}, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			password: "pass123",
			setupMock: func(m *user.MockRepository, _ string) {
				m.EXPECT().
					GetByEmail(gomock.Any(), "claire@superd.net").
					Return(nil, user.ErrNotFound)
			},
			// An unknown email fails exactly like a wrong password.
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			svc := user.NewService(repo, testSalt)
			tt.setupMock(repo, svc.HashPassword("pass123"))

			got, err := svc.Authenticate(context.Background(), "claire@superd.net", tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
		})
	}
}
