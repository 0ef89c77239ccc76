package service_test

import (
	"context"
	"testing"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/repository/postgres"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: "pw123",
			},
		},
		{
			name: "email is normalized to lowercase",
			input: service.RegisterInput{
				Name:     "Carol",
				Email:    "  CAROL@Example.COM ",
				Password: "pw123",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Name:     "Imposter",
				Email:    "existing@example.com",
				Password: "pw123",
			},
			setup: func() {
				_, err := authService.Register(ctx, service.RegisterInput{
					Name:     "Existing",
					Email:    "existing@example.com",
					Password: "pw123",
				})
				require.NoError(t, err)
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "duplicate email differing only in case",
			input: service.RegisterInput{
				Name:     "Imposter",
				Email:    "Existing@Example.com",
				Password: "pw123",
			},
			setup: func() {
				_, err := authService.Register(ctx, service.RegisterInput{
					Name:     "Existing",
					Email:    "existing@example.com",
					Password: "pw123",
				})
				require.NoError(t, err)
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "missing name",
			input: service.RegisterInput{
				Name:     "   ",
				Email:    "blank@example.com",
				Password: "pw123",
			},
			wantErr: &domain.ValidationError{},
		},
		{
			name: "missing password",
			input: service.RegisterInput{
				Name:     "Dave",
				Email:    "dave@example.com",
				Password: "",
			},
			wantErr: &domain.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			before := testDB.CountRows(t, &domain.User{})
			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				if _, isValidation := tt.wantErr.(*domain.ValidationError); isValidation {
					_, ok := domain.AsValidation(err)
					assert.True(t, ok, "expected a validation error, got %v", err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				// failed registration must not mutate state
				assert.Equal(t, before, testDB.CountRows(t, &domain.User{}))
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
		})
	}
}

func TestAuthService_Register_StoresLowercaseEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	user, err := authService.Register(ctx, service.RegisterInput{
		Name:     "Mixed Case",
		Email:    "Mixed.Case@Example.COM",
		Password: "pw123",
	})
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.com", user.Email)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	registered, err := authService.Register(ctx, service.RegisterInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "correct credentials",
			input: service.LoginInput{Email: "a@x.com", Password: "pw123"},
		},
		{
			name:  "email case is ignored",
			input: service.LoginInput{Email: "A@X.com", Password: "pw123"},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: "a@x.com", Password: "nope"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			input:   service.LoginInput{Email: "ghost@x.com", Password: "pw123"},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				// wrong password and unknown email are indistinguishable
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	got, err := authService.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = authService.GetUserByID(ctx, 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
