package service_test

import (
	"context"
	"testing"

	"github.com/Jahanvi-07/authify/internal/repository/postgres"
	"github.com/Jahanvi-07/authify/internal/service"
	"github.com/Jahanvi-07/authify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
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
				Username: "newuser",
				Password: "password123",
			},
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existinguser",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrUsernameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, result.User.Username)
			assert.NotEmpty(t, result.Token)
			// Password is stored only as a bcrypt hash
			assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			assert.NotEmpty(t, result.User.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	_, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	t.Run("successful login", func(t *testing.T) {
		result, err := authService.Login(ctx, service.LoginInput{
			Username: "loginuser",
			Password: rawPassword,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password and unknown user share one sentinel", func(t *testing.T) {
		_, errWrongPass := authService.Login(ctx, service.LoginInput{
			Username: "loginuser",
			Password: "wrong",
		})
		_, errUnknown := authService.Login(ctx, service.LoginInput{
			Username: "ghost",
			Password: "wrong",
		})

		assert.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
		assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Username: "tokenuser",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), (*claims)["sub"])
	assert.Equal(t, "tokenuser", (*claims)["name"])
}

func TestAuthService_ExpiredTokenRejected(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)

	// A negative expiration mints tokens that are already past their
	// encoded expiry.
	cfg := testutil.TestConfig()
	cfg.JWTExpirationHours = -1
	expiredIssuer := service.NewAuthService(repos.User, cfg)

	result, err := expiredIssuer.Register(context.Background(), service.RegisterInput{
		Username: "expireduser",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = expiredIssuer.ValidateToken(result.Token)
	assert.Error(t, err)
}

func TestAuthService_TamperedTokenRejected(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)

	result, err := authService.Register(context.Background(), service.RegisterInput{
		Username: "tampereduser",
		Password: "password123",
	})
	require.NoError(t, err)

	otherCfg := testutil.TestConfig()
	otherCfg.JWTSecret = "a-different-secret"
	otherService := service.NewAuthService(repos.User, otherCfg)

	_, err = otherService.ValidateToken(result.Token)
	assert.Error(t, err)
}
