package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	"saylamc/infras/jwt"
	jwtMocks "saylamc/infras/jwt/mocks"
	"saylamc/infras/otel/mocks"
	"saylamc/internal/domains/auth/model/dto"
	"saylamc/internal/domains/auth/service"
	userMocks "saylamc/internal/domains/user/mocks"
	userModel "saylamc/internal/domains/user/model"
	"saylamc/shared/failure"
	"saylamc/shared/password"
)

func validAdmin(t *testing.T) userModel.AdminUser {
	t.Helper()

	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	return userModel.AdminUser{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		FullName:     "Site Admin",
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockJWT, mockOtel)

	admin := validAdmin(t)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(admin.ID, admin.Email).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.AdminUser{}, nil)
			},
			wantErr: "Invalid email or password",
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "wrong-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantErr: "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, 401, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, "Login successful", res.Message)
			assert.Equal(t, "access-token", res.Token)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, admin.ID, res.User.ID)
			assert.Equal(t, admin.Username, res.User.Username)
			assert.Equal(t, admin.Email, res.User.Email)
			assert.Equal(t, admin.FullName, res.User.FullName)
		})
	}
}

// A wrong password and an unknown email must produce byte-identical errors so
// a caller cannot tell which one happened.
func TestAuthService_Login_IdenticalFailureMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockJWT, mockOtel)

	admin := validAdmin(t)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.AdminUser{}, nil)

	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(admin, nil)

	_, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "wrong-password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	assert.Equal(t, failure.GetCode(errUnknown), failure.GetCode(errWrongPass))
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockJWT, mockOtel)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Username: "newadmin",
				Email:    "new@example.com",
				Password: "super-secret-1",
				FullName: "New Admin",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.AdminUser) (int64, error) {
						assert.Equal(t, "newadmin", user.Username)
						assert.Equal(t, "new@example.com", user.Email)
						assert.NotEqual(t, "super-secret-1", user.PasswordHash)
						assert.NoError(t, password.Verify("super-secret-1", user.PasswordHash))

						return 42, nil
					})
			},
		},
		{
			name: "username or email taken",
			req: dto.RegisterRequest{
				Username: "admin",
				Email:    "admin@example.com",
				Password: "super-secret-1",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "Username or email already exists",
			wantCode: 400,
		},
		{
			name: "registration closed once an admin exists",
			req: dto.RegisterRequest{
				Username: "second",
				Email:    "second@example.com",
				Password: "super-secret-1",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:  "Registration is closed",
			wantCode: 403,
		},
		{
			name: "repository error",
			req: dto.RegisterRequest{
				Username: "newadmin",
				Email:    "new@example.com",
				Password: "super-secret-1",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr:  "failed to check admin user existence: database error",
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), res.ID)
			assert.Equal(t, tt.req.Username, res.Username)
			assert.Equal(t, tt.req.Email, res.Email)
			assert.Equal(t, tt.req.FullName, res.FullName)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockJWT, mockOtel)

	admin := validAdmin(t)

	t.Run("existing user", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		res, err := svc.Me(context.Background(), admin.ID)

		require.NoError(t, err)
		assert.Equal(t, admin.Username, res.Username)
	})

	t.Run("deleted user behind a live token", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.AdminUser{}, nil)

		_, err := svc.Me(context.Background(), 999)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockJWT, mockOtel)

	t.Run("valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("good-refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good-refresh-token"})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "new-access", res.Token)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockAdminUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockJWT, mockOtel)

	admin := validAdmin(t)

	t.Run("successful change", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				hash, ok := fields["password_hash"].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("new-password-1", hash))

				return nil
			})

		err := svc.ChangePassword(context.Background(), admin.ID, dto.ChangePasswordRequest{
			CurrentPassword: "correct-password",
			NewPassword:     "new-password-1",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		err := svc.ChangePassword(context.Background(), admin.ID, dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-password-1",
		})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
