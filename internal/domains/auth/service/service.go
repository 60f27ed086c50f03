package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"saylamc/config"
	"saylamc/infras/jwt"
	"saylamc/infras/otel"
	"saylamc/internal/domains/auth/model/dto"
	"saylamc/internal/domains/user/model"
	"saylamc/internal/domains/user/repository"
	"saylamc/shared"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"
	"saylamc/shared/password"
	"saylamc/shared/timezone"

	"github.com/rs/zerolog/log"
)

// msgInvalidCredentials is shared by the unknown-email and wrong-password
// paths so a caller cannot tell which admin emails exist.
const msgInvalidCredentials = "Invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AdminUserResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	Me(ctx context.Context, userID int64) (dto.AdminUserResponse, error)
	ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo repository.AdminUser
	cfg  *config.Config
	jwt  jwt.JWT
	otel otel.Otel
}

func New(repo repository.AdminUser, cfg *config.Config, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		jwt:  jwtService,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByField(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return res, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		log.Warn().Int64("userID", user.ID).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.Success = true
	res.Message = "Login successful"
	res.Token = pair.AccessToken
	res.RefreshToken = pair.RefreshToken
	res.User.FromModel(user)

	log.Info().Int64("userID", user.ID).Msg("admin user logged in")

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AdminUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// Open registration exists only to bootstrap the first admin account.
	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admin users")

		return res, fmt.Errorf("failed to count admin users: %w", err)
	}

	if total > 0 {
		return res, failure.Forbidden("Registration is closed")
	}

	taken := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Value:    req.Username,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEmail,
				Value:    req.Email,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, taken)
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin user existence")

		return res, fmt.Errorf("failed to check admin user existence: %w", err)
	}

	if exist {
		return res, failure.BadRequestFromString("Username or email already exists")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.AdminUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
	}
	user.CreatedAt = timezone.Now()
	user.UpdatedAt = timezone.Now()

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create admin user")

		return res, fmt.Errorf("failed to create admin user: %w", err)
	}

	user.ID = id
	res.FromModel(user)

	log.Info().Int64("userID", id).Msg("admin user registered")

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("Invalid refresh token")
	}

	res.Success = true
	res.Token = pair.AccessToken
	res.RefreshToken = pair.RefreshToken

	return res, nil
}

// Me resolves the authenticated principal back into a user row. The token may
// outlive the account, so a missing row is reported as not found.
func (s *serviceImpl) Me(ctx context.Context, userID int64) (res dto.AdminUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return res, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("User not found")
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == 0 {
		return failure.NotFound("User not found")
	}

	if err = password.Verify(req.CurrentPassword, user.PasswordHash); err != nil {
		return failure.Unauthorized("Current password is incorrect")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	fields := map[string]any{
		"password_hash":         hash,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Int64("userID", userID).Msg("admin user changed password")

	return nil
}
