package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/go-travel-planner/config"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	jwtCfg config.JWTConfig
}

func NewService(repo Repository, jwtCfg config.JWTConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		jwtCfg: jwtCfg,
	}
}

// Register hashes the password and creates the account.
func (s *ServiceImpl) Register(ctx context.Context, username, email, password string) (string, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Register")
	defer span.End()

	l := s.logger.With(slog.String("method", "Register"), slog.String("email", email))

	if username == "" || email == "" || password == "" {
		return "", types.NewValidationError("credentials", "username, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.repo.Register(ctx, username, email, string(hash))
	if err != nil {
		l.WarnContext(ctx, "Registration failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Registration failed")
		return "", err
	}

	l.InfoContext(ctx, "User registered", slog.String("userID", userID.String()))
	span.SetStatus(codes.Ok, "User registered")
	return userID.String(), nil
}

// Login verifies credentials and issues an access plus refresh token pair.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (string, string, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login")
	defer span.End()

	l := s.logger.With(slog.String("method", "Login"), slog.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		l.WarnContext(ctx, "Unknown user", slog.Any("error", err))
		span.SetStatus(codes.Error, "Unknown user")
		return "", "", fmt.Errorf("invalid credentials: %w", types.ErrUnauthenticated)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		l.WarnContext(ctx, "Password mismatch")
		span.SetStatus(codes.Error, "Password mismatch")
		return "", "", fmt.Errorf("invalid credentials: %w", types.ErrUnauthenticated)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		span.RecordError(err)
		return "", "", err
	}

	l.InfoContext(ctx, "User logged in", slog.String("userID", user.ID))
	span.SetStatus(codes.Ok, "User logged in")
	return accessToken, refreshToken, nil
}

// Refresh rotates the refresh token and issues a fresh access token.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Refresh")
	defer span.End()

	l := s.logger.With(slog.String("method", "Refresh"))

	userID, err := s.repo.ValidateRefreshTokenAndGetUserID(ctx, refreshToken)
	if err != nil {
		l.WarnContext(ctx, "Refresh token rejected", slog.Any("error", err))
		span.SetStatus(codes.Error, "Refresh token rejected")
		return "", "", err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return "", "", err
	}

	newAccess, newRefresh, err := s.issueTokens(ctx, user)
	if err != nil {
		span.RecordError(err)
		return "", "", err
	}

	// Rotation: the presented token is revoked once its replacement is stored.
	if err = s.repo.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		l.WarnContext(ctx, "Failed to revoke rotated refresh token", slog.Any("error", err))
	}

	span.SetStatus(codes.Ok, "Tokens rotated")
	return newAccess, newRefresh, nil
}

// Logout revokes the presented refresh token.
func (s *ServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Logout")
	defer span.End()

	if err := s.repo.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		span.RecordError(err)
		return err
	}
	span.SetStatus(codes.Ok, "Logged out")
	return nil
}

func (s *ServiceImpl) issueTokens(ctx context.Context, user *types.UserAuth) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := uuid.NewString()
	expiresAt := time.Now().Add(s.jwtCfg.RefreshTokenTTL)
	if err = s.repo.StoreRefreshToken(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *ServiceImpl) generateAccessToken(user *types.UserAuth) (string, error) {
	now := time.Now()
	claims := types.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Scope:    "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}
