package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

var _ Repository = (*PostgresAuthRepo)(nil)

type Repository interface {
	Register(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*types.UserAuth, error)
	GetUserByID(ctx context.Context, userID string) (*types.UserAuth, error)
	StoreRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	ValidateRefreshTokenAndGetUserID(ctx context.Context, token string) (string, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
	InvalidateAllUserRefreshTokens(ctx context.Context, userID string) error
}

type PostgresAuthRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresAuthRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresAuthRepo {
	return &PostgresAuthRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const uniqueViolationCode = "23505"

// Register inserts a new user and returns its generated id.
func (r *PostgresAuthRepo) Register(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id`,
		username, email, passwordHash).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return uuid.Nil, fmt.Errorf("email or username already taken: %w", types.ErrConflict)
		}
		return uuid.Nil, fmt.Errorf("register: db insert failed: %w", err)
	}
	return userID, nil
}

func (r *PostgresAuthRepo) GetUserByEmail(ctx context.Context, email string) (*types.UserAuth, error) {
	var user types.UserAuth
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
         FROM users WHERE email = $1 AND deleted_at IS NULL`,
		email).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by email: query failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresAuthRepo) GetUserByID(ctx context.Context, userID string) (*types.UserAuth, error) {
	var user types.UserAuth
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
         FROM users WHERE id = $1 AND deleted_at IS NULL`,
		userID).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by id: query failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresAuthRepo) StoreRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	_, err := r.pgpool.Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token, expires_at)
         VALUES ($1, $2, $3)`,
		userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("store refresh token: db insert failed: %w", err)
	}
	return nil
}

// ValidateRefreshTokenAndGetUserID returns the owning user when the token
// exists, has not expired and has not been revoked.
func (r *PostgresAuthRepo) ValidateRefreshTokenAndGetUserID(ctx context.Context, token string) (string, error) {
	var userID string
	var expiresAt time.Time
	var revokedAt *time.Time

	err := r.pgpool.QueryRow(ctx,
		`SELECT user_id, expires_at, revoked_at
         FROM refresh_tokens WHERE token = $1`,
		token).Scan(&userID, &expiresAt, &revokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("invalid refresh token: %w", types.ErrUnauthenticated)
		}
		return "", fmt.Errorf("validate refresh token: query failed: %w", err)
	}

	if time.Now().After(expiresAt) || revokedAt != nil {
		return "", fmt.Errorf("refresh token expired or revoked: %w", types.ErrUnauthenticated)
	}
	return userID, nil
}

func (r *PostgresAuthRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	tag, err := r.pgpool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = $1
         WHERE token = $2 AND revoked_at IS NULL`,
		time.Now(), token)
	if err != nil {
		return fmt.Errorf("invalidate refresh token: db update failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already revoked or unknown token. Logout stays idempotent.
		r.logger.Debug("No active refresh token matched for revocation")
	}
	return nil
}

func (r *PostgresAuthRepo) InvalidateAllUserRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.pgpool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = $1
         WHERE user_id = $2 AND revoked_at IS NULL`,
		time.Now(), userID)
	if err != nil {
		return fmt.Errorf("invalidate all tokens: db update failed: %w", err)
	}
	return nil
}
