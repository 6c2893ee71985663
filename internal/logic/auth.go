package logic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosterboard/roster-api/internal/models"
)

const defaultDeviceName = "api"

// HashToken creates a SHA256 hash of a token for secure storage lookup
func HashToken(token string) string {
	h := sha256.New()
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	decoyHash     []byte
	decoyHashOnce sync.Once
)

// decoy is compared against when the email is unknown so both failure
// paths spend the same bcrypt time.
func decoy() []byte {
	decoyHashOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)
	})
	return decoyHash
}

// TokenToucher records token use asynchronously. *worker.Pool satisfies it.
type TokenToucher interface {
	Touch(tokenID int64) bool
}

type authService struct {
	pg       PgPool
	touches  TokenToucher
	logger   *zap.SugaredLogger
	newToken func() string
}

// NewAuthService builds the token service. With a nil touches, last_used_at
// is updated inline on every authenticated request.
func NewAuthService(pg PgPool, touches TokenToucher, logger *zap.Logger) AuthService {
	return &authService{
		pg:       pg,
		touches:  touches,
		logger:   logger.Sugar(),
		newToken: func() string { return uuid.New().String() },
	}
}

// IssueToken verifies the password and stores a new token hash for the user.
// Unknown email and wrong password produce the same error.
func (s *authService) IssueToken(ctx context.Context, req models.TokenRequest) (string, error) {
	var userID int64
	var passwordHash string
	err := s.pg.QueryRow(ctx,
		"SELECT id, password_hash FROM users WHERE LOWER(email) = LOWER($1)",
		strings.TrimSpace(req.Email)).Scan(&userID, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		_ = bcrypt.CompareHashAndPassword(decoy(), []byte(req.Password))
		return "", invalidCredentialsError()
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return "", invalidCredentialsError()
	}

	device := strings.TrimSpace(req.DeviceName)
	if device == "" {
		device = defaultDeviceName
	}

	token := s.newToken()
	if _, err := s.pg.Exec(ctx,
		"INSERT INTO api_tokens (user_id, name, token_hash) VALUES ($1, $2, $3)",
		userID, device, HashToken(token)); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to its user.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var p models.Principal
	err := s.pg.QueryRow(ctx,
		"SELECT t.id, u.id, u.name, u.email FROM api_tokens t JOIN users u ON u.id = t.user_id WHERE t.token_hash = $1",
		HashToken(token)).Scan(&p.TokenID, &p.UserID, &p.Name, &p.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup token: %w", err)
	}

	s.touch(ctx, p.TokenID)
	return &p, nil
}

func (s *authService) touch(ctx context.Context, tokenID int64) {
	if s.touches != nil {
		if !s.touches.Touch(tokenID) {
			s.logger.Debugw("Token usage dropped", "token_id", tokenID)
		}
		return
	}
	if _, err := s.pg.Exec(ctx, "UPDATE api_tokens SET last_used_at = NOW() WHERE id = $1", tokenID); err != nil {
		s.logger.Warnw("Failed to touch token", "token_id", tokenID, "error", err)
	}
}
