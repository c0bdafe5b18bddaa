package services

import (
	"context"

	"github.com/creator-crm/backend/internal/apperr"
	"github.com/creator-crm/backend/internal/auth"
	"github.com/creator-crm/backend/internal/config"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// invalidCredentials is deliberately generic: it must not reveal whether the
// email or the password was wrong.
const invalidCredentials = "invalid email or password"

type AuthService struct {
	userRepo  *repositories.UserRepo
	auditRepo *repositories.AuditRepo
	pool      *pgxpool.Pool
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthService(
	userRepo *repositories.UserRepo,
	auditRepo *repositories.AuditRepo,
	pool *pgxpool.Pool,
	cfg *config.Config,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		pool:      pool,
		cfg:       cfg,
		log:       log,
	}
}

// Register creates a user and issues a session token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	if !auth.ValidEmail(email) {
		return nil, "", apperr.Validation("invalid email format")
	}
	if len(password) < auth.MinPasswordLength {
		return nil, "", apperr.Validation("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{Email: email, Name: name, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, "", apperr.Conflict("email already registered")
		}
		return nil, "", err
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email, s.cfg.JWTExpiration)
	if err != nil {
		return nil, "", err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      "user_registered",
		EntityType:  "user",
		EntityID:    &user.ID,
	})

	return user, token, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, "", apperr.Authentication(invalidCredentials)
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", apperr.Authentication(invalidCredentials)
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email, s.cfg.JWTExpiration)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ChangeEmail re-verifies the current credential, then swaps the email inside
// a transaction. The row is locked so the verification reads pre-update state
// even under concurrent identity changes.
func (s *AuthService) ChangeEmail(ctx context.Context, currentEmail, newEmail, password string) (*models.User, error) {
	if !auth.ValidEmail(newEmail) {
		return nil, apperr.Validation("invalid email format")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	user, err := s.userRepo.GetByEmailForUpdate(ctx, tx, currentEmail)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.Authentication(invalidCredentials)
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, apperr.Authentication(invalidCredentials)
	}

	updated, err := s.userRepo.UpdateEmail(ctx, tx, user.ID, newEmail)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflict("email already in use")
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      "email_changed",
		EntityType:  "user",
		EntityID:    &user.ID,
	})

	return updated, nil
}

// ChangePassword re-verifies the current credential, then replaces the hash
// inside a transaction.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) (*models.User, error) {
	if len(newPassword) < auth.MinPasswordLength {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	user, err := s.userRepo.GetByEmailForUpdate(ctx, tx, email)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.Authentication(invalidCredentials)
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, currentPassword) {
		return nil, apperr.Authentication(invalidCredentials)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepo.UpdatePassword(ctx, tx, user.ID, hash)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      "password_changed",
		EntityType:  "user",
		EntityID:    &user.ID,
	})

	return updated, nil
}
