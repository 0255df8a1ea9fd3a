package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/internal/audit"
	"github.com/recellhq/recell-backend/pkg/auth"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/security"
)

const entityTable = "admin_users"

// Service exposes admin authentication.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, actorID uuid.UUID) error
}

// LoginResult carries the minted token and the admin it belongs to.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	AdminID   uuid.UUID `json:"admin_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

type service struct {
	repo     Repository
	auditSvc audit.Service
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewService constructs an admin auth service instance.
func NewService(repo Repository, auditSvc audit.Service, jwtCfg config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	if auditSvc == nil {
		return nil, fmt.Errorf("audit service required")
	}
	return &service{
		repo:     repo,
		auditSvc: auditSvc,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}, nil
}

// Login verifies credentials and mints an access token. Failed attempts are
// indistinguishable between unknown email and wrong password.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load admin")
	}
	if !admin.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now().UTC()
	token, err := auth.MintAccessToken(s.jwtCfg, now, auth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update last login")
	}
	if err := s.recordAuth(ctx, admin.ID, enums.AuditActionLogin); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.jwtCfg.AccessTokenTTL()),
		AdminID:   admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
	}, nil
}

// Logout only audits; tokens stay valid until expiry.
func (s *service) Logout(ctx context.Context, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	}
	return s.recordAuth(ctx, actorID, enums.AuditActionLogout)
}

func (s *service) recordAuth(ctx context.Context, adminID uuid.UUID, action enums.AuditAction) error {
	actor := adminID
	if _, err := s.auditSvc.Record(ctx, audit.RecordInput{
		ActorID:     &actor,
		Action:      action,
		EntityTable: entityTable,
		EntityID:    adminID.String(),
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: write audit record")
	}
	return nil
}

// HashPassword is a convenience wrapper used by seeding tools.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	return security.HashPassword(password, cfg)
}
