// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/audit"
	"github.com/opshrm/hrms/internal/auth"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/model"
	"github.com/opshrm/hrms/internal/repository"
)

type AuthService struct {
	users          repository.UserRepositoryIface
	orgs           repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	recorder       audit.Recorder
	validate       *validator.Validate
}

func NewAuthService(
	users repository.UserRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	recorder audit.Recorder,
) *AuthService {
	return &AuthService{
		users:          users,
		orgs:           orgs,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		recorder:       recorder,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	Name             string `json:"name" validate:"required"`
	OrganizationName string `json:"organizationName" validate:"required"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates the user and, when the organization name is unseen, the
// organization itself. A registration under an existing name joins that
// organization: there is no invitation or approval step, so anyone knowing a
// tenant's display name gains access to its data. Known weakness; the audit
// entry records whether the organization was created or joined so operators
// have a trail.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	// Normalize before validating so padded or mixed-case emails pass the
	// format check and hit the unique index in canonical form.
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationDetail(err))
	}

	orgName := strings.TrimSpace(input.OrganizationName)

	// Find or create the organization. A lost create race against another
	// registration under the same name falls back to the winner's row.
	created := false
	org, err := s.orgs.FindByName(ctx, orgName)
	if errors.Is(err, domain.ErrOrganizationNotFound) {
		org = &model.Organization{Name: orgName}
		if err := s.orgs.Create(ctx, org); err != nil {
			org, err = s.orgs.FindByName(ctx, orgName)
			if err != nil {
				return nil, fmt.Errorf("resolving organization: %w", err)
			}
		} else {
			created = true
		}
	} else if err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	// The global unique index on email decides duplicate races; no prior
	// existence check could.
	user := &model.User{
		Email:          input.Email,
		PasswordHash:   hashedPassword,
		Name:           input.Name,
		OrganizationID: org.ID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Organization = org

	s.recorder.Record(ctx, user.ID, org.ID, "User registered", model.JSONMap{
		"organization":         org.Name,
		"organization_created": created,
	})

	token, err := s.tokenManager.Generate(user.ID.String(), org.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and issues a token. An unknown email and a bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationDetail(err))
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	s.recorder.Record(ctx, user.ID, user.OrganizationID,
		fmt.Sprintf("User '%s' logged in", user.ID), nil)

	token, err := s.tokenManager.Generate(user.ID.String(), user.OrganizationID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// Logout is best-effort and idempotent. Tokens are stateless and
// self-expiring; a valid token only earns an audit entry, anything else is
// treated as already logged out.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}

	claims, err := s.tokenManager.Validate(token)
	if err != nil {
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return
	}
	organizationID, err := uuid.Parse(claims.OrganizationID)
	if err != nil {
		return
	}

	s.recorder.Record(ctx, userID, organizationID,
		fmt.Sprintf("User '%s' logged out", userID), nil)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validationDetail flattens validator errors into per-field detail.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}
