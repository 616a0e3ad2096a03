// internal/service/auth_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/auth"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/mocks"
	"github.com/opshrm/hrms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// capturedRecord and captureRecorder let service tests assert on the audit
// trail without a database.
type capturedRecord struct {
	userID         uuid.UUID
	organizationID uuid.UUID
	action         string
	details        model.JSONMap
}

type captureRecorder struct {
	records []capturedRecord
}

func (r *captureRecorder) Record(ctx context.Context, userID, organizationID uuid.UUID, action string, details model.JSONMap) {
	r.records = append(r.records, capturedRecord{
		userID:         userID,
		organizationID: organizationID,
		action:         action,
		details:        details,
	})
}

func newTestAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryIface, *mocks.MockOrganizationRepositoryIface, *captureRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	recorder := &captureRecorder{}

	svc := NewAuthService(
		users,
		orgs,
		auth.NewPasswordHasher(auth.DefaultPasswordConfig()),
		auth.NewTokenManager("test-secret", time.Hour),
		recorder,
	)

	return svc, users, orgs, recorder
}

func TestAuthService_Register_NewOrganization(t *testing.T) {
	svc, users, orgs, recorder := newTestAuthService(t)

	orgs.EXPECT().FindByName(gomock.Any(), "Acme Corp").Return(nil, domain.ErrOrganizationNotFound)
	orgs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, org *model.Organization) error {
			org.ID = uuid.New()
			return nil
		})
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, user *model.User) error {
			user.ID = uuid.New()
			return nil
		})

	out, err := svc.Register(context.Background(), RegisterInput{
		Email:            "  Jane@Example.COM ",
		Password:         "secret123",
		Name:             "Jane Doe",
		OrganizationName: "Acme Corp",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "jane@example.com", out.User.Email)
	assert.NotEmpty(t, out.Token)
	assert.NotEqual(t, "secret123", out.User.PasswordHash)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "User registered", recorder.records[0].action)
	assert.Equal(t, true, recorder.records[0].details["organization_created"])
}

func TestAuthService_Register_JoinsExistingOrganization(t *testing.T) {
	svc, users, orgs, recorder := newTestAuthService(t)

	existing := &model.Organization{ID: uuid.New(), Name: "Acme Corp"}
	orgs.EXPECT().FindByName(gomock.Any(), "Acme Corp").Return(existing, nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, user *model.User) error {
			assert.Equal(t, existing.ID, user.OrganizationID)
			user.ID = uuid.New()
			return nil
		})

	out, err := svc.Register(context.Background(), RegisterInput{
		Email:            "jane@example.com",
		Password:         "secret123",
		Name:             "Jane Doe",
		OrganizationName: "Acme Corp",
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, out.User.OrganizationID)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, false, recorder.records[0].details["organization_created"])
}

func TestAuthService_Register_LostOrganizationCreateRace(t *testing.T) {
	svc, users, orgs, _ := newTestAuthService(t)

	winner := &model.Organization{ID: uuid.New(), Name: "Acme Corp"}

	gomock.InOrder(
		orgs.EXPECT().FindByName(gomock.Any(), "Acme Corp").Return(nil, domain.ErrOrganizationNotFound),
		orgs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError),
		orgs.EXPECT().FindByName(gomock.Any(), "Acme Corp").Return(winner, nil),
	)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, user *model.User) error {
			assert.Equal(t, winner.ID, user.OrganizationID)
			user.ID = uuid.New()
			return nil
		})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:            "jane@example.com",
		Password:         "secret123",
		Name:             "Jane Doe",
		OrganizationName: "Acme Corp",
	})
	require.NoError(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, users, orgs, recorder := newTestAuthService(t)

	existing := &model.Organization{ID: uuid.New(), Name: "Acme Corp"}
	orgs.EXPECT().FindByName(gomock.Any(), "Acme Corp").Return(existing, nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:            "jane@example.com",
		Password:         "secret123",
		Name:             "Jane Doe",
		OrganizationName: "Acme Corp",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, recorder.records)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "secret123", Name: "Jane", OrganizationName: "Acme"}},
		{"malformed email", RegisterInput{Email: "nope", Password: "secret123", Name: "Jane", OrganizationName: "Acme"}},
		{"short password", RegisterInput{Email: "jane@example.com", Password: "12345", Name: "Jane", OrganizationName: "Acme"}},
		{"missing name", RegisterInput{Email: "jane@example.com", Password: "secret123", OrganizationName: "Acme"}},
		{"missing organization", RegisterInput{Email: "jane@example.com", Password: "secret123", Name: "Jane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, _, recorder := newTestAuthService(t)

	hasher := auth.NewPasswordHasher(auth.DefaultPasswordConfig())
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &model.User{
		ID:             uuid.New(),
		Email:          "jane@example.com",
		PasswordHash:   hash,
		Name:           "Jane Doe",
		OrganizationID: uuid.New(),
	}
	users.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	// Padded, mixed-case input must normalize before the format check runs.
	out, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Jane@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, user.ID, recorder.records[0].userID)
	assert.Equal(t, user.OrganizationID, recorder.records[0].organizationID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users, _, recorder := newTestAuthService(t)

	users.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, recorder.records)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _, recorder := newTestAuthService(t)

	hasher := auth.NewPasswordHasher(auth.DefaultPasswordConfig())
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &model.User{
		ID:             uuid.New(),
		Email:          "jane@example.com",
		PasswordHash:   hash,
		OrganizationID: uuid.New(),
	}
	users.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, recorder.records)
}

func TestAuthService_Logout_ValidToken(t *testing.T) {
	svc, _, _, recorder := newTestAuthService(t)

	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()
	organizationID := uuid.New()
	token, err := tm.Generate(userID.String(), organizationID.String())
	require.NoError(t, err)

	svc.Logout(context.Background(), token)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, userID, recorder.records[0].userID)
	assert.Equal(t, organizationID, recorder.records[0].organizationID)
}

func TestAuthService_Logout_InvalidTokenIsSilent(t *testing.T) {
	svc, _, _, recorder := newTestAuthService(t)

	svc.Logout(context.Background(), "garbage")
	svc.Logout(context.Background(), "")

	assert.Empty(t, recorder.records)
}
