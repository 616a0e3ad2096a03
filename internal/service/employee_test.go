// internal/service/employee_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/middleware"
	"github.com/opshrm/hrms/internal/mocks"
	"github.com/opshrm/hrms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEmployeeService(t *testing.T) (*EmployeeService, *mocks.MockEmployeeRepositoryIface, *captureRecorder, middleware.Principal) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	recorder := &captureRecorder{}

	principal := middleware.Principal{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
	}

	return NewEmployeeService(repo, recorder), repo, recorder, principal
}

func TestEmployeeService_List(t *testing.T) {
	svc, repo, _, principal := newTestEmployeeService(t)

	expected := []*model.Employee{{ID: uuid.New(), Name: "Jane"}}
	repo.EXPECT().FindByOrganization(gomock.Any(), principal.OrganizationID).Return(expected, nil)

	employees, err := svc.List(context.Background(), principal)
	require.NoError(t, err)
	assert.Equal(t, expected, employees)
}

func TestEmployeeService_Get_OtherTenantReadsAsMissing(t *testing.T) {
	svc, repo, _, principal := newTestEmployeeService(t)

	id := uuid.New()
	repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).
		Return(nil, domain.ErrEmployeeNotFound)

	_, err := svc.Get(context.Background(), principal, id)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_Create(t *testing.T) {
	svc, repo, recorder, principal := newTestEmployeeService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, employee *model.Employee) error {
			employee.ID = uuid.New()
			return nil
		})

	employee, err := svc.Create(context.Background(), principal, CreateEmployeeInput{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Position: "Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", employee.Email)
	assert.Equal(t, principal.OrganizationID, employee.OrganizationID)
	require.NotNil(t, employee.Position)
	assert.Equal(t, "Engineer", *employee.Position)

	require.Len(t, recorder.records, 1)
	assert.Equal(t,
		fmt.Sprintf("User '%s' added a new employee with ID %s", principal.UserID, employee.ID),
		recorder.records[0].action)
}

func TestEmployeeService_Create_EmptyPositionStaysNull(t *testing.T) {
	svc, repo, _, principal := newTestEmployeeService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	employee, err := svc.Create(context.Background(), principal, CreateEmployeeInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Nil(t, employee.Position)
}

func TestEmployeeService_Create_InvalidInput(t *testing.T) {
	svc, _, recorder, principal := newTestEmployeeService(t)

	_, err := svc.Create(context.Background(), principal, CreateEmployeeInput{
		Name:  "Jane Doe",
		Email: "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, recorder.records)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	svc, repo, _, principal := newTestEmployeeService(t)

	id := uuid.New()
	existing := &model.Employee{ID: id, Name: "Jane", Email: "jane@example.com", OrganizationID: principal.OrganizationID}

	emptyName := ""
	position := ""
	input := UpdateEmployeeInput{
		Name:     &emptyName, // empty means not supplied
		Position: &position,  // empty position clears the field
	}

	gomock.InOrder(
		repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).Return(existing, nil),
		repo.EXPECT().Update(gomock.Any(), existing, map[string]interface{}{"position": ""}).Return(nil),
		repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).Return(existing, nil),
	)

	_, err := svc.Update(context.Background(), principal, id, input)
	require.NoError(t, err)
}

func TestEmployeeService_Update_NoFieldsSkipsWrite(t *testing.T) {
	svc, repo, recorder, principal := newTestEmployeeService(t)

	id := uuid.New()
	existing := &model.Employee{ID: id, Name: "Jane", OrganizationID: principal.OrganizationID}

	repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).Return(existing, nil).Times(2)

	_, err := svc.Update(context.Background(), principal, id, UpdateEmployeeInput{})
	require.NoError(t, err)
	assert.Len(t, recorder.records, 1)
}

func TestEmployeeService_Update_InvalidEmail(t *testing.T) {
	svc, repo, _, principal := newTestEmployeeService(t)

	id := uuid.New()
	existing := &model.Employee{ID: id, OrganizationID: principal.OrganizationID}
	repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).Return(existing, nil)

	badEmail := "nope"
	_, err := svc.Update(context.Background(), principal, id, UpdateEmployeeInput{Email: &badEmail})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeService_Update_OtherTenantReadsAsMissing(t *testing.T) {
	svc, repo, recorder, principal := newTestEmployeeService(t)

	id := uuid.New()
	repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).
		Return(nil, domain.ErrEmployeeNotFound)

	name := "New Name"
	_, err := svc.Update(context.Background(), principal, id, UpdateEmployeeInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Empty(t, recorder.records)
}

func TestEmployeeService_Delete(t *testing.T) {
	svc, repo, recorder, principal := newTestEmployeeService(t)

	id := uuid.New()
	existing := &model.Employee{ID: id, Name: "Jane", OrganizationID: principal.OrganizationID}

	gomock.InOrder(
		repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).Return(existing, nil),
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil),
	)

	err := svc.Delete(context.Background(), principal, id)
	require.NoError(t, err)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "Jane", recorder.records[0].details["name"])
}

func TestEmployeeService_Delete_OtherTenantReadsAsMissing(t *testing.T) {
	svc, repo, recorder, principal := newTestEmployeeService(t)

	id := uuid.New()
	repo.EXPECT().FindByIDInOrganization(gomock.Any(), id, principal.OrganizationID).
		Return(nil, domain.ErrEmployeeNotFound)

	err := svc.Delete(context.Background(), principal, id)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Empty(t, recorder.records)
}
