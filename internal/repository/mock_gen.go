// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -source=./team.go -destination=../mocks/mock_team_repository.go -package=mocks TeamRepositoryIface
//go:generate mockgen -source=./log.go -destination=../mocks/mock_log_repository.go -package=mocks LogRepositoryIface
