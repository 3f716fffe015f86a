package memory_test

import (
	"testing"
	"time"

	"orgchart/internal/adapters/out/memory"
	"orgchart/internal/core/domain/model/project"
	"orgchart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newProject(t *testing.T, id int) *project.Project {
	t.Helper()
	p, err := project.NewProject(id, "Project", "", time.Time{}, project.Planning)
	require.NoError(t, err)
	return p
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	uow *memory.UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.uow = memory.NewUnitOfWork()
}

func (s *UnitOfWorkTestSuite) TestStartsEmpty() {
	s.Equal(memory.PendingChanges{}, s.uow.Pending())
	s.Equal(0, s.uow.EmployeeRepository().Len())
}

func (s *UnitOfWorkTestSuite) TestRegistrationIsIdempotent() {
	// Arrange
	e := newEmployee(s.T(), 1, 5000)

	// Act
	s.uow.RegisterNewEmployee(e)
	s.uow.RegisterNewEmployee(e)
	s.uow.RegisterNewEmployee(nil)
	s.uow.RegisterNewDepartment(nil)

	// Assert
	s.Equal(1, s.uow.Pending().NewEmployees)
	s.Equal(1, s.uow.Pending().Total())
}

func (s *UnitOfWorkTestSuite) TestCommitAppliesAllKinds() {
	// Arrange
	e := newEmployee(s.T(), 1, 5000)
	d := newDepartment(s.T(), "IT")
	p := newProject(s.T(), 7)
	s.uow.RegisterNewEmployee(e)
	s.uow.RegisterNewDepartment(d)
	s.uow.RegisterNewProject(p)

	// Act
	err := s.uow.Commit()

	// Assert
	s.Require().NoError(err)
	got, ok := s.uow.EmployeeRepository().Get(1)
	s.True(ok)
	s.Same(e, got)
	_, ok = s.uow.DepartmentRepository().Get("IT")
	s.True(ok)
	_, ok = s.uow.ProjectRepository().Get(7)
	s.True(ok)
	s.Zero(s.uow.Pending().Total())
}

func (s *UnitOfWorkTestSuite) TestCommitAppliesNewBeforeModifiedBeforeDeleted() {
	// Arrange
	e := newEmployee(s.T(), 1, 5000)
	s.uow.RegisterNewEmployee(e)
	s.uow.RegisterModifiedEmployee(e)
	s.uow.RegisterDeletedEmployee(e)

	// Act
	err := s.uow.Commit()

	// Assert
	s.Require().NoError(err)
	s.Equal(0, s.uow.EmployeeRepository().Len())
}

func (s *UnitOfWorkTestSuite) TestModifiedDepartmentIsReinserted() {
	// Arrange
	d := newDepartment(s.T(), "IT")
	s.Require().NoError(s.uow.DepartmentRepository().Add(d))
	s.Require().NoError(d.AddEmployee(newEmployee(s.T(), 1, 5000)))
	s.uow.RegisterModifiedDepartment(d)
	s.uow.RegisterModifiedProject(nil)

	// Act
	err := s.uow.Commit()

	// Assert
	s.Require().NoError(err)
	got, ok := s.uow.DepartmentRepository().Get("IT")
	s.Require().True(ok)
	s.Same(d, got)
	s.Equal(1, got.Len())
}

func (s *UnitOfWorkTestSuite) TestFailedCommitReturnsOriginalErrorAndClearsStaging() {
	// Arrange
	existing := newEmployee(s.T(), 1, 5000)
	s.Require().NoError(s.uow.EmployeeRepository().Add(existing))
	s.uow.RegisterNewEmployee(newEmployee(s.T(), 2, 1000))
	s.uow.RegisterNewEmployee(newEmployee(s.T(), 1, 9000))
	s.uow.RegisterNewDepartment(newDepartment(s.T(), "IT"))

	// Act
	err := s.uow.Commit()

	// Assert
	var exists *errs.ObjectAlreadyExistsError
	s.Require().ErrorAs(err, &exists)
	s.Equal(1, exists.ID)
	s.Zero(s.uow.Pending().Total())
	// employee 2 was applied before the failure and stays applied
	s.Equal(2, s.uow.EmployeeRepository().Len())
	// departments were never reached
	s.Equal(0, s.uow.DepartmentRepository().Len())
}

func (s *UnitOfWorkTestSuite) TestDeletingMissingProjectFails() {
	s.uow.RegisterDeletedProject(newProject(s.T(), 99))

	err := s.uow.Commit()

	s.True(errs.IsNotFound(err))
	s.Zero(s.uow.Pending().Total())
}

func (s *UnitOfWorkTestSuite) TestRollbackDiscardsStaging() {
	// Arrange
	s.uow.RegisterNewEmployee(newEmployee(s.T(), 1, 5000))
	s.uow.RegisterNewProject(newProject(s.T(), 1))

	// Act
	s.uow.Rollback()
	err := s.uow.Commit()

	// Assert
	s.Require().NoError(err)
	s.Equal(0, s.uow.EmployeeRepository().Len())
	s.Equal(0, s.uow.ProjectRepository().Len())
}

func (s *UnitOfWorkTestSuite) TestReusableAfterCommit() {
	s.uow.RegisterNewEmployee(newEmployee(s.T(), 1, 5000))
	s.Require().NoError(s.uow.Commit())

	s.uow.RegisterNewEmployee(newEmployee(s.T(), 2, 5000))
	s.Require().NoError(s.uow.Commit())

	s.Equal(2, s.uow.EmployeeRepository().Len())
}

func TestUnitOfWorkFactory_SharesRepositories(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory()
	first := factory.Create()
	second := factory.Create()

	first.RegisterNewEmployee(newEmployee(t, 1, 5000))
	require.NoError(t, first.Commit())

	_, ok := second.EmployeeRepository().Get(1)
	assert.True(t, ok)
}
