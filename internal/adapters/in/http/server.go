// Package http exposes one company and its command history over HTTP.
//
// The core is single-threaded, so Server serializes every handler that
// touches the company or the invoker through one sync.Locker. The same locker
// must be shared with any other goroutine that reads the company, such as the
// snapshot job.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"orgchart/internal/core/application/usecases/commands"
	"orgchart/internal/core/application/usecases/queries"
	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/domain/model/department"
	"orgchart/internal/core/domain/model/employee"
	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

var errCommandNotApplied = errors.New("command was not applied")

var (
	// ErrLockIsRequired is returned when NewServer receives a nil locker.
	ErrLockIsRequired = errs.NewValueIsRequiredError("lock")
	// ErrCompanyIsRequired is returned when NewServer receives a nil company.
	ErrCompanyIsRequired = errs.NewValueIsRequiredError("company")
	// ErrInvokerIsRequired is returned when NewServer receives a nil invoker.
	ErrInvokerIsRequired = errs.NewValueIsRequiredError("invoker")
)

// Server implements ServerInterface over one company.
type Server struct {
	mu      sync.Locker
	company *company.Company
	invoker *commands.CommandInvoker

	// Query handlers
	findEmployeesHandler   queries.FindEmployeesQueryHandler
	departmentStatsHandler queries.GetDepartmentStatsQueryHandler

	logger *slog.Logger
}

// NewServer creates a server. A nil logger discards output.
func NewServer(
	mu sync.Locker,
	c *company.Company,
	invoker *commands.CommandInvoker,
	findEmployeesHandler queries.FindEmployeesQueryHandler,
	departmentStatsHandler queries.GetDepartmentStatsQueryHandler,
	logger *slog.Logger,
) (*Server, error) {
	switch {
	case mu == nil:
		return nil, ErrLockIsRequired
	case c == nil:
		return nil, ErrCompanyIsRequired
	case invoker == nil:
		return nil, ErrInvokerIsRequired
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Server{
		mu:                     mu,
		company:                c,
		invoker:                invoker,
		findEmployeesHandler:   findEmployeesHandler,
		departmentStatsHandler: departmentStatsHandler,
		logger:                 logger.With("component", "http"),
	}, nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// FindEmployees handles GET /employees - employees matching every criterion.
func (s *Server) FindEmployees(ctx echo.Context, params FindEmployeesParams) error {
	criteria := queries.Criteria{
		MinSalary: params.MinSalary,
		MaxSalary: params.MaxSalary,
	}
	if params.Department != nil {
		criteria.Department = *params.Department
	}
	if params.Skills != nil {
		criteria.Skills = *params.Skills
	}
	if params.Kind != nil {
		criteria.Kind = *params.Kind
	}

	query, err := queries.NewFindEmployeesQuery(criteria)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.mu.Lock()
	views, err := s.findEmployeesHandler.Handle(query)
	s.mu.Unlock()
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Employee, len(views))
	for i, v := range views {
		response[i] = toEmployee(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateSalary handles PUT /employees/{id}/salary.
func (s *Server) UpdateSalary(ctx echo.Context, id int) error {
	var body SalaryUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := commands.NewUpdateSalaryCommand(id, s.company, body.Salary)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.execute(cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("salary updated",
		slog.Int("employee_id", id),
		slog.String("old_salary", formatAmount(cmd.OldSalary())),
		slog.String("new_salary", formatAmount(cmd.NewSalary())),
	)

	e, _ := s.company.FindEmployeeByID(id)
	return ctx.JSON(http.StatusOK, toEmployee(queries.NewEmployeeView(e)))
}

// CreateDepartment handles POST /departments.
func (s *Server) CreateDepartment(ctx echo.Context) error {
	var body NewDepartment
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	d, err := department.NewDepartment(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.company.AddDepartment(d); err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("department created", slog.String("department", d.Name()))
	return ctx.NoContent(http.StatusCreated)
}

// GetDepartmentStats handles GET /departments/stats.
func (s *Server) GetDepartmentStats(ctx echo.Context) error {
	s.mu.Lock()
	stats, err := s.departmentStatsHandler.Handle(queries.NewGetDepartmentStatsQuery())
	s.mu.Unlock()
	if err != nil {
		return s.fail(ctx, err)
	}

	response := DepartmentStats{
		Departments:      make([]DepartmentStatsEntry, len(stats.Departments)),
		TotalMonthlyCost: stats.TotalMonthlyCost,
	}
	for i, d := range stats.Departments {
		response.Departments[i] = DepartmentStatsEntry{
			Name:          d.Name,
			EmployeeCount: d.EmployeeCount,
			TotalSalary:   d.TotalSalary,
			EmployeeTypes: d.EmployeeTypes,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// HireEmployee handles POST /departments/{name}/employees.
func (s *Server) HireEmployee(ctx echo.Context, name string) error {
	var body NewEmployee
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	e, err := newEmployee(body, name)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Employee ids are unique across the whole company, not only per department.
	if _, taken := s.company.FindEmployeeByID(e.ID()); taken {
		return s.fail(ctx, errs.NewObjectAlreadyExistsError("employee", e.ID()))
	}

	cmd, err := commands.NewHireEmployeeCommand(e, s.company, name)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.execute(cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("employee hired",
		slog.Int("employee_id", e.ID()),
		slog.String("department", name),
		slog.String("kind", e.Kind().String()),
		slog.String("base_salary", formatAmount(e.BaseSalary())),
	)
	return ctx.JSON(http.StatusCreated, toEmployee(queries.NewEmployeeView(e)))
}

// FireEmployee handles DELETE /departments/{name}/employees/{id}.
func (s *Server) FireEmployee(ctx echo.Context, name string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := commands.NewFireEmployeeCommand(id, s.company, name)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.execute(cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("employee fired", slog.Int("employee_id", id), slog.String("department", name))
	return ctx.JSON(http.StatusOK, Outcome{Action: string(commands.ActionExecute), Command: cmd.Name()})
}

// GetHistory handles GET /history.
func (s *Server) GetHistory(ctx echo.Context) error {
	s.mu.Lock()
	history := s.invoker.History()
	audit := s.invoker.AuditTrail()
	response := History{
		CurrentIndex: s.invoker.CurrentIndex(),
		CanUndo:      s.invoker.CanUndo(),
		CanRedo:      s.invoker.CanRedo(),
		Commands:     make([]HistoryCommand, len(history)),
		Audit:        make([]HistoryAudit, len(audit)),
	}
	for i, cmd := range history {
		response.Commands[i] = HistoryCommand{Name: cmd.Name(), State: cmd.State().String()}
	}
	s.mu.Unlock()

	for i, entry := range audit {
		response.Audit[i] = HistoryAudit{
			ID:        entry.ID,
			Command:   entry.Command,
			Action:    string(entry.Action),
			Succeeded: entry.Succeeded,
			At:        entry.At,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// UndoCommand handles POST /history/undo.
func (s *Server) UndoCommand(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.invoker.CanUndo() {
		return s.conflict(ctx, "nothing to undo")
	}
	name := s.invoker.History()[s.invoker.CurrentIndex()].Name()

	if !s.invoker.Undo() {
		s.logger.Warn("undo refused", slog.String("command", name))
		return s.conflict(ctx, "could not undo "+name)
	}

	s.logger.Info("command undone", slog.String("command", name))
	return ctx.JSON(http.StatusOK, Outcome{Action: string(commands.ActionUndo), Command: name})
}

// RedoCommand handles POST /history/redo.
func (s *Server) RedoCommand(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.invoker.CanRedo() {
		return s.conflict(ctx, "nothing to redo")
	}
	name := s.invoker.History()[s.invoker.CurrentIndex()+1].Name()

	ok, err := s.invoker.Redo()
	if err != nil {
		s.logger.Warn("redo failed", slog.String("command", name), slog.Any("error", err))
		return s.fail(ctx, err)
	}
	if !ok {
		return s.conflict(ctx, "could not redo "+name)
	}

	s.logger.Info("command redone", slog.String("command", name))
	return ctx.JSON(http.StatusOK, Outcome{Action: string(commands.ActionRedo), Command: name})
}

// execute runs cmd through the invoker. A command that declined to run is
// reported as errCommandNotApplied.
func (s *Server) execute(cmd commands.Command) error {
	ok, err := s.invoker.ExecuteCommand(cmd)
	if err != nil {
		s.logger.Warn("command failed", slog.String("command", cmd.Name()), slog.Any("error", err))
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", errCommandNotApplied, cmd.Name())
	}
	return nil
}

// fail maps err to a status code and writes it.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("path", ctx.Path()), slog.Any("error", err))
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func (s *Server) conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errCommandNotApplied):
		return http.StatusConflict
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsAlreadyExists(err):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newEmployee(body NewEmployee, departmentName string) (employee.Employee, error) {
	kind, err := employee.ParseKind(body.Kind)
	if err != nil {
		return nil, err
	}

	params := employee.Params{
		ID:             body.ID,
		Name:           body.Name,
		Department:     departmentName,
		BaseSalary:     body.BaseSalary,
		Bonus:          body.Bonus,
		Skills:         body.Skills,
		CommissionRate: body.CommissionRate,
		SalesVolume:    body.SalesVolume,
	}
	if body.Department != "" && body.Department != departmentName {
		return nil, errs.NewValueIsInvalidError("department")
	}
	if kind == employee.KindDeveloper {
		if params.Seniority, err = employee.ParseSeniority(body.Seniority); err != nil {
			return nil, err
		}
	}
	return employee.New(kind, params)
}

func toEmployee(v queries.EmployeeView) Employee {
	return Employee{
		ID:         v.ID,
		Name:       v.Name,
		Department: v.Department,
		Kind:       v.Kind,
		BaseSalary: v.BaseSalary,
		Salary:     v.Salary,
		Skills:     v.Skills,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
