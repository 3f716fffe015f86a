package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openAPISpec []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Employee is the read model returned by the API.
type Employee struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Kind       string   `json:"kind"`
	BaseSalary float64  `json:"base_salary"`
	Salary     float64  `json:"salary"`
	Skills     []string `json:"skills,omitempty"`
}

// NewEmployee is the hire request body. Fields that do not apply to Kind are ignored.
type NewEmployee struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Department     string   `json:"department,omitempty"`
	Kind           string   `json:"kind"`
	BaseSalary     float64  `json:"base_salary"`
	Bonus          float64  `json:"bonus,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Seniority      string   `json:"seniority,omitempty"`
	CommissionRate float64  `json:"commission_rate,omitempty"`
	SalesVolume    float64  `json:"sales_volume,omitempty"`
}

// SalaryUpdate is the body of PUT /employees/{id}/salary.
type SalaryUpdate struct {
	Salary float64 `json:"salary"`
}

// NewDepartment is the body of POST /departments.
type NewDepartment struct {
	Name string `json:"name"`
}

// DepartmentStatsEntry describes one department.
type DepartmentStatsEntry struct {
	Name          string         `json:"name"`
	EmployeeCount int            `json:"employee_count"`
	TotalSalary   float64        `json:"total_salary"`
	EmployeeTypes map[string]int `json:"employee_types"`
}

// DepartmentStats is the body of GET /departments/stats.
type DepartmentStats struct {
	Departments      []DepartmentStatsEntry `json:"departments"`
	TotalMonthlyCost float64                `json:"total_monthly_cost"`
}

// Outcome reports which command an execute, undo or redo acted on.
type Outcome struct {
	Action  string `json:"action"`
	Command string `json:"command"`
}

// HistoryCommand is one entry of the command history.
type HistoryCommand struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// HistoryAudit is one entry of the audit trail.
type HistoryAudit struct {
	ID        uuid.UUID `json:"id"`
	Command   string    `json:"command"`
	Action    string    `json:"action"`
	Succeeded bool      `json:"succeeded"`
	At        time.Time `json:"at"`
}

// History is the body of GET /history.
type History struct {
	CurrentIndex int              `json:"current_index"`
	CanUndo      bool             `json:"can_undo"`
	CanRedo      bool             `json:"can_redo"`
	Commands     []HistoryCommand `json:"commands"`
	Audit        []HistoryAudit   `json:"audit"`
}

// FindEmployeesParams holds the query parameters of GET /employees.
type FindEmployeesParams struct {
	MinSalary  *float64
	MaxSalary  *float64
	Department *string
	Skills     *[]string
	Kind       *string
}

// ServerInterface lists one handler per operation of the OpenAPI document.
type ServerInterface interface {
	// GET /health
	GetHealth(ctx echo.Context) error
	// GET /employees
	FindEmployees(ctx echo.Context, params FindEmployeesParams) error
	// PUT /employees/{id}/salary
	UpdateSalary(ctx echo.Context, id int) error
	// POST /departments
	CreateDepartment(ctx echo.Context) error
	// GET /departments/stats
	GetDepartmentStats(ctx echo.Context) error
	// POST /departments/{name}/employees
	HireEmployee(ctx echo.Context, name string) error
	// DELETE /departments/{name}/employees/{id}
	FireEmployee(ctx echo.Context, name string, id int) error
	// GET /history
	GetHistory(ctx echo.Context) error
	// POST /history/undo
	UndoCommand(ctx echo.Context) error
	// POST /history/redo
	RedoCommand(ctx echo.Context) error
}

// ServerInterfaceWrapper decodes parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// FindEmployees converts echo context to params.
func (w *ServerInterfaceWrapper) FindEmployees(ctx echo.Context) error {
	var params FindEmployeesParams

	if err := runtime.BindQueryParameter("form", true, false, "min_salary", ctx.QueryParams(), &params.MinSalary); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter min_salary: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "max_salary", ctx.QueryParams(), &params.MaxSalary); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter max_salary: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "department", ctx.QueryParams(), &params.Department); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter department: %s", err))
	}
	if err := runtime.BindQueryParameter("form", false, false, "skills", ctx.QueryParams(), &params.Skills); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skills: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "kind", ctx.QueryParams(), &params.Kind); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter kind: %s", err))
	}

	return w.Handler.FindEmployees(ctx, params)
}

// UpdateSalary converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateSalary(ctx echo.Context) error {
	id, err := bindEmployeeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateSalary(ctx, id)
}

// CreateDepartment converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDepartment(ctx echo.Context) error {
	return w.Handler.CreateDepartment(ctx)
}

// GetDepartmentStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetDepartmentStats(ctx echo.Context) error {
	return w.Handler.GetDepartmentStats(ctx)
}

// HireEmployee converts echo context to params.
func (w *ServerInterfaceWrapper) HireEmployee(ctx echo.Context) error {
	name, err := bindDepartmentName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.HireEmployee(ctx, name)
}

// FireEmployee converts echo context to params.
func (w *ServerInterfaceWrapper) FireEmployee(ctx echo.Context) error {
	name, err := bindDepartmentName(ctx)
	if err != nil {
		return err
	}
	id, err := bindEmployeeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.FireEmployee(ctx, name, id)
}

// GetHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetHistory(ctx echo.Context) error {
	return w.Handler.GetHistory(ctx)
}

// UndoCommand converts echo context to params.
func (w *ServerInterfaceWrapper) UndoCommand(ctx echo.Context) error {
	return w.Handler.UndoCommand(ctx)
}

// RedoCommand converts echo context to params.
func (w *ServerInterfaceWrapper) RedoCommand(ctx echo.Context) error {
	return w.Handler.RedoCommand(ctx)
}

func bindEmployeeID(ctx echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindDepartmentName(ctx echo.Context) (string, error) {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "name", ctx.Param("name"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}
	return name, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.GetHealth)
	router.GET("/employees", w.FindEmployees)
	router.PUT("/employees/:id/salary", w.UpdateSalary)
	router.POST("/departments", w.CreateDepartment)
	router.GET("/departments/stats", w.GetDepartmentStats)
	router.POST("/departments/:name/employees", w.HireEmployee)
	router.DELETE("/departments/:name/employees/:id", w.FireEmployee)
	router.GET("/history", w.GetHistory)
	router.POST("/history/undo", w.UndoCommand)
	router.POST("/history/redo", w.RedoCommand)
	router.GET("/openapi.yaml", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, "application/yaml", openAPISpec)
	})
}
