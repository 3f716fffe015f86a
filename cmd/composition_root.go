package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	httpadapter "orgchart/internal/adapters/in/http"
	"orgchart/internal/core/application/usecases/commands"
	"orgchart/internal/core/application/usecases/queries"
	"orgchart/internal/core/domain/model/company"
	"orgchart/internal/core/ports"
	"orgchart/internal/jobs"
	"orgchart/internal/pkg/errs"
)

// SnapshotTimeout bounds one scheduled save.
const SnapshotTimeout = 30 * time.Second

var (
	_ jobs.Snapshotter = (*CompositionRoot)(nil)
	_ jobs.StatsSource = (*CompositionRoot)(nil)
)

// CompositionRoot owns the single company instance and the lock that
// serializes every access to it.
type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	mu      sync.Mutex
	company *company.Company
	invoker *commands.CommandInvoker
	store   ports.CompanyStore
}

// NewCompositionRoot wires the application around c. store may be nil, in
// which case snapshots are disabled.
func NewCompositionRoot(config Config, c *company.Company, store ports.CompanyStore, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:  config,
		logger:  logger,
		company: c,
		invoker: commands.NewCommandInvoker(),
		store:   store,
	}
}

// LoadCompany restores the company called name from store, or creates an
// empty one when store is nil or holds no snapshot.
func LoadCompany(ctx context.Context, store ports.CompanyStore, name string) (*company.Company, error) {
	if store == nil {
		return company.NewCompany(name)
	}

	c, err := store.Load(ctx, name)
	if errs.IsNotFound(err) {
		return company.NewCompany(name)
	}
	if err != nil {
		return nil, fmt.Errorf("load company %q: %w", name, err)
	}
	return c, nil
}

func (r *CompositionRoot) CreateFindEmployeesQueryHandler() queries.FindEmployeesQueryHandler {
	return queries.NewFindEmployeesQueryHandler(r.company)
}

func (r *CompositionRoot) CreateGetDepartmentStatsQueryHandler() queries.GetDepartmentStatsQueryHandler {
	return queries.NewGetDepartmentStatsQueryHandler(r.company)
}

func (r *CompositionRoot) CreateServer() (*httpadapter.Server, error) {
	return httpadapter.NewServer(
		&r.mu,
		r.company,
		r.invoker,
		r.CreateFindEmployeesQueryHandler(),
		r.CreateGetDepartmentStatsQueryHandler(),
		r.logger,
	)
}

func (r *CompositionRoot) CreateJobManager() *jobs.JobManager {
	managed := []jobs.Job{
		jobs.NewHeadcountReportJob(r.config.ReportSchedule, r, r.logger),
	}
	if r.store != nil {
		managed = append(managed, jobs.NewSnapshotJob(r.config.SnapshotSchedule, SnapshotTimeout, r, r.logger))
	}
	return jobs.NewJobManager(managed...)
}

// Snapshot saves the company with the lock held. It is a no-op without a store.
func (r *CompositionRoot) Snapshot(ctx context.Context) error {
	if r.store == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(ctx, r.company)
}

// DepartmentStats answers the statistics query with the lock held.
func (r *CompositionRoot) DepartmentStats(_ context.Context) (queries.DepartmentStatsResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.CreateGetDepartmentStatsQueryHandler().Handle(queries.NewGetDepartmentStatsQuery())
}
