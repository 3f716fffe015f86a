package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"orgchart/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsSource answers department statistics on behalf of the job. The
// implementation is responsible for serializing access to the company.
type StatsSource interface {
	DepartmentStats(ctx context.Context) (queries.DepartmentStatsResponse, error)
}

// HeadcountReportJob logs per-department headcount on a cron schedule.
// Payroll figures are logged under salary_ keys so the logger redacts them.
type HeadcountReportJob struct {
	schedule string
	source   StatsSource
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHeadcountReportJob creates a report job with a six-field cron schedule.
func NewHeadcountReportJob(schedule string, source StatsSource, logger *slog.Logger) *HeadcountReportJob {
	return &HeadcountReportJob{
		schedule: schedule,
		source:   source,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "headcount_report_job"),
	}
}

// Name identifies the job in logs and errors.
func (j *HeadcountReportJob) Name() string {
	return "headcount report"
}

// Start schedules the job.
func (j *HeadcountReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Headcount report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule.
func (j *HeadcountReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Headcount report job stopped")
}

func (j *HeadcountReportJob) run() {
	ctx := context.Background()

	stats, err := j.source.DepartmentStats(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Headcount report failed", "error", err)
		return
	}

	for _, d := range stats.Departments {
		j.logger.InfoContext(ctx, "Department headcount",
			"department", d.Name,
			"employees", d.EmployeeCount,
			"salary_total", fmt.Sprintf("%.2f", d.TotalSalary),
		)
	}
	j.logger.InfoContext(ctx, "Company headcount",
		"departments", len(stats.Departments),
		"salary_monthly_cost", fmt.Sprintf("%.2f", stats.TotalMonthlyCost),
	)
}
