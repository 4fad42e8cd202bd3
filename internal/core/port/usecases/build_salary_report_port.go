package usecases_port

import (
	"context"
	"salary-stats/internal/core/domain"
)

type BuildSalaryReportPort interface {
	Execute(ctx context.Context, languages []string) (*domain.SalaryReport, error)
}
