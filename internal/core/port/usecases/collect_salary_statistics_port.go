package usecases_port

import (
	"context"
	"salary-stats/internal/core/domain"
)

type CollectSalaryStatisticsPort interface {
	Execute(ctx context.Context, language string) (domain.VacancyStat, error)
	SourceName() string
}
