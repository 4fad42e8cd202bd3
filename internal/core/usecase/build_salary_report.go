package usecase

import (
	"context"
	"fmt"

	"salary-stats/internal/contextkeys"
	"salary-stats/internal/core/domain"
	"salary-stats/internal/core/port"
	usecases_port "salary-stats/internal/core/port/usecases"
)

// ReportSource - сборщик статистики и заголовок его таблицы
type ReportSource struct {
	Title     string
	Collector usecases_port.CollectSalaryStatisticsPort
}

// BuildSalaryReportUseCase последовательно опрашивает все источники по каждому языку
type BuildSalaryReportUseCase struct {
	sources []ReportSource
}

func NewBuildSalaryReportUseCase(sources ...ReportSource) *BuildSalaryReportUseCase {
	return &BuildSalaryReportUseCase{sources: sources}
}

// Execute строит отчет. Первая же ошибка прерывает весь запуск,
// частичный отчет не возвращается.
func (uc *BuildSalaryReportUseCase) Execute(ctx context.Context, languages []string) (*domain.SalaryReport, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "BuildSalaryReport",
	})

	if len(uc.sources) == 0 {
		return nil, fmt.Errorf("use case: no vacancy sources configured")
	}

	tables := make([]*domain.LanguageStatsTable, len(uc.sources))
	for i := range uc.sources {
		tables[i] = domain.NewLanguageStatsTable()
	}

	ucLogger.Info("Starting to build salary report", port.Fields{
		"languages": len(languages),
		"sources":   len(uc.sources),
	})

	for _, language := range languages {
		for i, src := range uc.sources {
			stat, err := src.Collector.Execute(ctx, language)
			if err != nil {
				ucLogger.Error("Failed to collect statistics, aborting run", err, port.Fields{
					"language": language,
					"source":   src.Collector.SourceName(),
				})
				return nil, err
			}
			tables[i].Set(language, stat)
		}
	}

	report := &domain.SalaryReport{Sections: make([]domain.ReportSection, len(uc.sources))}
	for i, src := range uc.sources {
		report.Sections[i] = domain.ReportSection{
			Source: src.Collector.SourceName(),
			Title:  src.Title,
			Table:  tables[i],
		}
	}

	ucLogger.Info("Salary report built", nil)
	return report, nil
}
