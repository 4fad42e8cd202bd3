package usecase

import (
	"context"
	"fmt"

	"salary-stats/internal/contextkeys"
	"salary-stats/internal/core/domain"
	"salary-stats/internal/core/port"
)

// CollectSalaryStatisticsUseCase обходит все страницы поиска одного источника
// и считает статистику зарплат по языку
type CollectSalaryStatisticsUseCase struct {
	source   port.VacancySourcePort
	keyword  string
	regionID int
}

// NewCollectSalaryStatisticsUseCase создает новый экземпляр CollectSalaryStatisticsUseCase.
// keyword - префикс поисковой фразы, к нему дописывается язык.
func NewCollectSalaryStatisticsUseCase(source port.VacancySourcePort, keyword string, regionID int) *CollectSalaryStatisticsUseCase {
	return &CollectSalaryStatisticsUseCase{
		source:   source,
		keyword:  keyword,
		regionID: regionID,
	}
}

func (uc *CollectSalaryStatisticsUseCase) SourceName() string {
	return uc.source.SourceName()
}

// Execute запускает пагинацию и возвращает статистику
func (uc *CollectSalaryStatisticsUseCase) Execute(ctx context.Context, language string) (domain.VacancyStat, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CollectSalaryStatistics",
		"source":   uc.source.SourceName(),
		"language": language,
	})

	criteria := domain.SearchCriteria{
		Language: language,
		Keyword:  fmt.Sprintf("%s %s", uc.keyword, language),
		RegionID: uc.regionID,
		Page:     0,
	}

	var salaries []float64
	vacanciesFound := 0
	skipped := 0

	for {
		select {
		case <-ctx.Done():
			return domain.VacancyStat{}, ctx.Err()
		default:
		}

		pageLogger := ucLogger.WithFields(port.Fields{"page": criteria.Page})
		pageLogger.Debug("Fetching page", nil)

		page, err := uc.source.FetchVacancies(ctx, criteria)
		if err != nil {
			pageLogger.Error("Error fetching vacancies page", err, nil)
			return domain.VacancyStat{}, fmt.Errorf("use case: error fetching vacancies from '%s' for '%s' (page %d): %w",
				uc.source.SourceName(), language, criteria.Page, err)
		}

		// источник присылает total на каждой странице, берем последнее значение
		vacanciesFound = page.Found

		for _, salary := range page.Salaries {
			estimate, ok := salary.Predict()
			if !ok {
				skipped++
				continue
			}
			salaries = append(salaries, estimate)
		}

		if !page.HasMore {
			pageLogger.Debug("Source reported last page. Pagination finished.", nil)
			break
		}
		criteria.Page++
	}

	stat := domain.NewVacancyStat(vacanciesFound, salaries)

	ucLogger.Info("Finished collecting salary statistics", port.Fields{
		"pages_processed":     criteria.Page + 1,
		"vacancies_found":     stat.VacanciesFound,
		"vacancies_processed": stat.VacanciesProcessed,
		"salaries_skipped":    skipped,
		"average_salary":      stat.AverageSalary,
	})

	return stat, nil
}
