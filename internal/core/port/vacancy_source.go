package port

import (
	"context"
	"salary-stats/internal/core/domain"
)

// VacancySourcePort - один сайт с вакансиями.
// Решение о следующей странице адаптер возвращает в VacancyPage.HasMore.
type VacancySourcePort interface {
	// SourceName - короткое имя источника для логов и ошибок
	SourceName() string

	// FetchVacancies запрашивает одну страницу поиска
	FetchVacancies(ctx context.Context, criteria domain.SearchCriteria) (domain.VacancyPage, error)
}
