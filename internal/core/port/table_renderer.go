package port

import "salary-stats/internal/core/domain"

// TableRendererPort превращает таблицу статистики в текст для консоли
type TableRendererPort interface {
	Render(table *domain.LanguageStatsTable, title string) string
}
