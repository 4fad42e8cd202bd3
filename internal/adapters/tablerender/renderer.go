package tablerender

import (
	"strconv"

	"salary-stats/internal/core/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headers = []string{"Language", "Vacancies Found", "Vacancies Processed", "Average Salary"}

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	titleStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Renderer рисует ASCII-таблицы статистики. Цвета не используются,
// вывод предназначен для stdout и может перенаправляться в файл.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render возвращает таблицу с заголовком. Строки идут в порядке таблицы.
func (r *Renderer) Render(stats *domain.LanguageStatsTable, title string) string {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return cellStyle
			}
			return numericStyle
		})

	if stats != nil {
		for _, ls := range stats.Rows() {
			t.Row(
				ls.Language,
				strconv.Itoa(ls.Stat.VacanciesFound),
				strconv.Itoa(ls.Stat.VacanciesProcessed),
				strconv.Itoa(ls.Stat.AverageSalary),
			)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), t.Render())
}
