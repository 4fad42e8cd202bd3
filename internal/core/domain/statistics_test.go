package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVacancyStat(t *testing.T) {
	t.Run("no salaries gives zero average", func(t *testing.T) {
		stat := NewVacancyStat(42, nil)
		assert.Equal(t, VacancyStat{VacanciesFound: 42}, stat)
	})

	t.Run("average is floored", func(t *testing.T) {
		stat := NewVacancyStat(25, []float64{1000, 1001, 1001})
		assert.Equal(t, 25, stat.VacanciesFound)
		assert.Equal(t, 3, stat.VacanciesProcessed)
		assert.Equal(t, 1000, stat.AverageSalary)
	})

	t.Run("fractional estimates", func(t *testing.T) {
		stat := NewVacancyStat(2, []float64{1600.0, 1200.0})
		assert.Equal(t, 1400, stat.AverageSalary)
	})
}

func TestLanguageStatsTableKeepsInsertionOrder(t *testing.T) {
	table := NewLanguageStatsTable()
	table.Set("JavaScript", VacancyStat{VacanciesFound: 1})
	table.Set("Java", VacancyStat{VacanciesFound: 2})
	table.Set("Python", VacancyStat{VacanciesFound: 3})
	table.Set("Java", VacancyStat{VacanciesFound: 20})

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "JavaScript", rows[0].Language)
	assert.Equal(t, "Java", rows[1].Language)
	assert.Equal(t, 20, rows[1].Stat.VacanciesFound)
	assert.Equal(t, "Python", rows[2].Language)
	assert.Equal(t, 3, table.Len())

	stat, ok := table.Get("Python")
	assert.True(t, ok)
	assert.Equal(t, 3, stat.VacanciesFound)

	_, ok = table.Get("Go")
	assert.False(t, ok)
}

func TestLanguageStatsTableRowsIsACopy(t *testing.T) {
	table := NewLanguageStatsTable()
	table.Set("Go", VacancyStat{VacanciesFound: 1})

	rows := table.Rows()
	rows[0].Stat.VacanciesFound = 100

	stat, _ := table.Get("Go")
	assert.Equal(t, 1, stat.VacanciesFound)
}
