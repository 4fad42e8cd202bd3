package domain

import "math"

// VacancyStat - итоговая статистика по одному языку для одного источника
type VacancyStat struct {
	VacanciesFound     int
	VacanciesProcessed int
	AverageSalary      int
}

// NewVacancyStat считает статистику по найденному количеству и нормализованным зарплатам.
func NewVacancyStat(found int, salaries []float64) VacancyStat {
	stat := VacancyStat{
		VacanciesFound:     found,
		VacanciesProcessed: len(salaries),
	}
	if len(salaries) == 0 {
		return stat
	}

	var sum float64
	for _, s := range salaries {
		sum += s
	}
	stat.AverageSalary = int(math.Floor(sum / float64(len(salaries))))
	return stat
}

// LanguageStat - строка таблицы
type LanguageStat struct {
	Language string
	Stat     VacancyStat
}

// LanguageStatsTable хранит статистику по языкам в порядке добавления
type LanguageStatsTable struct {
	index map[string]int
	rows  []LanguageStat
}

func NewLanguageStatsTable() *LanguageStatsTable {
	return &LanguageStatsTable{index: make(map[string]int)}
}

// Set добавляет язык в конец таблицы или заменяет значение на прежнем месте
func (t *LanguageStatsTable) Set(language string, stat VacancyStat) {
	if i, ok := t.index[language]; ok {
		t.rows[i].Stat = stat
		return
	}
	t.index[language] = len(t.rows)
	t.rows = append(t.rows, LanguageStat{Language: language, Stat: stat})
}

func (t *LanguageStatsTable) Get(language string) (VacancyStat, bool) {
	i, ok := t.index[language]
	if !ok {
		return VacancyStat{}, false
	}
	return t.rows[i].Stat, true
}

// Rows возвращает копию строк, чтобы таблицу нельзя было изменить снаружи
func (t *LanguageStatsTable) Rows() []LanguageStat {
	rows := make([]LanguageStat, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *LanguageStatsTable) Len() int {
	return len(t.rows)
}

// ReportSection - таблица одного источника с заголовком
type ReportSection struct {
	Source string
	Title  string
	Table  *LanguageStatsTable
}

// SalaryReport - все таблицы одного запуска в порядке источников
type SalaryReport struct {
	Sections []ReportSection
}
