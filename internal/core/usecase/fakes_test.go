package usecase

import (
	"context"
	"fmt"

	"salary-stats/internal/core/domain"
)

// fakeSource отдает заранее заготовленные страницы и запоминает запросы
type fakeSource struct {
	name     string
	pages    []domain.VacancyPage
	failAt   int
	err      error
	requests []domain.SearchCriteria
}

func (f *fakeSource) SourceName() string { return f.name }

func (f *fakeSource) FetchVacancies(ctx context.Context, criteria domain.SearchCriteria) (domain.VacancyPage, error) {
	f.requests = append(f.requests, criteria)
	if f.err != nil && criteria.Page == f.failAt {
		return domain.VacancyPage{}, f.err
	}
	if criteria.Page >= len(f.pages) {
		return domain.VacancyPage{}, fmt.Errorf("unexpected page %d", criteria.Page)
	}
	return f.pages[criteria.Page], nil
}

func rub(from, to float64) domain.SalaryRange {
	r := domain.SalaryRange{Currency: domain.CurrencyRUR}
	if from != 0 {
		r.From = &from
	}
	if to != 0 {
		r.To = &to
	}
	return r
}

// fakeCollector - статистика по языкам без обращения к источнику
type fakeCollector struct {
	name  string
	stats map[string]domain.VacancyStat
	err   error
	calls []string
	log   *[]string
}

func (f *fakeCollector) SourceName() string { return f.name }

func (f *fakeCollector) Execute(ctx context.Context, language string) (domain.VacancyStat, error) {
	f.calls = append(f.calls, language)
	if f.log != nil {
		*f.log = append(*f.log, f.name+":"+language)
	}
	if f.err != nil {
		return domain.VacancyStat{}, f.err
	}
	return f.stats[language], nil
}
