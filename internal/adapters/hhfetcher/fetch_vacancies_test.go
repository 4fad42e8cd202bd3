package hhfetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"salary-stats/internal/core/domain"
	"salary-stats/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *HeadHunterFetcherAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter, err := NewHeadHunterFetcherAdapter(Config{
		BaseURL:   srv.URL + "/vacancies",
		UserAgent: "salary-stats-test",
	})
	require.NoError(t, err)
	return adapter
}

func TestFetchVacancies_RequestAndMapping(t *testing.T) {
	var text, area, pageParam string

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		text = r.URL.Query().Get("text")
		area = r.URL.Query().Get("area")
		pageParam = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{
			"found": 2000,
			"pages": 100,
			"page": 0,
			"items": [
				{"id": "1", "salary": {"from": 100000, "to": null, "currency": "RUR"}},
				{"id": "2", "salary": null},
				{"id": "3", "salary": {"from": null, "to": 5000, "currency": "USD"}}
			]
		}`))
	})

	page, err := adapter.FetchVacancies(context.Background(), domain.SearchCriteria{
		Keyword:  "программист Java",
		RegionID: 1,
		Page:     0,
	})
	require.NoError(t, err)

	assert.Equal(t, "программист Java", text)
	assert.Equal(t, "1", area)
	assert.Equal(t, "0", pageParam)

	assert.Equal(t, 2000, page.Found)
	assert.True(t, page.HasMore)
	require.Len(t, page.Salaries, 2, "vacancies without salary are skipped")

	estimate, ok := page.Salaries[0].Predict()
	assert.True(t, ok)
	assert.InDelta(t, 120000, estimate, 1e-9)

	_, ok = page.Salaries[1].Predict()
	assert.False(t, ok)
}

func TestFetchVacancies_HasMoreUsesDeclaredPages(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found": 40, "pages": 2, "items": []}`))
	})

	first, err := adapter.FetchVacancies(context.Background(), domain.SearchCriteria{Page: 0})
	require.NoError(t, err)
	assert.True(t, first.HasMore)

	last, err := adapter.FetchVacancies(context.Background(), domain.SearchCriteria{Page: 1})
	require.NoError(t, err)
	assert.False(t, last.HasMore)
}

func TestFetchVacancies_ZeroPagesStops(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found": 0, "pages": 0, "items": []}`))
	})

	page, err := adapter.FetchVacancies(context.Background(), domain.SearchCriteria{Page: 0})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
}

func TestFetchVacancies_ServerError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := adapter.FetchVacancies(context.Background(), domain.SearchCriteria{Page: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransportFailure))
}

// Две страницы, всего 25 вакансий, три рублевые зарплаты
func TestCollectStatisticsOverHeadHunter(t *testing.T) {
	pages := map[string]string{
		"0": `{"found": 25, "pages": 2, "items": [
			{"salary": {"from": 1000, "to": 2000, "currency": "RUR"}},
			{"salary": null},
			{"salary": {"from": 900, "to": 900, "currency": "EUR"}}
		]}`,
		"1": `{"found": 25, "pages": 2, "items": [
			{"salary": {"from": null, "to": 2000, "currency": "RUR"}},
			{"salary": {"from": 1000, "to": null, "currency": "RUR"}}
		]}`,
	}
	requests := 0
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		body, ok := pages[r.URL.Query().Get("page")]
		if !ok {
			http.Error(w, fmt.Sprintf("page %s out of range", r.URL.Query().Get("page")), http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(body))
	})

	uc := usecase.NewCollectSalaryStatisticsUseCase(adapter, "программист", 1)
	stat, err := uc.Execute(context.Background(), "Python")
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	// floor((1500 + 1600 + 1200) / 3)
	assert.Equal(t, domain.VacancyStat{VacanciesFound: 25, VacanciesProcessed: 3, AverageSalary: 1433}, stat)
}
