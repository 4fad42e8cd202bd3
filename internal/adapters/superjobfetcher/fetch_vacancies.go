package superjobfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"salary-stats/internal/contextkeys"
	"salary-stats/internal/core/domain"
	"salary-stats/internal/core/port"

	"github.com/gocolly/colly/v2"
)

func (a *SuperJobFetcherAdapter) buildURLFromCriteria(criteria domain.SearchCriteria) (string, error) {
	u, err := url.Parse(a.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("keyword", criteria.Keyword)
	if criteria.RegionID != 0 {
		q.Set("town", strconv.Itoa(criteria.RegionID))
	}
	q.Set("page", strconv.Itoa(criteria.Page))

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchVacancies запрашивает одну страницу поиска вакансий
func (a *SuperJobFetcherAdapter) FetchVacancies(ctx context.Context, criteria domain.SearchCriteria) (domain.VacancyPage, error) {
	fetchLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SuperJobFetcherAdapter(FetchVacancies)"})

	// "одноразовый" клон наследует лимиты, но имеет свои обработчики
	collector := a.collector.Clone()
	collector.Context = ctx

	var page domain.VacancyPage
	var responseErr error

	targetURL, err := a.buildURLFromCriteria(criteria)
	if err != nil {
		return domain.VacancyPage{}, fmt.Errorf("superjob adapter: failed to build URL from criteria: %w", err)
	}

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("X-Api-App-Id", a.apiKey)
		r.Headers.Set("Accept", "application/json")
		fetchLogger.Debug("Making request to fetch vacancies", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		var data superJobSearchResponse
		if jsonErr := json.Unmarshal(r.Body, &data); jsonErr != nil {
			responseErr = fmt.Errorf("superjob adapter: failed to decode JSON from %s: %w", r.Request.URL.String(), jsonErr)
			return
		}
		page = data.toDomain()
	})

	collector.OnError(func(r *colly.Response, err error) {
		fetchLogger.Error("Failed to fetch vacancies page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("superjob adapter: request to %s failed with status %d: %w: %w",
			r.Request.URL, r.StatusCode, domain.ErrTransportFailure, err)
	})

	visitErr := collector.Visit(targetURL)
	collector.Wait()

	// ошибка из колбэка информативнее, чем то, что вернул Visit
	if responseErr != nil {
		return domain.VacancyPage{}, responseErr
	}
	if visitErr != nil {
		fetchLogger.Error("Failed to initiate visit for fetching vacancies", visitErr, port.Fields{"url": targetURL})
		return domain.VacancyPage{}, fmt.Errorf("superjob adapter: failed to visit URL %s: %w: %w", targetURL, domain.ErrTransportFailure, visitErr)
	}

	fetchLogger.Debug("Fetched vacancies page", port.Fields{
		"page":     criteria.Page,
		"total":    page.Found,
		"salaries": len(page.Salaries),
		"more":     page.HasMore,
	})

	return page, nil
}
