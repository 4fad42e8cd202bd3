package superjobfetcher

import "salary-stats/internal/core/domain"

type superJobSearchResponse struct {
	Objects []superJobVacancy `json:"objects"`
	Total   int               `json:"total"`
	More    bool              `json:"more"`
}

type superJobVacancy struct {
	ID          int64    `json:"id"`
	PaymentFrom *float64 `json:"payment_from"`
	PaymentTo   *float64 `json:"payment_to"`
	Currency    string   `json:"currency"`
}

// toDomain переводит ответ API в нормализованную страницу.
// В SuperJob зарплата есть у каждой вакансии, отсутствие границы - это 0.
func (r superJobSearchResponse) toDomain() domain.VacancyPage {
	page := domain.VacancyPage{
		Found:    r.Total,
		HasMore:  r.More,
		Salaries: make([]domain.SalaryRange, 0, len(r.Objects)),
	}
	for _, v := range r.Objects {
		page.Salaries = append(page.Salaries, domain.SalaryRange{
			From:     v.PaymentFrom,
			To:       v.PaymentTo,
			Currency: v.Currency,
		})
	}
	return page
}
