package hhfetcher

import "salary-stats/internal/core/domain"

type hhSearchResponse struct {
	Items []hhVacancy `json:"items"`
	Found int         `json:"found"`
	Pages int         `json:"pages"`
	Page  int         `json:"page"`
}

type hhVacancy struct {
	ID     string    `json:"id"`
	Salary *hhSalary `json:"salary"`
}

type hhSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

// toDomain переводит ответ API в нормализованную страницу.
// Вакансии без зарплаты пропускаются. Последняя страница имеет индекс pages-1.
func (r hhSearchResponse) toDomain(requestedPage int) domain.VacancyPage {
	page := domain.VacancyPage{
		Found:    r.Found,
		HasMore:  requestedPage+1 < r.Pages,
		Salaries: make([]domain.SalaryRange, 0, len(r.Items)),
	}
	for _, v := range r.Items {
		if v.Salary == nil {
			continue
		}
		page.Salaries = append(page.Salaries, domain.SalaryRange{
			From:     v.Salary.From,
			To:       v.Salary.To,
			Currency: v.Salary.Currency,
		})
	}
	return page
}
