package domain

import "errors"

// ErrTransportFailure - источник ответил неуспешно или не ответил вовсе
var ErrTransportFailure = errors.New("transport failure")

// SearchCriteria определяет параметры запроса одной страницы вакансий
type SearchCriteria struct {
	Language string
	Keyword  string
	RegionID int
	// Пагинация, с нуля
	Page int
}

// VacancyPage - нормализованный ответ источника на одну страницу
type VacancyPage struct {
	// Found - сколько всего вакансий нашел источник
	Found    int
	Salaries []SalaryRange
	// HasMore - есть ли следующая страница. Каждый источник решает это по-своему
	HasMore bool
}
