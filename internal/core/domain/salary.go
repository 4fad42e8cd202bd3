package domain

// Коды рублевой валюты, которые возвращают источники
const (
	CurrencyRUR = "RUR" // HeadHunter
	CurrencyRub = "rub" // SuperJob
)

const (
	onlyToFactor   = 0.8
	onlyFromFactor = 1.2
)

// SalaryRange - вилка зарплаты из одной вакансии.
// Отсутствующая граница - nil или 0 (SuperJob присылает 0 вместо null).
type SalaryRange struct {
	From     *float64
	To       *float64
	Currency string
}

// PredictRubSalary оценивает зарплату в рублях по вилке.
// Второе значение false, если оценку получить нельзя.
func PredictRubSalary(from, to *float64, currency string) (float64, bool) {
	if currency != CurrencyRUR && currency != CurrencyRub {
		return 0, false
	}

	hasFrom := from != nil && *from != 0
	hasTo := to != nil && *to != 0

	switch {
	case hasFrom && hasTo:
		return (*from + *to) / 2, true
	case hasTo:
		return *to * onlyToFactor, true
	case hasFrom:
		return *from * onlyFromFactor, true
	default:
		return 0, false
	}
}

// Predict - то же самое для SalaryRange
func (s SalaryRange) Predict() (float64, bool) {
	return PredictRubSalary(s.From, s.To, s.Currency)
}
