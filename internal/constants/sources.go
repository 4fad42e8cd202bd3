package constants

// Базовые адреса API
const (
	SuperJobBaseURL   = "https://api.superjob.ru/2.0/vacancies/"
	HeadHunterBaseURL = "https://api.hh.ru/vacancies"
)

// Регионы поиска: Москва
const (
	SuperJobMoscowTownID   = 4
	HeadHunterMoscowAreaID = 1
)

// SearchKeyword - начало поисковой фразы, к нему добавляется язык
const SearchKeyword = "программист"

// Заголовки таблиц
const (
	SuperJobTitle   = "SuperJob Moscow"
	HeadHunterTitle = "HeadHunter Moscow"
)

// DefaultLanguages - языки по умолчанию, порядок важен: в нем же строятся таблицы
var DefaultLanguages = []string{
	"JavaScript",
	"Java",
	"Python",
}
