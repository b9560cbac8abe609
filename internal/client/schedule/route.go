package schedule

import "github.com/iudanet/kodrf/internal/models"

// Destination куда ведёт выбор слота в списке
type Destination int

const (
	RouteLogin Destination = iota
	RouteAddCompany
	RouteOrderForm
)

func (d Destination) String() string {
	switch d {
	case RouteLogin:
		return "login"
	case RouteAddCompany:
		return "add-company"
	default:
		return "order-form"
	}
}

// AppState часть кэша приложения, нужная для навигации
type AppState interface {
	Token() string
	Person() *models.Person
	Companies() []models.Company
}

// Route определяет следующий экран: без токена или профиля нужен вход,
// без компаний нужна регистрация компании, иначе форма заявки.
func Route(state AppState) Destination {
	if state.Token() == "" || state.Person() == nil {
		return RouteLogin
	}
	if len(state.Companies()) == 0 {
		return RouteAddCompany
	}
	return RouteOrderForm
}
