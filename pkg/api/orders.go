package api

import "github.com/iudanet/kodrf/internal/models"

// AddCompanyRequest тело /api/companies/add
type AddCompanyRequest struct {
	CompanyName string `json:"companyName"`
	INN         string `json:"inn"`
}

// CalculatorRequest тело /api/calculator
type CalculatorRequest struct {
	SendCity      string  `json:"sendCity"`      // город склада назначения
	Store         string  `json:"store"`         // канал назначения
	DepartureCity string  `json:"departureCity"` // город отправки
	Volume        float64 `json:"volume"`        // объём в м³
	WillTaken     bool    `json:"willTaken"`     // нужен забор груза
	Pallet        bool    `json:"pallet"`        // монопаллет
	Amount        int     `json:"amount"`        // общее количество коробок
}

// CalculatorResponse ответ /api/calculator: content = "<price>/<volume>"
type CalculatorResponse struct {
	Content string `json:"content"`
}

// NewOrderRequest тело /new_order
type NewOrderRequest struct {
	Order models.Order `json:"order"`
	Boxes []models.Box `json:"boxes"`
}
