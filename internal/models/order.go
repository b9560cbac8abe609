package models

// Order заявка на поставку в формате /new_order.
// Клиент заявку не хранит: после отправки источник истины сервер.
type Order struct {
	DepartureDate  Date       `json:"departureDate"`  // DepartureDate фактическая дата отправки (+1 день к дате слота)
	AcceptanceDate Date       `json:"acceptanceDate"` // AcceptanceDate фактическая дата приёмки (+1 день)
	Company        string     `json:"company"`        // Company ИНН компании-отправителя
	PhoneNumber    string     `json:"phoneNumber"`    // PhoneNumber 11 цифр, начиная с 8
	SendCity       string     `json:"sendCity"`       // SendCity город склада назначения
	DepartureCity  string     `json:"departureCity"`  // DepartureCity город отправки
	Store          string     `json:"store"`          // Store канал назначения
	SupplyType     SupplyType `json:"supplyType"`
	Comment        string     `json:"comment"`    // Comment адрес забора или иной комментарий
	OzonNumber     string     `json:"ozonNumber"` // OzonNumber номер заказа канала (только Ozon)
	Title          string     `json:"title"`      // Title название слота
	Volume         float64    `json:"volume"`     // Volume объём в м³
	Price          float64    `json:"price"`
	WillTaken      bool       `json:"willTaken"` // WillTaken нужен забор груза
	Payment        bool       `json:"payment"`   // Payment онлайн-оплата
}
