package models

// Person представляет профиль пользователя личного кабинета
type Person struct {
	Name      string    `json:"name"`      // Name имя пользователя
	Email     string    `json:"email"`     // Email адрес для входа
	Companies []Company `json:"companies"` // Companies компании пользователя (ИНН уникален в пределах списка)
}

// Company представляет юридическое лицо или ИП, зарегистрированное по ИНН
type Company struct {
	Name string `json:"companyName"`    // Name отображаемое название
	INN  string `json:"inn"`            // INN идентификационный номер налогоплательщика
	KPP  string `json:"kpp,omitempty"`  // KPP код причины постановки на учёт (только у организаций)
	OGRN string `json:"ogrn,omitempty"` // OGRN основной государственный регистрационный номер
}
