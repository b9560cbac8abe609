package models

import (
	"fmt"
	"strings"
)

// CubicCentimetersPerMeter число см³ в одном м³
const CubicCentimetersPerMeter = 1_000_000

// Box представляет строку грузовой описи: габариты в сантиметрах и количество коробок
type Box struct {
	Length int `json:"length"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Amount int `json:"amount"`
}

// Volume объём строки описи в см³ (length × width × height × amount)
func (b Box) Volume() int64 {
	return int64(b.Length) * int64(b.Width) * int64(b.Height) * int64(b.Amount)
}

// Valid проверяет, что каждое измерение строки строго положительно
func (b Box) Valid() bool {
	return b.Length > 0 && b.Width > 0 && b.Height > 0 && b.Amount > 0
}

// TotalVolume суммарный объём описи в м³
func TotalVolume(boxes []Box) float64 {
	var sum int64
	for _, b := range boxes {
		sum += b.Volume()
	}
	return float64(sum) / CubicCentimetersPerMeter
}

// TotalAmount суммарное количество коробок
func TotalAmount(boxes []Box) int {
	total := 0
	for _, b := range boxes {
		total += b.Amount
	}
	return total
}

// SupplyType тип поставки
type SupplyType string

const (
	SupplyTypeBox        SupplyType = "Короб"
	SupplyTypeMonoPallet SupplyType = "Монопаллет"
	SupplyTypeTransit    SupplyType = "Транзит"
)

// SupplyTypes все типы поставки в порядке отображения
var SupplyTypes = []SupplyType{SupplyTypeBox, SupplyTypeMonoPallet, SupplyTypeTransit}

// ParseSupplyType принимает как значение на проводе, так и латинское имя
func ParseSupplyType(s string) (SupplyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "короб":
		return SupplyTypeBox, nil
	case "mono-pallet", "monopallet", "pallet", "монопаллет":
		return SupplyTypeMonoPallet, nil
	case "transit", "транзит":
		return SupplyTypeTransit, nil
	default:
		return "", fmt.Errorf("unknown supply type %q. Use: box, mono-pallet, transit", s)
	}
}

// IsPallet true только для монопаллет
func (t SupplyType) IsPallet() bool {
	return t == SupplyTypeMonoPallet
}
