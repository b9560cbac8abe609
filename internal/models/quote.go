package models

import (
	"fmt"
	"strconv"
	"strings"
)

// QuoteSeparator разделяет цену и объём в ответе калькулятора
const QuoteSeparator = "/"

// Quote результат расчёта стоимости доставки
type Quote struct {
	Raw    string  // Raw исходная строка "<price>/<volume>"
	Price  float64 // Price стоимость в рублях
	Volume float64 // Volume объём, по которому считал сервер (м³)
}

// ParseQuote разбирает content калькулятора один раз сразу после ответа сервера
func ParseQuote(content string) (Quote, error) {
	priceStr, volumeStr, ok := strings.Cut(strings.TrimSpace(content), QuoteSeparator)
	if !ok {
		return Quote{}, fmt.Errorf("malformed quote %q: missing %q", content, QuoteSeparator)
	}

	price, err := parseNumber(priceStr)
	if err != nil {
		return Quote{}, fmt.Errorf("malformed quote price %q: %w", priceStr, err)
	}

	// Объём сервера информативный: пустой или нечисловой не делает цену недействительной
	volume, _ := parseNumber(volumeStr)

	return Quote{Raw: content, Price: price, Volume: volume}, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}
