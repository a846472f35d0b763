package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD; vazio retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDateOr formata a data em YYYY-MM-DD ou retorna fallback quando inválida/vazia
func FormatDateOr(dateStr, fallback string) string {
	date, err := ParseDate(dateStr)
	if err != nil || date == nil {
		return fallback
	}
	return date.Format(time.DateOnly)
}
