package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundHalfUp arredonda .5 sempre para cima, inclusive em negativos (-2.5 vira -2)
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// Percent calcula part/total*100; total <= 0 retorna 0
func Percent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
