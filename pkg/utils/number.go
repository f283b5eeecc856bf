package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FromMinorUnits converte um valor em unidades mínimas da moeda (centavos)
// para o valor decimal correspondente.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}
