package domain

import "github.com/shopspring/decimal"

const overagePlaces = 4

// RoundTo rounds half away from zero to the given number of decimal places.
func RoundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func round4(v float64) float64 {
	return RoundTo(v, overagePlaces)
}
