// Package units converts the measurement inputs accepted from clients into
// the integer units persisted in profiles.
package units

import "math"

const (
	mmPerInch     = 25.4
	gramsPerLb    = 453.592
	gramsPerKg    = 1000
	inchesPerFoot = 12
)

// FeetInchesToMm returns a height in whole millimetres.
func FeetInchesToMm(feet, inches float64) int64 {
	return int64(math.Round((feet*inchesPerFoot + inches) * mmPerInch))
}

// LbsToGrams returns a weight in whole grams.
func LbsToGrams(lbs float64) int64 {
	return int64(math.Round(lbs * gramsPerLb))
}

// KgToGrams returns a weight in whole grams.
func KgToGrams(kg float64) int64 {
	return int64(math.Round(kg * gramsPerKg))
}

// WeightToGrams interprets w as kilograms when metric is set, pounds
// otherwise.
func WeightToGrams(w float64, metric bool) int64 {
	if metric {
		return KgToGrams(w)
	}
	return LbsToGrams(w)
}

// MmToFeetInches splits a height into whole feet and inches rounded to one
// decimal.
func MmToFeetInches(mm int64) (feet int64, inches float64) {
	total := float64(mm) / mmPerInch
	feet = int64(total / inchesPerFoot)
	inches = math.Round((total-float64(feet)*inchesPerFoot)*10) / 10
	return feet, inches
}

// GramsToWeight is the inverse of WeightToGrams, rounded to one decimal.
func GramsToWeight(g int64, metric bool) float64 {
	per := float64(gramsPerLb)
	if metric {
		per = gramsPerKg
	}
	return math.Round(float64(g)/per*10) / 10
}
