package chart

import (
	"math"
	"math/big"
	"strconv"
)

// Tooltip is the text shown when hovering one bar.
type Tooltip struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

// Percentage returns count as a percentage of total. A zero total is not
// guarded and yields NaN or ±Inf.
func Percentage(count, total float64) float64 {
	return count / total * 100
}

// FormatPercent renders p with one decimal, spelling non-finite values
// as JavaScript does. An exact tie rounds away from zero, like toFixed.
func FormatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return jsNumber(p)
	}
	if tenths, ok := tieTenths(math.Abs(p)); ok {
		s := tenths.String()
		if len(s) < 2 {
			s = "0" + s
		}
		s = s[:len(s)-1] + "." + s[len(s)-1:]
		if p < 0 {
			s = "-" + s
		}
		return s
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// tieTenths reports whether v*10 lies exactly halfway between two integers
// and, if so, returns the upper one. The test uses the exact binary value
// of v, so 0.15 (stored just below) is not a tie while 0.25 is.
func tieTenths(v float64) (*big.Int, bool) {
	x := new(big.Float).SetPrec(128).SetFloat64(v)
	x.Mul(x, big.NewFloat(10))

	n, acc := x.Int(nil)
	if acc == big.Exact {
		return nil, false
	}
	frac := new(big.Float).SetPrec(128).Sub(x, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return nil, false
	}
	return n.Add(n, big.NewInt(1)), true
}

func buildTooltips(data Dataset) []Tooltip {
	total := data.Total()
	tips := make([]Tooltip, len(data))
	for i, r := range data {
		tips[i] = Tooltip{
			Title: "Categoría: " + r.Category,
			Body: []string{
				"Pruebas: " + jsNumber(r.Count),
				"Porcentaje: " + FormatPercent(Percentage(r.Count, total)) + "%",
			},
		}
	}
	return tips
}
