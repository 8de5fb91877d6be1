// Package render formats a Video for the terminal and for JSON export.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// units are the suffixes for successive powers of 1000; past the last one
// the value is expressed in trillions.
var units = []string{"", "K", "M", "B"}

// Abbreviate renders n with one decimal and a K/M/B/T suffix, dropping a
// trailing ".0". Unknown values render as "-".
func Abbreviate(n mo.Option[int64]) string {
	v, ok := n.Get()
	if !ok {
		return "-"
	}

	num := float64(v)
	unit := "T"
	for _, u := range units {
		if math.Abs(num) < 1000 {
			unit = u
			break
		}
		num /= 1000
	}

	s := strconv.FormatFloat(num, 'f', 1, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + unit
}
