package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type CellKind int

const (
	CellNumeric CellKind = iota
	CellNotAvailable
	CellPending
)

// Cell is a table value that may be missing. Tables carry Cells all the way
// to the presentation boundary, which is the only place they get turned into
// display strings.
type Cell struct {
	Kind  CellKind
	Value float64
}

func Numeric(v float64) Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable()
	}
	return Cell{Kind: CellNumeric, Value: v}
}

func NotAvailable() Cell { return Cell{Kind: CellNotAvailable} }

func Pending() Cell { return Cell{Kind: CellPending} }

func (c Cell) IsNumeric() bool { return c.Kind == CellNumeric }

// Format renders a nominal value with the given number of decimal places.
func (c Cell) Format(decimals int32) string {
	switch c.Kind {
	case CellNumeric:
		return decimal.NewFromFloat(c.Value).StringFixed(decimals)
	case CellPending:
		return "..."
	default:
		return "N/A"
	}
}

// FormatAbbrev renders large values with K/M suffixes, the way overview
// tables display index levels.
func (c Cell) FormatAbbrev(decimals int32) string {
	if c.Kind != CellNumeric {
		return c.Format(decimals)
	}
	abs := math.Abs(c.Value)
	switch {
	case abs >= 1_000_000:
		return decimal.NewFromFloat(c.Value / 1_000_000).StringFixed(decimals) + "M"
	case abs >= 1_000:
		return decimal.NewFromFloat(c.Value / 1_000).StringFixed(decimals) + "K"
	default:
		return decimal.NewFromFloat(c.Value).StringFixed(decimals)
	}
}

// FormatPercent renders a percentage with two decimal places.
func (c Cell) FormatPercent() string {
	if c.Kind != CellNumeric {
		return c.Format(2)
	}
	return decimal.NewFromFloat(c.Value).StringFixed(2) + "%"
}
