package finmodel

import (
	"fmt"
	"math"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

// series is one metric across the projection horizon, year 1 first.
type series []float64

func (s series) plus(o series) series {
	out := make(series, len(s))
	for i := range s {
		out[i] = s[i] + o[i]
	}
	return out
}

func (s series) minus(o series) series {
	out := make(series, len(s))
	for i := range s {
		out[i] = s[i] - o[i]
	}
	return out
}

func (s series) scale(f float64) series {
	out := make(series, len(s))
	for i := range s {
		out[i] = s[i] * f
	}
	return out
}

// grow projects a first-year base forward at a compound yearly rate.
func grow(base, rate float64) series {
	out := make(series, Years)
	for i := range out {
		out[i] = round2(base * math.Pow(1+rate, float64(i)))
	}
	return out
}

// inflated projects a year-1 cost forward at the inflation rate.
func inflated(base float64) series {
	return grow(base, InflationRate)
}

func zeros() series {
	return make(series, Years)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// metric is one labelled row of a projection sheet.
type metric struct {
	name   string
	desc   string
	values series
}

// projection is a set of metrics over the model years. Sheets built from
// projections are emitted transposed, the way the original workbook reads:
// metrics as rows, years as columns.
type projection struct {
	metrics []metric
}

func (p *projection) add(name, desc string, values series) {
	p.metrics = append(p.metrics, metric{name: name, desc: desc, values: values})
}

func (p *projection) row(name string) series {
	for _, m := range p.metrics {
		if m.name == name {
			return m.values
		}
	}
	return zeros()
}

// sheet renders the projection with an Item column, a Description column
// and one column per year starting at Y1.
func (p *projection) sheet(name string) models.Sheet {
	header := []string{"Item", "Description"}
	for y := 1; y <= Years; y++ {
		header = append(header, fmt.Sprintf("Y%d", y))
	}

	rows := make([][]any, 0, len(p.metrics))
	for _, m := range p.metrics {
		desc := m.desc
		if desc == "" {
			desc = "Financial metric"
		}
		row := []any{m.name, desc}
		for _, v := range m.values {
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return models.Sheet{Name: name, Header: header, Rows: rows}
}
