package finmodel

import (
	"fmt"
	"math"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

func financialRatios(income, balance *projection) *projection {
	p := &projection{}

	revenue := income.row("Total Revenue")
	ebitda := income.row("EBITDA")
	netProfit := income.row("Net Profit")
	assets := balance.row("Total Assets")
	equity := balance.row("Equity")

	p.add("EBITDA Margin", "EBITDA over total revenue", ratio(ebitda, revenue))
	p.add("Net Margin", "Net profit over total revenue", ratio(netProfit, revenue))
	p.add("Return on Assets", "Net profit over total assets", ratio(netProfit, assets))
	p.add("Return on Equity", "Net profit over equity", ratio(netProfit, equity))

	return p
}

func landlordAnalysis(income *projection) *projection {
	p := &projection{}

	rent := inflated(AnnualRent)
	revenue := income.row("Total Revenue")
	ebitda := income.row("EBITDA")

	p.add("Annual Rent", "Venue lease", rent)
	p.add("Rent to Revenue", "Rent as a share of revenue", ratio(rent, revenue))
	p.add("EBITDA Rent Cover", "EBITDA over rent", ratio(ebitda, rent))

	return p
}

func breakevenAnalysis(income, expenses *projection) *projection {
	p := &projection{}

	revenue := income.row("Total Revenue")
	totalExpenses := expenses.row("Total Expenses")

	// Facility and admin carry the fixed base; the rest scales with
	// attendance.
	fixed := expenses.row("Facility Expenses").plus(expenses.row("Admin Expenses"))
	variable := totalExpenses.minus(fixed)

	contribution := ratio(revenue.minus(variable), revenue)
	breakeven := make(series, Years)
	for i := range breakeven {
		if contribution[i] > 0 {
			breakeven[i] = round2(fixed[i] / contribution[i])
		}
	}

	p.add("Fixed Costs", "Facility plus admin", fixed)
	p.add("Variable Costs", "Costs scaling with activity", variable)
	p.add("Contribution Margin", "Revenue net of variable costs, as a share", contribution)
	p.add("Break-even Revenue", "Revenue needed to cover fixed costs", breakeven)
	p.add("Safety Margin", "Actual revenue over break-even", ratio(revenue.minus(breakeven), revenue))

	return p
}

// sensitivityAnalysis flexes year-3 net profit against revenue deltas.
func sensitivityAnalysis(income *projection) models.Sheet {
	const year = 2 // year 3 of the projection

	revenue := income.row("Total Revenue")[year]
	expenses := income.row("Total Expenses")[year]
	netProfit := income.row("Net Profit")[year]

	deltas := []float64{-0.20, -0.10, -0.05, 0, 0.05, 0.10, 0.20}
	rows := make([][]any, 0, len(deltas))
	for _, d := range deltas {
		flexedRevenue := round2(revenue * (1 + d))
		// Expenses held constant; the revenue delta flows through
		// after tax.
		flexedProfit := round2(netProfit + (flexedRevenue-revenue)*(1-TaxRate))
		rows = append(rows, []any{
			fmt.Sprintf("%+.0f%%", d*100),
			flexedRevenue,
			round2(expenses),
			flexedProfit,
		})
	}

	return models.Sheet{
		Name:   "Sensitivity Analysis",
		Header: []string{"Revenue Delta", "Y3 Revenue", "Y3 Expenses", "Y3 Net Profit"},
		Rows:   rows,
	}
}

func occupancyAnalysis() models.Sheet {
	classesPerRoom := ClassesPerRoomPerDay * DaysOpenPerWeek * WeeksPerYear

	rows := make([][]any, 0, len(Rooms)+1)
	totalSeats := 0
	for _, room := range Rooms {
		seats := room.Capacity * classesPerRoom
		totalSeats += seats
		rows = append(rows, []any{room.Name, room.Capacity, classesPerRoom, seats, "62%"})
	}
	rows = append(rows, []any{"Total", TotalRoomCapacity(), len(Rooms) * classesPerRoom, totalSeats, "62%"})

	return models.Sheet{
		Name:   "Occupancy Analysis",
		Header: []string{"Room", "Capacity", "Classes per Year", "Seats per Year", "Target Occupancy"},
		Rows:   rows,
	}
}

func scenarioAnalysis(income *projection) models.Sheet {
	scenarios := []struct {
		name    string
		flex    float64
		comment string
	}{
		{"Downside", -0.15, "Slow ramp-up, higher churn"},
		{"Base", 0, "Plan assumptions hold"},
		{"Upside", 0.15, "Corporate partnerships outperform"},
	}

	revenue := income.row("Total Revenue")
	netProfit := income.row("Net Profit")

	rows := make([][]any, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []any{
			s.name,
			round2(revenue[Years-1] * (1 + s.flex)),
			round2(netProfit[Years-1] + revenue[Years-1]*s.flex*(1-TaxRate)),
			s.comment,
		})
	}

	return models.Sheet{
		Name:   "Scenario Analysis",
		Header: []string{"Scenario", "Y5 Revenue", "Y5 Net Profit", "Notes"},
		Rows:   rows,
	}
}

// ratio divides element-wise, leaving zero where the denominator is zero,
// rounded to four decimals.
func ratio(num, den series) series {
	out := make(series, len(num))
	for i := range num {
		if den[i] != 0 {
			out[i] = math.Round(num[i]/den[i]*10000) / 10000
		}
	}
	return out
}
