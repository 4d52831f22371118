package finmodel

import (
	"fmt"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

func dashboardSheet() models.Sheet {
	rows := [][]any{
		{"MODEL PARAMETERS", nil, nil},
		{"MODEL_YEARS", Years, "Number of years to project"},
		{"CURRENCY", Currency, "Reporting currency"},
		{"INFLATION_RATE", InflationRate * 100, "Annual inflation rate (%)"},
		{"DISCOUNT_RATE", DiscountRate * 100, "Discount rate for DCF (%)"},
		{"TAX_RATE", TaxRate * 100, "Corporate income tax (%)"},
		{nil, nil, nil},
		{"MEMBERSHIP PARAMETERS", nil, nil},
	}

	for _, plan := range MembershipPlans {
		rows = append(rows, []any{plan.Name, plan.MonthlyPrice, plan.AnnualPrice})
	}

	return models.Sheet{
		Name:   "Dashboard",
		Header: []string{"Parameter", "Value", "Description"},
		Rows:   rows,
	}
}

func pricingTableSheet() models.Sheet {
	rows := [][]any{
		{"MEMBERSHIPS", nil, nil, nil},
	}

	for _, plan := range MembershipPlans {
		savings := (plan.MonthlyPrice*12 - plan.AnnualPrice) / (plan.MonthlyPrice * 12) * 100
		rows = append(rows, []any{
			plan.Name,
			money(plan.MonthlyPrice),
			money(plan.AnnualPrice),
			fmt.Sprintf("%.1f%%", savings),
		})
	}

	rows = append(rows, []any{nil, nil, nil, nil}, []any{"PUNCH PASSES", nil, nil, nil})

	for _, pass := range PunchPasses {
		rows = append(rows, []any{
			pass.Name,
			money(pass.Price),
			money(pass.Price / float64(pass.Classes)),
			fmt.Sprintf("%.1f%%", pass.Discount*100),
		})
	}

	return models.Sheet{
		Name:   "Pricing Table",
		Header: []string{"Type", "Price", "Per Unit", "Discount"},
		Rows:   rows,
	}
}

func venueCharacteristicsSheet() models.Sheet {
	rows := [][]any{
		{"ROOMS", nil, nil, nil},
	}

	for _, room := range Rooms {
		rows = append(rows, []any{
			room.Name,
			room.Capacity,
			money(room.SetupCost),
			money(room.AnnualMaintenance) + "/year",
		})
	}

	rows = append(rows,
		[]any{nil, nil, nil, nil},
		[]any{"CAPACITY SUMMARY", nil, nil, nil},
		[]any{"Total Room Capacity", TotalRoomCapacity(), nil, nil},
		[]any{"Classes Per Day", len(Rooms) * ClassesPerRoomPerDay, nil, nil},
		[]any{"Days Open Per Week", DaysOpenPerWeek, nil, nil},
	)

	return models.Sheet{
		Name:   "Venue Characteristics",
		Header: []string{"Room Type", "Capacity", "Setup Cost", "Maintenance"},
		Rows:   rows,
	}
}

func money(v float64) string {
	return fmt.Sprintf("%s %.2f", Currency, v)
}
