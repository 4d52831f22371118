package finmodel

import "github.com/matmaxwellness/finmodel2googlesheet/internal/models"

func customerAcquisition() *projection {
	p := &projection{}

	leads := grow(LeadsPerMonth*12, 0.20)
	converted := leads.scale(LeadConversionRate)
	cac := inflated(CACBase)
	spend := make(series, Years)
	for i := range spend {
		spend[i] = round2(converted[i] * cac[i])
	}

	p.add("Leads", "Qualified leads per year", leads)
	p.add("New Customers", "Leads converted to paying customers", converted)
	p.add("CAC", "Acquisition cost per customer", cac)
	p.add("Acquisition Spend", "New customers times CAC", spend)

	return p
}

func customerSegmentation() models.Sheet {
	return models.Sheet{
		Name:   "Customer Segmentation",
		Header: []string{"Customer Segment", "Share", "Avg Monthly Spend", "Primary Plan"},
		Rows: [][]any{
			{"Young Professionals", "38%", 142.0, "Unlimited"},
			{"Families", "22%", 235.0, "Family"},
			{"Seniors", "16%", 95.0, "Essential"},
			{"Corporate Wellness", "14%", 129.0, "Corporate"},
			{"Drop-in & Tourists", "10%", 54.0, "Punch Pass"},
		},
	}
}

func churnAnalysis() models.Sheet {
	return models.Sheet{
		Name:   "Churn Analysis",
		Header: []string{"Churn Factor", "Annual Impact", "Mitigation"},
		Rows: [][]any{
			{"Relocation", "9%", "Online content subscription"},
			{"Price Sensitivity", "8%", "Essential tier, punch passes"},
			{"Schedule Fit", "6%", "Expanded early and late classes"},
			{"Lost Motivation", "5%", "Challenges and milestone rewards"},
			{"Total Annual Churn", "28%", ""},
		},
	}
}

func customerLifetimeValue() models.Sheet {
	return models.Sheet{
		Name:   "Customer Lifetime Value",
		Header: []string{"Channel", "CAC", "Avg Tenure (months)", "CLV", "CLV/CAC"},
		Rows: [][]any{
			{"Referral", 18.0, 34, 4828.0, 268.2},
			{"Organic Search", 32.0, 28, 3976.0, 124.3},
			{"Paid Social", 64.0, 19, 2698.0, 42.2},
			{"Corporate Partnerships", 41.0, 31, 3999.0, 97.5},
			{"Walk-in", 12.0, 16, 2272.0, 189.3},
		},
	}
}

func retentionStrategies() models.Sheet {
	return models.Sheet{
		Name:   "Retention Strategies",
		Header: []string{"Retention Strategy", "Annual Cost", "Churn Reduction", "Status"},
		Rows: [][]any{
			{"Milestone Rewards", 6000.0, "2.0%", "Active"},
			{"Member Community Events", 9000.0, "3.5%", "Active"},
			{"Personal Check-ins", 4800.0, "2.5%", "Active"},
			{"Pause Instead of Cancel", 0.0, "1.5%", "Active"},
			{"Win-back Campaigns", 3600.0, "1.0%", "Planned"},
		},
	}
}
