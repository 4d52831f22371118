package finmodel

import "github.com/matmaxwellness/finmodel2googlesheet/internal/models"

func retailRevenue() *projection {
	p := &projection{}

	revenue := grow(RetailRevenueBase, RetailGrowth)
	cogs := revenue.scale(1 - RetailMarginRate)

	p.add("Retail Revenue", "In-studio retail sales", revenue)
	p.add("Cost of Goods", "Retail cost of goods sold", cogs)
	p.add("Retail Margin", "Retail gross margin", revenue.minus(cogs))

	return p
}

func retailInventory() *projection {
	p := &projection{}

	revenue := grow(RetailRevenueBase, RetailGrowth)
	cogs := revenue.scale(1 - RetailMarginRate)
	avgInventory := cogs.scale(1 / RetailInventoryTurn)

	p.add("Average Inventory", "Inventory at cost, given target turns", avgInventory)
	p.add("Inventory Turns", "Target annual inventory turnover", grow(RetailInventoryTurn, 0))

	return p
}

func retailSpaceAnalysis() *projection {
	p := &projection{}

	revenue := grow(RetailRevenueBase, RetailGrowth)
	perSqm := revenue.scale(1 / RetailSqm)

	p.add("Retail Area (sqm)", "Dedicated retail floor space", grow(RetailSqm, 0))
	p.add("Revenue per sqm", "Retail revenue per square meter", perSqm)

	return p
}

// bestsellersSheet is a static ranking table, not a projection.
func bestsellersSheet() models.Sheet {
	return models.Sheet{
		Name:   "Bestselling Products",
		Header: []string{"Rank", "Product", "Category", "Unit Price", "Margin"},
		Rows: [][]any{
			{1, "Studio Mat Pro", "Equipment", 68.0, "55%"},
			{2, "Grip Socks", "Apparel", 18.0, "60%"},
			{3, "Logo Tank", "Apparel", 32.0, "52%"},
			{4, "Copper Bottle", "Accessories", 35.0, "48%"},
			{5, "Mat Spray", "Accessories", 14.0, "65%"},
			{6, "Resistance Bands Set", "Equipment", 26.0, "58%"},
			{7, "Meditation Cushion", "Equipment", 42.0, "45%"},
			{8, "Electrolyte Mix", "Nutrition", 24.0, "40%"},
		},
	}
}
