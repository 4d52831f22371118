package finmodel

import "github.com/matmaxwellness/finmodel2googlesheet/internal/models"

// Load computes the full model and returns the export batch, ordered the
// way the tabs should appear in the destination workbook. The batch is
// the same for every call against the same parameters.
func Load() (models.ExportBatch, error) {
	membership := membershipRevenue()
	punchPass := punchPassRevenue()
	additional := additionalServicesRevenue()

	content := contentRevenue()
	sponsorship := sponsorshipRevenue()
	media := paidMediaRevenue()
	pr := prValue()
	marketing := marketingRevenue(content, sponsorship, media)

	retail := retailRevenue()

	revenue := revenueSummary(membership, punchPass, additional, marketing, retail)

	teachers := teacherExpenses()
	admin := adminExpenses()
	facility := facilityExpenses()
	operating := operatingExpenses()
	expenses := expenseSummary(teachers, admin, facility, operating)

	capex := capitalExpenditures()
	loan := loanDetails()

	income := incomeStatement(revenue, expenses, capex, loan)
	cashFlow := cashFlowStatement(income, capex, loan)
	balance := balanceSheet(income, cashFlow, capex, loan)

	batch := models.ExportBatch{
		// Main summary sheets
		dashboardSheet(),
		venueCharacteristicsSheet(),
		pricingTableSheet(),

		// Financial statements
		income.sheet("Income Statement"),
		balance.sheet("Balance Sheet"),
		cashFlow.sheet("Cash Flow"),

		// Revenue
		revenue.sheet("Revenue Summary"),
		membership.sheet("Membership Revenue"),
		punchPass.sheet("Punch Pass Revenue"),
		additional.sheet("Additional Services"),

		// Marketing and content revenue
		marketing.sheet("Marketing Revenue"),
		content.sheet("Content Revenue"),
		sponsorship.sheet("Sponsorship Revenue"),
		media.sheet("Media Revenue"),
		pr.sheet("PR Value"),

		// Retail
		retail.sheet("Retail Revenue"),
		retailInventory().sheet("Retail Inventory"),
		retailSpaceAnalysis().sheet("Retail Space Analysis"),
		bestsellersSheet(),

		// Expenses
		expenses.sheet("Expense Summary"),
		teachers.sheet("Teacher Expenses"),
		admin.sheet("Admin Expenses"),
		facility.sheet("Facility Expenses"),
		operating.sheet("Operating Expenses"),

		// Capital and financing
		capex.sheet("Capital Expenditures"),
		loan.sheet("Loan Details"),

		// Customer metrics
		customerAcquisition().sheet("Customer Acquisition"),
		customerSegmentation(),
		churnAnalysis(),
		customerLifetimeValue(),
		retentionStrategies(),

		// Financial analysis
		financialRatios(income, balance).sheet("Financial Ratios"),
		landlordAnalysis(income).sheet("Landlord Analysis"),
		breakevenAnalysis(income, expenses).sheet("Break-even Analysis"),
		sensitivityAnalysis(income),
		occupancyAnalysis(),
		scenarioAnalysis(income),
	}

	if err := batch.Validate(); err != nil {
		return nil, err
	}

	return batch, nil
}
