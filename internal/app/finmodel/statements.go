package finmodel

// InitialEquity is the founders' cash injection in year 1.
const InitialEquity = 200000.0

// DepreciationYears is the straight-line depreciation horizon for all
// capital expenditures.
const DepreciationYears = 5

func depreciation(capex *projection) series {
	spend := capex.row("Total Capex")

	dep := zeros()
	for j := 0; j < Years; j++ {
		annual := spend[j] / DepreciationYears
		for i := j; i < Years; i++ {
			dep[i] += annual
		}
	}
	for i := range dep {
		dep[i] = round2(dep[i])
	}
	return dep
}

func incomeStatement(revenue, expenses, capex, loan *projection) *projection {
	p := &projection{}

	totalRevenue := revenue.row("Total Revenue")
	totalExpenses := expenses.row("Total Expenses")
	ebitda := totalRevenue.minus(totalExpenses)
	dep := depreciation(capex)
	ebit := ebitda.minus(dep)
	interest := loan.row("Interest")
	ebt := ebit.minus(interest)

	tax := zeros()
	for i, v := range ebt {
		if v > 0 {
			tax[i] = round2(v * TaxRate)
		}
	}
	netProfit := ebt.minus(tax)

	p.add("Total Revenue", "Sum of all revenue streams", totalRevenue)
	p.add("Total Expenses", "Sum of all expenses", totalExpenses)
	p.add("EBITDA", "Earnings before interest, tax, depreciation", ebitda)
	p.add("Depreciation", "Straight-line over the asset life", dep)
	p.add("Operating Profit (EBIT)", "Earnings before interest and taxes", ebit)
	p.add("Interest Expense", "Interest on the build-out loan", interest)
	p.add("Profit Before Tax", "EBIT less interest", ebt)
	p.add("Income Tax", "Tax on positive pre-tax profit", tax)
	p.add("Net Profit", "Profit after all expenses and taxes", netProfit)

	return p
}

func cashFlowStatement(income, capex, loan *projection) *projection {
	p := &projection{}

	netProfit := income.row("Net Profit")
	dep := income.row("Depreciation")
	operating := netProfit.plus(dep)

	investing := capex.row("Total Capex").scale(-1)

	principal := loan.row("Principal Repayment").scale(-1)
	financing := make(series, Years)
	copy(financing, principal)
	// Loan drawdown and equity arrive with the year 1 build-out.
	financing[0] += LoanPrincipal + InitialEquity

	net := operating.plus(investing).plus(financing)

	closing := zeros()
	balance := 0.0
	for i, v := range net {
		balance += v
		closing[i] = round2(balance)
	}

	p.add("Operating Cash Flow", "Net profit plus depreciation", operating)
	p.add("Investing Cash Flow", "Capital expenditures", investing)
	p.add("Financing Cash Flow", "Loan drawdown, equity, repayments", financing)
	p.add("Net Cash Flow", "Total cash movement for the year", net)
	p.add("Closing Cash", "Cash and cash equivalents at year end", closing)

	return p
}

func balanceSheet(income, cashFlow, capex, loan *projection) *projection {
	p := &projection{}

	cash := cashFlow.row("Closing Cash")

	spend := capex.row("Total Capex")
	dep := income.row("Depreciation")
	fixedAssets := zeros()
	gross, accumulated := 0.0, 0.0
	for i := 0; i < Years; i++ {
		gross += spend[i]
		accumulated += dep[i]
		fixedAssets[i] = round2(gross - accumulated)
	}

	totalAssets := cash.plus(fixedAssets)
	loanBalance := loan.row("Closing Balance")
	equity := totalAssets.minus(loanBalance)

	p.add("Cash", "Cash and cash equivalents", cash)
	p.add("Fixed Assets (net)", "Capex net of accumulated depreciation", fixedAssets)
	p.add("Total Assets", "Sum of all assets", totalAssets)
	p.add("Loan Balance", "Outstanding build-out loan", loanBalance)
	p.add("Equity", "Assets less liabilities", equity)

	return p
}
