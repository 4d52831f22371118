package finmodel

import (
	"math"
	"reflect"
	"testing"
)

func TestLoadProducesTheFullBatch(t *testing.T) {
	batch, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch) != 37 {
		t.Errorf("expected 37 sheets, got %d", len(batch))
	}

	if err := batch.Validate(); err != nil {
		t.Errorf("batch has duplicate names: %v", err)
	}

	for _, sheet := range batch {
		if sheet.Name == "" {
			t.Error("sheet with empty name")
		}
		if len(sheet.Header) == 0 {
			t.Errorf("sheet %q has no header", sheet.Name)
		}
		if len(sheet.Rows) == 0 {
			t.Errorf("sheet %q has no rows", sheet.Name)
		}
		for i, row := range sheet.Rows {
			if len(row) > len(sheet.Header) {
				t.Errorf("sheet %q row %d is wider than the header", sheet.Name, i)
			}
		}
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two loads of the same model differ")
	}
}

func TestIncomeStatementArithmetic(t *testing.T) {
	membership := membershipRevenue()
	punchPass := punchPassRevenue()
	additional := additionalServicesRevenue()
	marketing := marketingRevenue(contentRevenue(), sponsorshipRevenue(), paidMediaRevenue())
	revenue := revenueSummary(membership, punchPass, additional, marketing, retailRevenue())

	expenses := expenseSummary(teacherExpenses(), adminExpenses(), facilityExpenses(), operatingExpenses())
	capex := capitalExpenditures()
	loan := loanDetails()

	income := incomeStatement(revenue, expenses, capex, loan)

	totalRevenue := income.row("Total Revenue")
	totalExpenses := income.row("Total Expenses")
	ebitda := income.row("EBITDA")

	for i := 0; i < Years; i++ {
		if diff := math.Abs(ebitda[i] - (totalRevenue[i] - totalExpenses[i])); diff > 0.01 {
			t.Errorf("year %d: EBITDA %f != revenue %f - expenses %f", i+1, ebitda[i], totalRevenue[i], totalExpenses[i])
		}
	}
}

func TestLoanFullyAmortizes(t *testing.T) {
	loan := loanDetails()
	closing := loan.row("Closing Balance")

	if final := closing[LoanTermYears-1]; math.Abs(final) > 0.05 {
		t.Errorf("loan balance after %d years is %f, expected 0", LoanTermYears, final)
	}

	interest := loan.row("Interest")
	if interest[0] != round2(LoanPrincipal*LoanRate) {
		t.Errorf("first year interest %f, expected %f", interest[0], LoanPrincipal*LoanRate)
	}
}

func TestBalanceSheetBalances(t *testing.T) {
	batch, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, sheet := range batch {
		if sheet.Name != "Balance Sheet" {
			continue
		}

		rows := map[string][]any{}
		for _, row := range sheet.Rows {
			rows[row[0].(string)] = row[2:]
		}

		assets := rows["Total Assets"]
		loan := rows["Loan Balance"]
		equity := rows["Equity"]

		for i := range assets {
			a := assets[i].(float64)
			l := loan[i].(float64)
			e := equity[i].(float64)
			if diff := math.Abs(a - (l + e)); diff > 0.01 {
				t.Errorf("Y%d: assets %f != liabilities %f + equity %f", i+1, a, l, e)
			}
		}
		return
	}

	t.Fatal("Balance Sheet not found in batch")
}

func TestProjectionSheetShape(t *testing.T) {
	p := &projection{}
	p.add("Total Revenue", "Sum of all revenue streams", series{1, 2, 3, 4, 5})
	p.add("Unnamed", "", series{0, 0, 0, 0, 0})

	sheet := p.sheet("Revenue Summary")

	expectedHeader := []string{"Item", "Description", "Y1", "Y2", "Y3", "Y4", "Y5"}
	if !reflect.DeepEqual(sheet.Header, expectedHeader) {
		t.Errorf("header %v, expected %v", sheet.Header, expectedHeader)
	}

	if sheet.Rows[0][0] != "Total Revenue" || sheet.Rows[0][2] != 1.0 {
		t.Errorf("unexpected first row %v", sheet.Rows[0])
	}

	// Metrics without a description get the generic one.
	if sheet.Rows[1][1] != "Financial metric" {
		t.Errorf("expected default description, got %v", sheet.Rows[1][1])
	}
}
