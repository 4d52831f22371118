package finmodel

import "math"

func teacherExpenses() *projection {
	p := &projection{}

	classes := grow(float64(ClassesPerYear()), 0.05)
	regular := classes.scale((1 - SeniorTeacherShare) * TeacherRatePerClass)
	senior := classes.scale(SeniorTeacherShare * SeniorTeacherRate)

	p.add("Classes Taught", "Scheduled classes per year", classes)
	p.add("Regular Teacher Pay", "Per-class pay, regular teachers", regular)
	p.add("Senior Teacher Pay", "Per-class pay, senior teachers", senior)
	p.add("Total Teacher Expenses", "All teaching compensation", regular.plus(senior))

	return p
}

func adminExpenses() *projection {
	p := &projection{}

	frontDesk := inflated(AdminSalaries)
	manager := inflated(ManagerSalary)
	software := inflated(14400)
	accounting := inflated(9600)

	p.add("Front Desk & Admin", "Front desk and administration salaries", frontDesk)
	p.add("Studio Manager", "Studio manager salary", manager)
	p.add("Software & Subscriptions", "Booking, CRM and accounting software", software)
	p.add("Accounting & Legal", "External accounting and legal", accounting)
	p.add("Total Admin Expenses", "All administrative expenses", frontDesk.plus(manager).plus(software).plus(accounting))

	return p
}

func facilityExpenses() *projection {
	p := &projection{}

	rent := inflated(AnnualRent)
	utilities := inflated(AnnualUtilities)
	insurance := inflated(AnnualInsurance)
	cleaning := inflated(AnnualCleaning)

	maintenanceBase := 0.0
	for _, room := range Rooms {
		maintenanceBase += room.AnnualMaintenance
	}
	maintenance := inflated(maintenanceBase)

	p.add("Rent", "Venue lease", rent)
	p.add("Utilities", "Power, water, climate control", utilities)
	p.add("Insurance", "Liability and property insurance", insurance)
	p.add("Cleaning", "Cleaning and consumables", cleaning)
	p.add("Room Maintenance", "Per-room maintenance budgets", maintenance)
	p.add("Total Facility Expenses", "All facility costs", rent.plus(utilities).plus(insurance).plus(cleaning).plus(maintenance))

	return p
}

func operatingExpenses() *projection {
	p := &projection{}

	marketing := grow(48000, 0.10)
	supplies := inflated(12000)
	events := inflated(9000)
	misc := inflated(7200)

	p.add("Marketing & Acquisition", "Brand and acquisition spend", marketing)
	p.add("Studio Supplies", "Props, towels, consumables", supplies)
	p.add("Community Events", "Open days and member events", events)
	p.add("Miscellaneous", "Unallocated operating costs", misc)
	p.add("Total Operating Expenses", "All other operating costs", marketing.plus(supplies).plus(events).plus(misc))

	return p
}

func capitalExpenditures() *projection {
	p := &projection{}

	buildOut := zeros()
	for _, room := range Rooms {
		buildOut[0] += room.SetupCost
	}

	equipment := zeros()
	equipment[0] = 60000
	// Mid-horizon refresh of mats, reformers and AV equipment.
	equipment[2] = 25000
	equipment[4] = 30000

	p.add("Room Build-out", "Initial construction and fit-out", buildOut)
	p.add("Equipment", "Initial purchase and refresh cycles", equipment)
	p.add("Total Capex", "All capital expenditures", buildOut.plus(equipment))

	return p
}

// loanDetails amortizes the build-out loan with level annual payments.
func loanDetails() *projection {
	p := &projection{}

	annuity := LoanPrincipal * LoanRate / (1 - math.Pow(1+LoanRate, -LoanTermYears))

	opening := zeros()
	interest := zeros()
	principal := zeros()
	closing := zeros()

	balance := LoanPrincipal
	for i := 0; i < Years; i++ {
		opening[i] = round2(balance)
		if i < LoanTermYears {
			interest[i] = round2(balance * LoanRate)
			principal[i] = round2(annuity - balance*LoanRate)
			balance -= annuity - balance*LoanRate
		}
		closing[i] = round2(balance)
	}

	p.add("Opening Balance", "Loan balance at start of year", opening)
	p.add("Interest", "Interest portion of the payment", interest)
	p.add("Principal Repayment", "Principal portion of the payment", principal)
	p.add("Closing Balance", "Loan balance at end of year", closing)

	return p
}

func expenseSummary(teachers, admin, facility, operating *projection) *projection {
	p := &projection{}

	t := teachers.row("Total Teacher Expenses")
	a := admin.row("Total Admin Expenses")
	f := facility.row("Total Facility Expenses")
	o := operating.row("Total Operating Expenses")

	p.add("Teacher Expenses", "All teaching compensation", t)
	p.add("Admin Expenses", "All administrative expenses", a)
	p.add("Facility Expenses", "All facility costs", f)
	p.add("Operating Expenses", "All other operating costs", o)
	p.add("Total Expenses", "Sum of all expenses", t.plus(a).plus(f).plus(o))

	return p
}
