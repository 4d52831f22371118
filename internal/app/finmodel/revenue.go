package finmodel

func membershipRevenue() *projection {
	p := &projection{}

	total := zeros()
	for _, plan := range MembershipPlans {
		members := grow(float64(plan.Members), plan.Growth)
		revenue := members.scale(plan.MonthlyPrice * 12)
		p.add(plan.Name+" Members", "Active members on the "+plan.Name+" plan", members)
		p.add(plan.Name+" Revenue", "Annualized "+plan.Name+" membership revenue", revenue)
		total = total.plus(revenue)
	}
	p.add("Total Membership Revenue", "Sum of all membership plans", total)

	return p
}

func punchPassRevenue() *projection {
	p := &projection{}

	total := zeros()
	for _, pass := range PunchPasses {
		sold := grow(float64(pass.SoldPerMonth*12), pass.Growth)
		revenue := sold.scale(pass.Price)
		p.add(pass.Name+" Sold", "Packs sold per year", sold)
		p.add(pass.Name+" Revenue", "Revenue from "+pass.Name+" packs", revenue)
		total = total.plus(revenue)
	}
	p.add("Total Punch Pass Revenue", "Sum of all class packs", total)

	return p
}

func additionalServicesRevenue() *projection {
	p := &projection{}

	workshops := grow(42000, 0.18)
	privates := grow(54000, 0.22)
	// Teacher training launches in year 2.
	teacherTraining := grow(60000, 0.15)
	copy(teacherTraining[1:], teacherTraining[:Years-1])
	teacherTraining[0] = 0
	spa := grow(30000, 0.12)

	p.add("Workshops", "Weekend workshop and event revenue", workshops)
	p.add("Private Sessions", "One-on-one and small group sessions", privates)
	p.add("Teacher Training", "Certification program, launches year 2", teacherTraining)
	p.add("Spa Services", "Massage and recovery services", spa)
	p.add("Total Additional Services", "Sum of all additional services", workshops.plus(privates).plus(teacherTraining).plus(spa))

	return p
}

// revenueSummary consolidates the operating revenue streams; marketing
// and retail are consolidated separately, as in the workbook.
func revenueSummary(membership, punchPass, additional, marketing, retail *projection) *projection {
	p := &projection{}

	m := membership.row("Total Membership Revenue")
	pp := punchPass.row("Total Punch Pass Revenue")
	a := additional.row("Total Additional Services")
	mk := marketing.row("Total Marketing Revenue")
	r := retail.row("Retail Revenue")

	p.add("Membership Revenue", "Sum of all membership plans", m)
	p.add("Punch Pass Revenue", "Sum of all class packs", pp)
	p.add("Additional Services", "Workshops, privates, training, spa", a)
	p.add("Marketing Revenue", "Content, sponsorships, media, PR", mk)
	p.add("Retail Revenue", "In-studio retail sales", r)
	p.add("Total Revenue", "Sum of all revenue streams", m.plus(pp).plus(a).plus(mk).plus(r))

	return p
}
