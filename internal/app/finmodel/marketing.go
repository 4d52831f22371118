package finmodel

func contentRevenue() *projection {
	p := &projection{}

	subscribers := grow(ContentSubscribers, ContentGrowth)
	revenue := subscribers.scale(ContentMonthlyPrice * 12)

	p.add("Subscribers", "Paying online content subscribers", subscribers)
	p.add("Content Revenue", "Annualized subscription revenue", revenue)

	return p
}

func sponsorshipRevenue() *projection {
	p := &projection{}

	revenue := grow(SponsorshipBase, SponsorshipGrowth)
	p.add("Sponsorship Revenue", "Brand partnership and event sponsorships", revenue)

	return p
}

func paidMediaRevenue() *projection {
	p := &projection{}

	spend := inflated(PaidMediaSpend)
	attributed := spend.scale(PaidMediaROAS)

	p.add("Paid Media Spend", "Performance marketing budget", spend)
	p.add("Attributed Revenue", "Revenue attributed at target ROAS", attributed)
	p.add("Net Media Revenue", "Attributed revenue net of spend", attributed.minus(spend))

	return p
}

func prValue() *projection {
	p := &projection{}

	placements := grow(PRPlacementsPerYear, 0.10)
	value := placements.scale(PRValuePerPlacement)

	p.add("Placements", "Earned media placements per year", placements)
	p.add("PR Value", "Estimated equivalent advertising value", value)

	return p
}

// marketingRevenue consolidates the cash-generating marketing streams.
// PR value is reputational, not revenue, and stays out of the total.
func marketingRevenue(content, sponsorship, media *projection) *projection {
	p := &projection{}

	c := content.row("Content Revenue")
	s := sponsorship.row("Sponsorship Revenue")
	m := media.row("Net Media Revenue")

	p.add("Content Revenue", "Online subscriptions", c)
	p.add("Sponsorship Revenue", "Brand partnerships", s)
	p.add("Net Media Revenue", "Paid media, net of spend", m)
	p.add("Total Marketing Revenue", "Sum of marketing revenue streams", c.plus(s).plus(m))

	return p
}
