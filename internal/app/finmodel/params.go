// Package finmodel computes the wellness studio financial model and
// assembles its sheets into a single export batch. The loader is a pure
// computation: the same parameters always produce the same batch, and
// nothing here touches the destination.
package finmodel

const (
	// Years is the projection horizon.
	Years = 5

	Currency      = "USD"
	InflationRate = 0.03
	DiscountRate  = 0.10
	TaxRate       = 0.295

	ClassesPerRoomPerDay = 4
	DaysOpenPerWeek      = 6
	WeeksPerYear         = 50
)

// MembershipPlan describes one membership tier and its first-year uptake.
type MembershipPlan struct {
	Name         string
	MonthlyPrice float64
	AnnualPrice  float64
	Members      int     // members at end of year 1
	Growth       float64 // yearly member growth
}

var MembershipPlans = []MembershipPlan{
	{Name: "Essential", MonthlyPrice: 89, AnnualPrice: 890, Members: 120, Growth: 0.25},
	{Name: "Unlimited", MonthlyPrice: 149, AnnualPrice: 1490, Members: 80, Growth: 0.30},
	{Name: "Family", MonthlyPrice: 229, AnnualPrice: 2290, Members: 35, Growth: 0.20},
	{Name: "Corporate", MonthlyPrice: 129, AnnualPrice: 1290, Members: 25, Growth: 0.40},
}

// PunchPass describes a prepaid class pack.
type PunchPass struct {
	Name         string
	Classes      int
	Price        float64
	Discount     float64 // vs the drop-in rate
	SoldPerMonth int     // packs sold per month in year 1
	Growth       float64
}

var PunchPasses = []PunchPass{
	{Name: "5 Classes", Classes: 5, Price: 85, Discount: 0.05, SoldPerMonth: 40, Growth: 0.15},
	{Name: "10 Classes", Classes: 10, Price: 160, Discount: 0.11, SoldPerMonth: 25, Growth: 0.18},
	{Name: "20 Classes", Classes: 20, Price: 300, Discount: 0.16, SoldPerMonth: 12, Growth: 0.20},
}

// Room describes one studio room of the venue.
type Room struct {
	Name              string
	Capacity          int
	SetupCost         float64
	AnnualMaintenance float64
}

var Rooms = []Room{
	{Name: "Main Studio", Capacity: 30, SetupCost: 85000, AnnualMaintenance: 6000},
	{Name: "Hot Room", Capacity: 24, SetupCost: 120000, AnnualMaintenance: 14000},
	{Name: "Reformer Studio", Capacity: 12, SetupCost: 95000, AnnualMaintenance: 8000},
	{Name: "Meditation Room", Capacity: 16, SetupCost: 30000, AnnualMaintenance: 2000},
}

// Loan terms for the initial build-out financing.
const (
	LoanPrincipal = 250000.0
	LoanRate      = 0.085
	LoanTermYears = 5
)

// Facility cost baselines (year 1).
const (
	AnnualRent      = 180000.0
	AnnualUtilities = 36000.0
	AnnualInsurance = 14000.0
	AnnualCleaning  = 18000.0
)

// Staffing baselines (year 1).
const (
	TeacherRatePerClass = 65.0
	SeniorTeacherShare  = 0.30
	SeniorTeacherRate   = 90.0
	AdminSalaries       = 150000.0
	ManagerSalary       = 70000.0
)

// Marketing baselines (year 1).
const (
	ContentSubscribers  = 400
	ContentMonthlyPrice = 19.0
	ContentGrowth       = 0.45
	SponsorshipBase     = 24000.0
	SponsorshipGrowth   = 0.30
	PaidMediaSpend      = 30000.0
	PaidMediaROAS       = 2.2
	PRPlacementsPerYear = 8
	PRValuePerPlacement = 3500.0
)

// Retail baselines (year 1).
const (
	RetailRevenueBase   = 96000.0
	RetailGrowth        = 0.22
	RetailMarginRate    = 0.45
	RetailSqm           = 40.0
	RetailInventoryTurn = 6.0
)

// Customer baselines (year 1).
const (
	LeadsPerMonth      = 300
	LeadConversionRate = 0.12
	AnnualChurnRate    = 0.28
	CACBase            = 45.0
)

// TotalRoomCapacity is the summed capacity across all rooms.
func TotalRoomCapacity() int {
	total := 0
	for _, room := range Rooms {
		total += room.Capacity
	}
	return total
}

// ClassesPerYear is the venue-wide class count per year.
func ClassesPerYear() int {
	return len(Rooms) * ClassesPerRoomPerDay * DaysOpenPerWeek * WeeksPerYear
}
