package catalog

// ProductRecord is one row of the uploaded product catalog. Name is the join
// key to customer purchase rows and must be unique within a run.
type ProductRecord struct {
	Name         string
	SalesRevenue float64
	UnitsSold    int
	SquareInches float64
	PageNumber   int
	CatalogPrice float64
}

// CustomerRecord is one row of the purchase log. A customer appears once per
// product purchased, so Email is not unique across rows.
type CustomerRecord struct {
	Email            string
	ProductName      string
	UnitsPurchased   int
	RevenueGenerated float64
	AgeRange         string
	IncomeTier       string
	Location         string
}
