package catalog

// Condition describes the wear grade of a preloved item.
type Condition string

const (
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
)

type Seller struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Rating       float64 `json:"rating"`
	ResponseTime string  `json:"responseTime"`
	TotalSales   int     `json:"totalSales"`
	Verified     bool    `json:"verified"`
}

// Product is immutable reference data supplied by the catalog.
// Prices are IDR, which has no fractional unit.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice"`
	Discount      int       `json:"discount"`
	Condition     Condition `json:"condition"`
	Image         string    `json:"image"`
	Images        []string  `json:"images,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Seller        Seller    `json:"seller"`
	IsPremium     bool      `json:"isPremium"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Stock         int       `json:"stock"`
}
