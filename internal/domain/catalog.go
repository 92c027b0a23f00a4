package domain

// Department is a product category with the code used in product identifiers
type Department struct {
	Name string
	Code string
}

// ManufacturingSite identifies the plant encoded at the end of a product ID
type ManufacturingSite struct {
	Code    string
	Country string
}

// Catalog is the reference data the record generator draws from.
// Order matters: a department's position is encoded in its product IDs.
type Catalog struct {
	Departments []Department
	Sites       []ManufacturingSite
	Sizes       []string
	Colors      []string
}

// DefaultCatalog returns a fresh copy of the retail catalog
func DefaultCatalog() Catalog {
	return Catalog{
		Departments: []Department{
			{Name: "Men's Wear", Code: "MNWR"},
			{Name: "Women's Wear", Code: "WNWR"},
			{Name: "Children's Wear", Code: "CHWR"},
			{Name: "Footwear", Code: "FTWR"},
			{Name: "Accessories", Code: "ACCS"},
			{Name: "Sportswear", Code: "SPRT"},
			{Name: "Underwear", Code: "UNDW"},
			{Name: "Outerwear", Code: "OTWR"},
		},
		Sites: []ManufacturingSite{
			{Code: "US1", Country: "US"},
			{Code: "US2", Country: "US"},
			{Code: "US3", Country: "US"},
			{Code: "CA1", Country: "CA"},
			{Code: "CA2", Country: "CA"},
			{Code: "CA3", Country: "CA"},
			{Code: "MX1", Country: "MX"},
			{Code: "MX2", Country: "MX"},
			{Code: "MX3", Country: "MX"},
			{Code: "MX4", Country: "MX"},
		},
		Sizes:  []string{"XS", "S", "M", "L", "XL"},
		Colors: []string{"BK", "BL", "GR", "RD", "YL", "OR", "WT", "GY"},
	}
}

// DepartmentIndex returns the position of the department or -1
func (c Catalog) DepartmentIndex(name string) int {
	for i, d := range c.Departments {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the catalog lacks any table the generator needs
func (c Catalog) IsEmpty() bool {
	return len(c.Departments) == 0 || len(c.Sites) == 0 || len(c.Sizes) == 0 || len(c.Colors) == 0
}
