package enums

import "fmt"

// SaleSource identifies which upstream system produced a canonical sale row.
type SaleSource string

const (
	SaleSourceOnlineCSV  SaleSource = "online_csv"
	SaleSourceInStoreAPI SaleSource = "in-store_api"
)

var validSaleSources = []SaleSource{
	SaleSourceOnlineCSV,
	SaleSourceInStoreAPI,
}

// String implements fmt.Stringer.
func (s SaleSource) String() string {
	return string(s)
}

// IsValid reports whether the sale source is recognized.
func (s SaleSource) IsValid() bool {
	for _, candidate := range validSaleSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSaleSource converts a raw string into a SaleSource.
func ParseSaleSource(value string) (SaleSource, error) {
	for _, candidate := range validSaleSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sale source %q", value)
}
