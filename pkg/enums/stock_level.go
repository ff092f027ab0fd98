package enums

import "fmt"

// StockLevel is the coarse availability label shown on product cards.
type StockLevel string

const (
	StockLevelInStock    StockLevel = "In Stock"
	StockLevelLowStock   StockLevel = "Low Stock"
	StockLevelOutOfStock StockLevel = "Out of Stock"
)

var validStockLevels = []StockLevel{
	StockLevelInStock,
	StockLevelLowStock,
	StockLevelOutOfStock,
}

// String implements fmt.Stringer.
func (s StockLevel) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockLevel.
func (s StockLevel) IsValid() bool {
	for _, candidate := range validStockLevels {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockLevel converts raw input into a StockLevel.
func ParseStockLevel(value string) (StockLevel, error) {
	for _, candidate := range validStockLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock level %q", value)
}
