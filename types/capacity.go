package types

type Capacity struct {
	Name   string
	ID     string
	SKU    string
	Region string
	State  string
}

// ReservedCapacityMarker flags capacities that must never be offered as
// attachment candidates. Matching is a case-sensitive substring check.
const ReservedCapacityMarker = "Reserved"
