package catalog

import "github.com/poiesic/hospitium/core"

// Demo returns the built-in fallback catalog used when no real dataset is
// available. Its records are intentionally tiny so demos work out of the box.
func Demo() *Catalog {
	records := []core.HospitalRecord{
		{Name: "Apollo Hospital", Address: "123 Main St", City: "Bangalore", StableIndex: 0},
		{Name: "Manipal Hospital", Address: "456 Park Ave", City: "Bangalore", StableIndex: 1},
		{Name: "Fortis Hospital", Address: "789 Lake Rd", City: "Delhi", StableIndex: 2},
	}
	return &Catalog{
		records: records,
		id:      core.IDFromContent("hospitium-demo-catalog-v1"),
		demo:    true,
	}
}
