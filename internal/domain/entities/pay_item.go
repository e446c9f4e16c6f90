package entities

// PayItem is one entry of the DPWH pay-item catalog: a read-only lookup the
// aggregation engine treats as an opaque table.

type PayItem struct {
	ItemNumber  string `json:"item_number"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Trade       Trade  `json:"trade"`
}
