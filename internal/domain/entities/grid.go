package entities

// GridLine is one labeled axis line of the structural grid.
//
// Two independent sets exist per project (X axis and Y axis). Labels are
// unique per axis; storage order is irrelevant, consumers sort by offset.

type GridLine struct {
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
}

// Level is a labeled floor elevation. Elevation defines the total order
// used for "next level above" queries.

type Level struct {
	Label     string  `json:"label"`
	Elevation float64 `json:"elevation"`
}
