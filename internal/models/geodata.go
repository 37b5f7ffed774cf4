package models

// Record is one input row: a location plus the requested measurement values.
// Values is aligned with the requested column list; missing or unparsable
// measurements are stored as NaN.
type Record struct {
	Index  int       `json:"index"`
	Lon    float64   `json:"lon"`
	Lat    float64   `json:"lat"`
	Values []float64 `json:"values"`
}

// Table holds the loaded geodata in input order.
type Table struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}
