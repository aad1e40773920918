package excel

// RawRowData represents a row of raw cell text keyed by trimmed header name.
// A missing key and an empty string both mean "no value".
type RawRowData map[string]string

// RawTable is a sheet or CSV file before any typing is applied.
type RawTable struct {
	Headers []string     // Column headers, trimmed, in file order
	Rows    []RawRowData // Data rows in file order
}

// HasColumn reports whether the header row carried name.
func (t *RawTable) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// AddColumn appends a header and fills every row through value.
func (t *RawTable) AddColumn(name string, value func(RawRowData) string) {
	if !t.HasColumn(name) {
		t.Headers = append(t.Headers, name)
	}
	for _, row := range t.Rows {
		row[name] = value(row)
	}
}

// Records returns the rows as plain maps, for fingerprinting.
func (t *RawTable) Records() []map[string]string {
	out := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row
	}
	return out
}
