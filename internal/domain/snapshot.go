package domain

// Snapshot is an uploaded inventory file as read from disk: a header and untyped rows.
type Snapshot struct {
	Source string     `json:"source"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Preview returns at most n leading data rows.
func (s Snapshot) Preview(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	return s.Rows[:n]
}

// ColumnIndex maps every header name to its position. When a name repeats
// the first occurrence wins.
func (s Snapshot) ColumnIndex() map[string]int {
	index := make(map[string]int, len(s.Header))
	for i, name := range s.Header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return index
}
