package output

import (
	"bufio"
	"io"
)

// Segmenter collects statements in emission order and renders them
// as a newline-terminated script.
type Segmenter struct {
	quoter Quoter
	body   []ToSql
}

func NewSegmenter(q Quoter) *Segmenter {
	return &Segmenter{quoter: q}
}

// WriteSql appends the output of ToSql() from each generator
// to the body in turn
func (s *Segmenter) WriteSql(generators ...ToSql) {
	s.body = append(s.body, generators...)
}

// AllStatements returns every collected statement, rendered.
func (s *Segmenter) AllStatements() []string {
	out := make([]string, len(s.body))
	for i, stmt := range s.body {
		out[i] = stmt.ToSql(s.quoter)
	}
	return out
}

// WriteTo renders the collected statements to w, one per line.
// Statements that render to multiple lines are written as-is.
func (s *Segmenter) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, stmt := range s.body {
		if _, err := bw.WriteString(stmt.ToSql(s.quoter)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
