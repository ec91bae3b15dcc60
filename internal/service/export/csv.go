package export

import (
	"bytes"
	"strings"
)

// The CSV layout is a wire contract with spreadsheet tooling already in the
// field: semicolon-delimited, UTF-8 BOM so Excel detects the encoding, no
// quoting. Values are flattened instead: line breaks become spaces and
// embedded semicolons become commas.

var csvCleaner = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", ";", ",")

// WriteCSV renders rows into the semicolon CSV layout.
func WriteCSV[T any](cols []Column[T], rows []T) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = csvCleaner.Replace(c.Header)
	}
	buf.WriteString(strings.Join(headers, ";"))
	buf.WriteString("\r\n")

	cells := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			cells[i] = csvCleaner.Replace(c.Value(row))
		}
		buf.WriteString(strings.Join(cells, ";"))
		buf.WriteString("\r\n")
	}

	return buf.Bytes()
}
