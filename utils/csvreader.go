package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads the whole input as CSV rows. Enrollment imports are small
// enough that streaming is not worth the bother.
func ParseCSV(r io.Reader) ([][]string, error) {
	return csv.NewReader(r).ReadAll()
}
