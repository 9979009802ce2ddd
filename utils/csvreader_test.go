package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `code,firstName,lastName
S1001,Ana,Lopez
S1002,Bruno,Diaz`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"code", "firstName", "lastName"},
		{"S1001", "Ana", "Lopez"},
		{"S1002", "Bruno", "Diaz"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
