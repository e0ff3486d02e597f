package cmd

import "pkgstage.run/internal/staging"

// Table provides a generic table interface for printers to consume.
type Table interface {
	// Headers returns the table's headers if any.
	Headers() []string
	// Rows returns a 2-dimensional slice of Fields representing the table
	// data.
	Rows() [][]Field
}

// Field is a single table cell, named after its column.
type Field struct {
	Name  string
	Value any
}

// NewStagingTable returns a Table preconfigured with the staging report
// columns.
func NewStagingTable() *StagingTable {
	return &StagingTable{}
}

type StagingTable struct {
	rows [][]Field
}

func (t *StagingTable) Headers() []string {
	return []string{"Package", "Namespace", "Destination"}
}

func (t *StagingTable) AddRow(desc staging.PackageDescriptor, destination string) {
	t.rows = append(t.rows, []Field{
		{Name: "Package", Value: desc.Name},
		{Name: "Namespace", Value: desc.Namespace},
		{Name: "Destination", Value: destination},
	})
}

func (t *StagingTable) Rows() [][]Field {
	return t.rows
}
