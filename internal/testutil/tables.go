package testutil

import (
	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/domain/schema"
)

// CitiesColumns is the header of the Cities dataset
var CitiesColumns = []string{"city", "country", "latitude", "longitude", "temperature"}

// City builds a Cities row
func City(city, country, latitude, longitude, temperature string) data.Record {
	return data.NewRecord(CitiesColumns, []string{city, country, latitude, longitude, temperature})
}

// CreateCitiesTable creates a Cities table with sample data for testing
//
//	Rome      Italy   41.9  15.0
//	Oslo      Norway  59.9   2.3
//	Turin     Italy   45.0  10.0
//	Helsinki  Finland 60.0   4.2
//	Kiruna    Sweden  67.85 -1.4
func CreateCitiesTable() *schema.Table {
	return &schema.Table{
		Name:    "Cities.csv",
		Columns: CitiesColumns,
		Rows: []data.Record{
			City("Rome", "Italy", "41.9", "12.48", "15.0"),
			City("Oslo", "Norway", "59.9", "10.75", "2.3"),
			City("Turin", "Italy", "45.0", "7.67", "10.0"),
			City("Helsinki", "Finland", "60.0", "24.93", "4.2"),
			City("Kiruna", "Sweden", "67.85", "20.22", "-1.4"),
		},
	}
}

// CreateTable creates an empty table with the given name and columns
func CreateTable(name string, columns ...string) *schema.Table {
	return &schema.Table{
		Name:    name,
		Columns: columns,
		Rows:    []data.Record{},
	}
}
