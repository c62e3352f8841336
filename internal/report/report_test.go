package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leengari/csvtables/internal/catalog"
	"github.com/leengari/csvtables/internal/domain/errors"
	"github.com/leengari/csvtables/internal/domain/schema"
	"github.com/leengari/csvtables/internal/engine"
	"github.com/leengari/csvtables/internal/storage"
	"github.com/leengari/csvtables/internal/testutil"
)

func setup(t *testing.T) (*engine.Engine, *schema.Table) {
	t.Helper()
	cat := catalog.New()
	cat.Insert(testutil.CreateCitiesTable())
	eng := engine.New(cat)
	cities, err := eng.Table("Cities.csv")
	testutil.AssertNoError(t, err, "lookup cities")
	return eng, cities
}

func TestWriteDefaultReport(t *testing.T) {
	eng, cities := setup(t)
	var buf bytes.Buffer

	err := NewWriter(&buf, eng, cities).Write(DefaultOptions())
	testutil.AssertNoError(t, err, "write")

	expected := `The average temperature of all the cities:
6.0200

All the cities in Italy:
['Rome', 'Turin']

The average temperature of all the cities in Italy :
12.5000

The max temperature of all the cities in Italy :
15.0000

The min temperature of all the cities in Italy :
10.0000

{'city': 'Helsinki', 'country': 'Finland', 'latitude': '60.0', 'longitude': '24.93', 'temperature': '4.2'}
{'city': 'Kiruna', 'country': 'Sweden', 'latitude': '67.85', 'longitude': '20.22', 'temperature': '-1.4'}

Temperature in Italy
Average: 12.5
Minimum: 10.0
Maximum: 15.0

Temperature in Sweden
Average: -1.4
Minimum: -1.4
Maximum: -1.4
`
	if got := buf.String(); got != expected {
		t.Errorf("unexpected report:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestSummariesUseFilteredRows(t *testing.T) {
	eng, cities := setup(t)

	summaries, err := Summaries(eng, cities, ColumnTemperature, []string{"Italy", "Norway", "Atlantis"})
	testutil.AssertNoError(t, err, "summaries")

	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	italy, norway, atlantis := summaries[0], summaries[1], summaries[2]

	testutil.AssertFloat(t, italy.Average, 12.5, "italy average")
	testutil.AssertFloat(t, italy.Minimum, 10.0, "italy minimum")
	testutil.AssertFloat(t, italy.Maximum, 15.0, "italy maximum")
	testutil.AssertFloat(t, norway.Average, 2.3, "norway average")
	if norway.Count != 1 || atlantis.Count != 0 {
		t.Errorf("unexpected counts: norway=%d atlantis=%d", norway.Count, atlantis.Count)
	}
}

func TestWriteSummariesEmptyCountry(t *testing.T) {
	eng, cities := setup(t)
	var buf bytes.Buffer

	NewWriter(&buf, eng, cities).WriteSummaries([]Summary{{Country: "Atlantis"}})

	if got := buf.String(); got != "\nTemperature in Atlantis\nno cities found\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestWriteFocusWithoutCities(t *testing.T) {
	eng, cities := setup(t)
	var buf bytes.Buffer

	opts := DefaultOptions()
	opts.FocusCountry = "Atlantis"
	err := NewWriter(&buf, eng, cities).Write(opts)

	testutil.AssertNoError(t, err, "write")
	if !strings.Contains(buf.String(), "All the cities in Atlantis:\n[]\n\nno cities found in Atlantis") {
		t.Errorf("expected empty focus section, got:\n%s", buf.String())
	}
}

func TestWriteReportParseError(t *testing.T) {
	cat := catalog.New()
	table := testutil.CreateCitiesTable()
	table.Rows = append(table.Rows, testutil.City("Nowhere", "Italy", "0", "0", "n/a"))
	cat.Insert(table)
	eng := engine.New(cat)

	err := NewWriter(&bytes.Buffer{}, eng, table).Write(DefaultOptions())

	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteReportNonFiniteTemperature(t *testing.T) {
	for _, raw := range []string{"inf", "NaN"} {
		t.Run(raw, func(t *testing.T) {
			csv := "city,country,latitude,longitude,temperature\n" +
				"Rome,Italy,41.9,12.48," + raw + "\n" +
				"Turin,Italy,45.0,7.67,10.0\n"
			table, err := storage.ParseTable("Cities.csv", strings.NewReader(csv))
			testutil.AssertNoError(t, err, "parse")
			cat := catalog.New()
			cat.Insert(table)
			eng := engine.New(cat)

			err = NewWriter(&bytes.Buffer{}, eng, table).Write(DefaultOptions())
			testutil.AssertErrorIs(t, err, errors.ErrParse, raw)

			_, err = Summaries(eng, table, ColumnTemperature, []string{"Italy"})
			testutil.AssertErrorIs(t, err, errors.ErrParse, raw+" summaries")
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		10:      "10.0",
		12.5:    "12.5",
		-1.4:    "-1.4",
		7.1234:  "7.1234",
		0:       "0.0",
		1000000: "1000000.0",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestFormatList(t *testing.T) {
	if got := FormatList(nil); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
	if got := FormatList([]string{"Rome", "Turin"}); got != "['Rome', 'Turin']" {
		t.Errorf("unexpected list: %s", got)
	}
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.png")
	summaries := []Summary{
		{Country: "Italy", Count: 2, Average: 12.5, Minimum: 10, Maximum: 15},
		{Country: "Atlantis"},
		{Country: "Sweden", Count: 1, Average: -1.4, Minimum: -1.4, Maximum: -1.4},
	}

	testutil.AssertNoError(t, Plot(summaries, path), "plot")

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err, "stat plot")
	if info.Size() == 0 {
		t.Error("expected a non-empty image")
	}
}

func TestPlotNothing(t *testing.T) {
	err := Plot([]Summary{{Country: "Atlantis"}}, filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Error("expected error when no country has cities")
	}
}
