package catalog_test

import (
	"testing"

	"github.com/leengari/csvtables/internal/catalog"
	"github.com/leengari/csvtables/internal/domain/errors"
	"github.com/leengari/csvtables/internal/testutil"
)

func TestInsertThenSearch(t *testing.T) {
	cat := catalog.New()
	table := testutil.CreateCitiesTable()

	cat.Insert(table)

	got, err := cat.Search(table.Name)
	testutil.AssertNoError(t, err, "search")
	if got != table {
		t.Errorf("expected the inserted table, got %v", got)
	}
}

func TestSearchUnknown(t *testing.T) {
	cat := catalog.New()
	cat.Insert(testutil.CreateCitiesTable())

	got, err := cat.Search("unknown")

	testutil.AssertErrorIs(t, err, errors.ErrNotFound, "unknown table")
	if got != nil {
		t.Errorf("expected nil table, got %v", got)
	}
}

func TestSearchIsExactMatch(t *testing.T) {
	cat := catalog.New()
	cat.Insert(testutil.CreateCitiesTable())

	_, err := cat.Search("cities.csv")

	testutil.AssertErrorIs(t, err, errors.ErrNotFound, "case mismatch")
}

func TestInsertLastWriteWins(t *testing.T) {
	cat := catalog.New()
	first := testutil.CreateTable("Cities.csv", "city")
	second := testutil.CreateCitiesTable()

	cat.Insert(first)
	cat.Insert(second)

	got, err := cat.Search("Cities.csv")
	testutil.AssertNoError(t, err, "search")
	if got != second {
		t.Error("expected the second insert to replace the first")
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 table, got %d", cat.Len())
	}
}

func TestNames(t *testing.T) {
	cat := catalog.New()
	cat.Insert(testutil.CreateTable("Countries.csv", "country"))
	cat.Insert(testutil.CreateTable("Cities.csv", "city"))

	testutil.AssertStrings(t, cat.Names(), []string{"Cities.csv", "Countries.csv"}, "names")
}
