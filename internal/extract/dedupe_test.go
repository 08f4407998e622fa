package extract

import (
	"reflect"
	"testing"
	"time"

	"github.com/obitwatch/obitwatch/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDedupe_LastWriteWins(t *testing.T) {
	// The terser same-day mention comes first, the fuller monthly-digest
	// mention later; the later one must survive.
	age := 54
	first := model.Entry{Name: "Jane Doe", Date: date(2015, time.March, 5), Info: "CEO"}
	second := model.Entry{Name: "Jane Doe", Age: &age, Date: date(2015, time.March, 5), Info: "Example Corp CEO", Cause: "cancer"}

	merged := Dedupe([]model.Entry{first, second})

	if len(merged) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(merged))
	}
	if merged[0].Info != "Example Corp CEO" || merged[0].Cause != "cancer" {
		t.Errorf("expected the later mention to win, got %+v", merged[0])
	}
}

func TestDedupe_DistinctKeysKept(t *testing.T) {
	// Same name on different days is two records, not a duplicate
	entries := []model.Entry{
		{Name: "Jane Doe", Date: date(2015, time.March, 5), Info: "CEO"},
		{Name: "Jane Doe", Date: date(2015, time.March, 6), Info: "CEO"},
		{Name: "John Roe", Date: date(2015, time.March, 5), Info: "Writer"},
	}

	merged := Dedupe(entries)
	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
}

func TestDedupe_DateDescending(t *testing.T) {
	entries := []model.Entry{
		{Name: "A", Date: date(2015, time.March, 5), Info: "x"},
		{Name: "B", Date: date(2015, time.March, 9), Info: "x"},
		{Name: "C", Date: date(2015, time.January, 30), Info: "x"},
	}

	merged := Dedupe(entries)

	names := []string{merged[0].Name, merged[1].Name, merged[2].Name}
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected order %v, got %v", want, names)
	}
}

func TestDedupe_UndatedSortLast(t *testing.T) {
	entries := []model.Entry{
		{Name: "Undated One", Info: "x"},
		{Name: "Dated", Date: date(2015, time.March, 5), Info: "x"},
		{Name: "Undated Two", Info: "x"},
	}

	merged := Dedupe(entries)

	if merged[0].Name != "Dated" {
		t.Errorf("expected dated entry first, got %q", merged[0].Name)
	}
	// Undated entries keep their input order among themselves
	if merged[1].Name != "Undated One" || merged[2].Name != "Undated Two" {
		t.Errorf("expected stable placement of undated entries, got %q, %q", merged[1].Name, merged[2].Name)
	}
}

func TestDedupe_Deterministic(t *testing.T) {
	age := 71
	entries := []model.Entry{
		{Name: "A", Date: date(2015, time.March, 5), Info: "x"},
		{Name: "B", Info: "y"},
		{Name: "A", Date: date(2015, time.March, 5), Age: &age, Info: "x2"},
		{Name: "C", Date: date(2015, time.February, 1), Info: "z"},
		{Name: "D", Info: "w"},
	}

	first := Dedupe(entries)
	second := Dedupe(entries)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results across runs:\n%v\n%v", first, second)
	}

	// Dedupe of its own output is a fixed point
	again := Dedupe(first)
	if !reflect.DeepEqual(first, again) {
		t.Errorf("expected idempotent merge:\n%v\n%v", first, again)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if merged := Dedupe(nil); len(merged) != 0 {
		t.Errorf("expected empty result, got %v", merged)
	}
}
