package facet

import "testing"

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	known := map[Category]string{
		Department: "Missions Department",
		Ministry:   "Care Ministry",
		DocType:    "Meeting Minutes",
		Status:     "Approved",
	}
	for cat, val := range known {
		if !v.Contains(cat, val) {
			t.Errorf("Contains(%s, %q) = false", cat, val)
		}
	}

	if v.Contains(Department, "Finance") {
		t.Error("Contains should be false for unknown department")
	}
	if v.Contains(Status, "approved") {
		t.Error("Contains is case-sensitive on raw values")
	}
}

func TestNewVocabulary_Override(t *testing.T) {
	v := NewVocabulary(map[Category][]string{
		Department: {"Ops", "Legal"},
	})

	if !v.Contains(Department, "Ops") {
		t.Error("override value missing")
	}
	if v.Contains(Department, "Missions Department") {
		t.Error("override should replace the category's defaults")
	}
	// other categories keep their defaults
	if !v.Contains(Status, "Draft") {
		t.Error("non-overridden category lost its defaults")
	}
}

func TestNewVocabulary_IgnoresUnknownCategories(t *testing.T) {
	v := NewVocabulary(map[Category][]string{
		Category("color"): {"red"},
	})
	if v.Contains(Category("color"), "red") {
		t.Error("unknown category should be ignored")
	}
}

func TestValues_PreservesOrder(t *testing.T) {
	v := NewVocabulary(map[Category][]string{
		DocType: {"Zeta", "Alpha", "Mida"},
	})
	got := v.Values(DocType)
	want := []string{"Zeta", "Alpha", "Mida"}
	if len(got) != len(want) {
		t.Fatalf("Values() len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValues_UnknownCategory(t *testing.T) {
	v := DefaultVocabulary()
	if vs := v.Values(Category("bogus")); vs != nil {
		t.Errorf("Values(bogus) = %v, want nil", vs)
	}
}

func TestNewVocabulary_CopiesInput(t *testing.T) {
	in := map[Category][]string{Department: {"A", "B"}}
	v := NewVocabulary(in)

	in[Department][0] = "mutated"

	if got := v.Values(Department)[0]; got != "A" {
		t.Errorf("input mutation leaked into vocabulary: %q", got)
	}
}
