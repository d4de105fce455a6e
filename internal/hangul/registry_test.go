package hangul

import (
	"reflect"
	"testing"
)

func TestNewRegistry_FirstSeenOrder(t *testing.T) {
	categories := []Category{
		{Name: "a", Items: []string{"가", "나"}},
		{Name: "b", Items: []string{"나", "다", "가"}},
		{Name: "c", Items: []string{"라"}},
	}

	reg := NewRegistry(categories)

	want := []string{"가", "나", "다", "라"}
	if got := reg.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
	if reg.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(want))
	}
}

func TestDefault_NoDuplicates(t *testing.T) {
	reg := Default()

	seen := make(map[string]int)
	for _, item := range reg.Items() {
		seen[item]++
	}
	for item, n := range seen {
		if n > 1 {
			t.Errorf("item %q appears %d times in registry", item, n)
		}
	}
}

func TestDefault_DeduplicatesNumbers(t *testing.T) {
	reg := Default()

	// 사, 오, 구 and 이 appear both as syllable examples and as
	// Sino-Korean numbers; the registry must keep the first occurrence
	// only.
	total := 0
	for _, cat := range reg.Categories() {
		total += len(cat.Items)
	}
	if total != 130 {
		t.Fatalf("category totals changed: got %d items, want 130", total)
	}
	if reg.Len() != 126 {
		t.Errorf("Len() = %d, want 126 (130 literals minus 4 duplicate numbers)", reg.Len())
	}
}

func TestDefault_Deterministic(t *testing.T) {
	a := Default().Items()
	b := Default().Items()

	if !reflect.DeepEqual(a, b) {
		t.Error("registry order differs across builds")
	}

	// Spot-check the fixed concatenation order: vowels first, the unique
	// number 십 last.
	if a[0] != "ㅏ" {
		t.Errorf("first item = %q, want ㅏ", a[0])
	}
	if last := a[len(a)-1]; last != "십" {
		t.Errorf("last item = %q, want 십", last)
	}
}

func TestCategories_Counts(t *testing.T) {
	want := map[string]int{
		"basic vowels":      10,
		"complex vowels":    11,
		"basic consonants":  14,
		"double consonants": 5,
		"syllable examples": 70,
		"basic phrases":     10,
		"numbers (1-10)":    10,
	}

	for _, cat := range Categories() {
		n, ok := want[cat.Name]
		if !ok {
			t.Errorf("unexpected category %q", cat.Name)
			continue
		}
		if len(cat.Items) != n {
			t.Errorf("category %q has %d items, want %d", cat.Name, len(cat.Items), n)
		}
		delete(want, cat.Name)
	}
	for name := range want {
		t.Errorf("missing category %q", name)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	reg := Default()

	items := reg.Items()
	items[0] = "mutated"

	if reg.Items()[0] == "mutated" {
		t.Error("Items() exposes internal slice")
	}
}
