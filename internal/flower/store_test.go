package flower

import (
	"reflect"
	"testing"
)

func testFlower(name string) Flower {
	return Flower{
		Name:        name,
		Color:       name + " color",
		Species:     name + " species",
		Habitat:     name + " habitat",
		Description: name + " description",
	}
}

// TestNewStoreCopiesSeed tests that mutating the seed slice does not leak into the store
func TestNewStoreCopiesSeed(t *testing.T) {
	seed := []Flower{testFlower("A"), testFlower("B")}
	store := NewStore(seed)

	seed[0].Name = "mutated"

	got, ok := store.At(0)
	if !ok {
		t.Fatal("At(0) should exist")
	}
	if got.Name != "A" {
		t.Errorf("At(0).Name = %q, want %q", got.Name, "A")
	}
}

// TestStoreRecordsReturnsCopy tests that callers cannot mutate the store through Records
func TestStoreRecordsReturnsCopy(t *testing.T) {
	store := NewStore([]Flower{testFlower("A")})

	records := store.Records()
	records[0].Name = "mutated"

	if got, _ := store.At(0); got.Name != "A" {
		t.Errorf("store mutated through Records(): got %q", got.Name)
	}
}

// TestStoreDeleteAt tests deletion in and out of range
func TestStoreDeleteAt(t *testing.T) {
	a, b, c := testFlower("A"), testFlower("B"), testFlower("C")

	tests := []struct {
		name  string
		index int
		want  []Flower
	}{
		{"Delete first", 0, []Flower{b, c}},
		{"Delete middle", 1, []Flower{a, c}},
		{"Delete last", 2, []Flower{a, b}},
		{"Negative index is a no-op", -1, []Flower{a, b, c}},
		{"Index past end is a no-op", 3, []Flower{a, b, c}},
		{"Far out of range is a no-op", 100, []Flower{a, b, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore([]Flower{a, b, c})
			store.DeleteAt(tt.index)

			if got := store.Records(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeleteAt(%d) = %v, want %v", tt.index, names(got), names(tt.want))
			}
		})
	}
}

// TestStoreDeleteAtEmpty tests that deleting from an empty store does nothing
func TestStoreDeleteAtEmpty(t *testing.T) {
	store := NewStore(nil)
	store.DeleteAt(0)

	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

// TestStoreAppendOrUpdate tests append and overwrite semantics
func TestStoreAppendOrUpdate(t *testing.T) {
	a, b, c := testFlower("A"), testFlower("B"), testFlower("C")
	x := testFlower("X")

	tests := []struct {
		name   string
		target EditTarget
		want   []Flower
	}{
		{"No target appends", NoTarget, []Flower{a, b, c, x}},
		{"Target 0 overwrites first", TargetAt(0), []Flower{x, b, c}},
		{"Target 2 overwrites last", TargetAt(2), []Flower{a, b, x}},
		{"Target past end changes nothing", TargetAt(3), []Flower{a, b, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore([]Flower{a, b, c})
			store.AppendOrUpdate(x, tt.target)

			if got := store.Records(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AppendOrUpdate(X, %d) = %v, want %v", tt.target, names(got), names(tt.want))
			}
		})
	}
}

// TestStoreAppendOrUpdateLength tests the length guarantees of both modes
func TestStoreAppendOrUpdateLength(t *testing.T) {
	store := NewStore([]Flower{testFlower("A"), testFlower("B")})

	store.AppendOrUpdate(testFlower("C"), NoTarget)
	if store.Len() != 3 {
		t.Errorf("after append Len() = %d, want 3", store.Len())
	}

	store.AppendOrUpdate(testFlower("D"), TargetAt(1))
	if store.Len() != 3 {
		t.Errorf("after update Len() = %d, want 3", store.Len())
	}
}

// TestStoreDuplicatesAllowed tests that the store does not enforce distinct records
func TestStoreDuplicatesAllowed(t *testing.T) {
	rose := testFlower("Rose")
	store := NewStore([]Flower{rose})
	store.AppendOrUpdate(rose, NoTarget)

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	first, _ := store.At(0)
	second, _ := store.At(1)
	if first != second {
		t.Errorf("records should be identical duplicates: %v vs %v", first, second)
	}
}

// TestStoreDeleteThenUpdateScenario walks the delete, add, edit sequence on [A, B, C]
func TestStoreDeleteThenUpdateScenario(t *testing.T) {
	a, b, c := testFlower("A"), testFlower("B"), testFlower("C")
	n := Flower{Name: "n", Color: "c", Species: "s", Habitat: "h", Description: "d"}

	store := NewStore([]Flower{a, b, c})

	store.DeleteAt(1)
	if got, want := store.Records(), []Flower{a, c}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after delete = %v, want %v", names(got), names(want))
	}

	store.AppendOrUpdate(n, NoTarget)
	if got, want := store.Records(), []Flower{a, c, n}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after append = %v, want %v", names(got), names(want))
	}

	store.AppendOrUpdate(n, TargetAt(0))
	if got, want := store.Records(), []Flower{n, c, n}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after update = %v, want %v", names(got), names(want))
	}
}

// TestStoreAt tests bounds handling of At
func TestStoreAt(t *testing.T) {
	store := NewStore([]Flower{testFlower("A")})

	if _, ok := store.At(-1); ok {
		t.Error("At(-1) should not exist")
	}
	if _, ok := store.At(1); ok {
		t.Error("At(1) should not exist")
	}
	if got, ok := store.At(0); !ok || got.Name != "A" {
		t.Errorf("At(0) = %v, %v; want A, true", got, ok)
	}
}

// TestEditTarget tests the target helpers
func TestEditTarget(t *testing.T) {
	if NoTarget.IsSet() {
		t.Error("NoTarget.IsSet() should be false")
	}
	if !TargetAt(0).IsSet() {
		t.Error("TargetAt(0).IsSet() should be true")
	}
	if TargetAt(-5) != NoTarget {
		t.Errorf("TargetAt(-5) = %d, want NoTarget", TargetAt(-5))
	}
	if TargetAt(4).Index() != 4 {
		t.Errorf("TargetAt(4).Index() = %d, want 4", TargetAt(4).Index())
	}
}

func names(records []Flower) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}
