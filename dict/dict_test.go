package dict

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromPairs(t *testing.T) {
	d := FromPairs([]Pair[string, int]{
		{"a", 1},
		{"b", 2},
		{"c", 3},
	})
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("FromPairs mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPairs_LastWins(t *testing.T) {
	d := FromPairs([]Pair[string, int]{
		{"x", 10},
		{"x", 20},
	})
	if len(d) != 1 || d["x"] != 20 {
		t.Errorf("got %v, want x=20 only", d)
	}
}

func TestFromPairs_PositionTable(t *testing.T) {
	// Mirrors building {node: pos} from an ordering.
	ordering := []string{"A", "B", "C"}
	pairs := make([]Pair[string, int], len(ordering))
	for pos, node := range ordering {
		pairs[pos] = Pair[string, int]{Key: node, Value: pos}
	}
	position := FromPairs(pairs)
	if position["A"] != 0 || position["B"] != 1 || position["C"] != 2 {
		t.Errorf("position table = %v", position)
	}
}

func TestZip(t *testing.T) {
	d := Zip([]string{"x", "y", "z"}, []int{10, 20, 30})
	want := map[string]int{"x": 10, "y": 20, "z": 30}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Zip mismatch (-want +got):\n%s", diff)
	}
}

func TestZip_UnequalLengths(t *testing.T) {
	d := Zip([]string{"a", "b", "c"}, []int{1, 2})
	if len(d) != 2 || ContainsKey(d, "c") {
		t.Errorf("got %v, want a and b only", d)
	}

	d = Zip([]string{"a"}, []int{1, 2, 3})
	if len(d) != 1 || d["a"] != 1 {
		t.Errorf("got %v, want a=1 only", d)
	}
}

func TestClone_Independent(t *testing.T) {
	original := map[string]int{"key": 100}
	cloned := Clone(original)

	cloned["key"] = 999
	if original["key"] != 100 {
		t.Error("mutating the clone changed the original")
	}

	original["other"] = 1
	if ContainsKey(cloned, "other") {
		t.Error("mutating the original changed the clone")
	}
}

func TestContainsKey(t *testing.T) {
	d := map[string]int{"a": 1}
	if !ContainsKey(d, "a") {
		t.Error(`ContainsKey("a") should be true`)
	}
	if ContainsKey(d, "b") {
		t.Error(`ContainsKey("b") should be false`)
	}
}

func TestKeysValuesEntries(t *testing.T) {
	d := map[string]int{"a": 1, "b": 2}

	keys := Keys(d)
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	values := Values(d)
	sort.Ints(values)
	if diff := cmp.Diff([]int{1, 2}, values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	entries := Entries(d)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	want := []Pair[string, int]{{"a", 1}, {"b", 2}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertRemove(t *testing.T) {
	d := map[string]int{}
	Insert(d, "k", 1)
	if d["k"] != 1 {
		t.Error("Insert did not store")
	}

	v, ok := RemoveKey(d, "k")
	if !ok || v != 1 {
		t.Errorf("RemoveKey = %d, %v", v, ok)
	}
	if _, ok := RemoveKey(d, "k"); ok {
		t.Error("RemoveKey on absent key should report false")
	}
}
