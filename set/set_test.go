package set_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/envvault/envvault.go/set"
)

func TestSliceToSet(t *testing.T) {
	tests := []struct {
		name  string
		slice []string
		len   int
	}{
		{
			name:  "empty",
			slice: nil,
			len:   0,
		},
		{
			name:  "unique",
			slice: []string{"a", "b", "c"},
			len:   3,
		},
		{
			name:  "duplicates",
			slice: []string{"a", "b", "a"},
			len:   2,
		},
	}
	for _, tt := range tests {
		tt := tt // capture range variable for parallel testing
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := set.SliceToSet(tt.slice)
			if s.Len() != tt.len {
				t.Errorf("expected len %d, actual: %d", tt.len, s.Len())
			}
			for _, item := range tt.slice {
				if !s.Contains(item) {
					t.Errorf("expected set to contain %q", item)
				}
			}
		})
	}
}

func TestAddRemoveContains(t *testing.T) {
	s := set.Make[string](0)
	if s.Contains("foo") {
		t.Error("empty set should not contain foo")
	}
	s.Add("foo")
	if !s.Contains("foo") {
		t.Error("set should contain foo after Add")
	}
	// Re-adding is a no-op.
	s.Add("foo")
	if s.Len() != 1 {
		t.Errorf("expected len 1, actual: %d", s.Len())
	}
	s.Remove("foo")
	if s.Contains("foo") {
		t.Error("set should not contain foo after Remove")
	}
}

func TestToSlice(t *testing.T) {
	s := set.SliceToSet([]int{3, 1, 2})
	slice := s.ToSlice()
	sort.Ints(slice)
	if diff := cmp.Diff([]int{1, 2, 3}, slice); diff != "" {
		t.Errorf("slice mismatch (-want +got):\n%s", diff)
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{
			name:     "equal",
			a:        []string{"a", "b"},
			b:        []string{"b", "a"},
			expected: true,
		},
		{
			name:     "different-size",
			a:        []string{"a"},
			b:        []string{"a", "b"},
			expected: false,
		},
		{
			name:     "same-size-different-items",
			a:        []string{"a", "c"},
			b:        []string{"a", "b"},
			expected: false,
		},
	}
	for _, tt := range tests {
		tt := tt // capture range variable for parallel testing
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := set.SliceToSet(tt.a)
			b := set.SliceToSet(tt.b)
			if got := a.Equals(b); got != tt.expected {
				t.Errorf("Equals expected %v, actual: %v", tt.expected, got)
			}
		})
	}
}
