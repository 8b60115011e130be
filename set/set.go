package set

import (
	"fmt"
	"strings"
)

// Set defines a set of comparable items.
//
// You should initialize it with Make or SliceToSet.
type Set[T comparable] map[T]struct{}

// Make creates a new, empty set with the given capacity hint.
func Make[T comparable](capacity int) Set[T] {
	return make(Set[T], capacity)
}

// SliceToSet creates a new set from the existing slice.
func SliceToSet[T comparable](slice []T) Set[T] {
	set := make(Set[T], len(slice))
	for _, item := range slice {
		set.Add(item)
	}
	return set
}

// Add adds an item to the set.
//
// Adding an item that's already in the set is a no-op.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Remove removes an item from the set.
//
// NOTE: Due to a go runtime bug[1],
// Remove works functionally but does not free the memory held by removed
// item(s).
//
// [1] https://github.com/golang/go/issues/20135
func (s Set[T]) Remove(item T) {
	delete(s, item)
}

// Contains returns true if item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// ToSlice converts the set into a slice.
//
// There's no guaranteed order of the slice to be returned.
func (s Set[T]) ToSlice() []T {
	slice := make([]T, 0, len(s))
	for item := range s {
		slice = append(slice, item)
	}
	return slice
}

// Equals returns true if this set equals to the other set.
func (s Set[T]) Equals(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{")

	first := true
	for item := range s {
		if first {
			first = false
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}

	sb.WriteString("}")
	return sb.String()
}
