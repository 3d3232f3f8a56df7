// Package filter implements the list filtering and aggregation contract shared
// by every dashboard list view (user directory, alert feed, patient roster,
// bookings). Filtering is pure and stable: the output preserves the input
// collection's relative order.
package filter

import "strings"

// All is the sentinel value meaning an equality clause matches everything.
// The empty string is treated the same way so unset query params behave
// like an untouched UI selector.
const All = "all"

// Clause is one equality dimension: the item's field (via Get) must equal
// Want case-insensitively, unless Want is the All sentinel.
type Clause[T any] struct {
	Get  func(T) string
	Want string
}

// Criteria describes one filtered view over a collection. An item is included
// when the search text matches ANY search field and EVERY equality clause holds.
type Criteria[T any] struct {
	Search       string
	SearchFields []func(T) string
	Equals       []Clause[T]
}

// NewCriteria starts a criteria with free-text search over the given fields.
func NewCriteria[T any](search string, fields ...func(T) string) Criteria[T] {
	return Criteria[T]{Search: search, SearchFields: fields}
}

// Where adds an equality clause and returns the extended criteria.
func (c Criteria[T]) Where(get func(T) string, want string) Criteria[T] {
	c.Equals = append(c.Equals, Clause[T]{Get: get, Want: want})
	return c
}

// Match reports whether a single item satisfies the criteria.
func (c Criteria[T]) Match(item T) bool {
	if !c.matchSearch(item) {
		return false
	}
	for _, eq := range c.Equals {
		if eq.Want == "" || eq.Want == All {
			continue
		}
		if !strings.EqualFold(eq.Get(item), eq.Want) {
			return false
		}
	}
	return true
}

func (c Criteria[T]) matchSearch(item T) bool {
	if c.Search == "" {
		return true
	}
	needle := strings.ToLower(c.Search)
	for _, field := range c.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

// Apply returns the items matching the criteria, in their original order.
func Apply[T any](items []T, c Criteria[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of items satisfying pred. Dashboard statistics are
// predicate counts over the unfiltered base collection; callers that want
// post-filter counts pass the filtered slice explicitly.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// CountBy groups items by key and returns per-key counts.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}
