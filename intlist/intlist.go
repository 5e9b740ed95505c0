// Package intlist implements IntList, a growable list of non-negative
// integers stored in a contiguous buffer whose capacity is tracked separately
// from the number of elements present.
package intlist

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	// Nil is returned by Search, SearchFrom and Car when there is no value.
	Nil = -1

	DefaultCapacity = 8
	MaxCapacity     = math.MaxInt32
	GrowthFactor    = 2

	// minGrowCapacity is what a zero capacity list grows to, since doubling
	// zero would never make room.
	minGrowCapacity = 1
)

// ErrInvalidArgument is returned when constructing a list with a negative
// capacity or one above MaxCapacity.
var ErrInvalidArgument = errors.New("invalid argument")

// IntList is not safe for concurrent use.
type IntList struct {
	list []int // len(list) is the capacity
	size int   // number of elements in list
}

// New returns an empty list with DefaultCapacity.
func New() *IntList {
	return &IntList{list: make([]int, DefaultCapacity)}
}

// NewWithCapacity returns an empty list with exactly capacity slots. A
// capacity of zero is allowed, the list grows on the first Add.
func NewWithCapacity(capacity int) (*IntList, error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"capacity must be >= 0, got %d", capacity)
	}
	if capacity > MaxCapacity {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"capacity must be <= %d, got %d", MaxCapacity, capacity)
	}

	return &IntList{list: make([]int, capacity)}, nil
}

// FromValues builds a list with DefaultCapacity and adds every value to it.
// Negative values are dropped the same way Add drops them.
func FromValues(values ...int) *IntList {
	l := New()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends n to the end of the list, growing it first if it is full.
// Negative values are rejected with false. The capacity check runs before
// the sign check, so rejecting a value can still grow a full list.
func (l *IntList) Add(n int) bool {
	if l.size == len(l.list) {
		l.Grow()
	}
	if n < 0 {
		return false
	}
	l.list[l.size] = n
	l.size++
	return true
}

// Grow replaces the buffer with one GrowthFactor times larger and copies
// every slot, present or stale, into its prefix.
func (l *IntList) Grow() {
	capacity := len(l.list) * GrowthFactor
	if capacity == 0 {
		capacity = minGrowCapacity
	}

	grown := make([]int, capacity)
	copy(grown, l.list)
	l.list = grown
}

func (l *IntList) Size() int {
	return l.size
}

func (l *IntList) Capacity() int {
	return len(l.list)
}

func (l *IntList) IsEmpty() bool {
	return l.size == 0
}

// Clear sets the size to zero. The buffer is kept as is.
func (l *IntList) Clear() {
	l.size = 0
}

// String renders the list as "(e0 e1 ... ek)", or "()" when empty.
func (l *IntList) String() string {
	if l.size == 0 {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(l.list[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Values returns a copy of the elements present in the list.
func (l *IntList) Values() []int {
	values := make([]int, l.size)
	copy(values, l.list[:l.size])
	return values
}

// Search returns the index of the first x in the list, or Nil.
func (l *IntList) Search(x int) int {
	if l.size == 0 {
		return Nil
	}
	return l.SearchFrom(x, 0)
}

// SearchFrom returns the first index j >= i holding x, or Nil. The scan runs
// to the end of the buffer rather than to Size, so slots left behind by
// Clear, Delete or Grow are visible to it. Callers enumerating occurrences
// should stop once the returned index reaches Size.
func (l *IntList) SearchFrom(x, i int) int {
	if i < 0 || i > len(l.list) {
		return Nil
	}
	for ; i < len(l.list); i++ {
		if l.list[i] == x {
			return i
		}
	}
	return Nil
}

// Car returns the first element, or Nil for an empty list.
func (l *IntList) Car() int {
	if l.size == 0 {
		return Nil
	}
	return l.list[0]
}

// Cdr returns a new list holding every element but the first. Its capacity
// is one less than this list's, floored at zero. The returned list never
// shares storage with l.
func (l *IntList) Cdr() *IntList {
	capacity := len(l.list) - 1
	if capacity < 0 {
		capacity = 0
	}

	rest := &IntList{list: make([]int, capacity)}
	for i := 1; i < l.size; i++ {
		rest.Add(l.list[i])
	}
	return rest
}

// Equal reports whether both lists have the same size and the same values in
// the same order. other is only read.
func (l *IntList) Equal(other *IntList) bool {
	if other == nil {
		return false
	}
	if l.size != other.size {
		return false
	}

	c := other.cursor()
	for i := 0; i < l.size; i++ {
		v, ok := c.next()
		if !ok || l.list[i] != v {
			return false
		}
	}
	return true
}

// Delete removes the first occurrence of n found by SearchFrom(n, 0) and
// shifts the rest of the buffer one slot left, writing 0 into the last slot.
// The size shrinks only when the match was one of the present elements; a
// match in the stale region still compacts the buffer and reports true.
func (l *IntList) Delete(n int) bool {
	i := l.SearchFrom(n, 0)
	if i == Nil {
		return false
	}

	copy(l.list[i:], l.list[i+1:])
	l.list[len(l.list)-1] = 0

	if i < l.size {
		l.size--
	}
	return true
}

type jsonList struct {
	Size     int   `json:"size"`
	Capacity int   `json:"capacity"`
	Values   []int `json:"values"`
}

func (l *IntList) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonList{
		Size:     l.size,
		Capacity: len(l.list),
		Values:   l.Values(),
	})
}
