package niceplots

import (
	"fmt"
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// Sides

// Side identifies one border of an Axes.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

// AllSides lists the four sides in their canonical order.
var AllSides = []Side{Top, Bottom, Left, Right}

func (s Side) String() string {
	if s < Top || s > Right {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// ParseSide converts "top", "bottom", "left" or "right" to a Side.
func ParseSide(s string) (Side, error) {
	for i, name := range sideNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("niceplots: unknown side %q", s)
}

// -------------------------------------------------------------------------
// Side Set

// SideSet is a set of sides.
type SideSet map[Side]struct{}

func NewSideSet(init ...Side) SideSet {
	s := make(SideSet, len(init))
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// ParseSideSet parses side names like "top", "Right".
func ParseSideSet(names []string) (SideSet, error) {
	s := NewSideSet()
	for _, n := range names {
		side, err := ParseSide(n)
		if err != nil {
			return nil, err
		}
		s.Add(side)
	}
	return s, nil
}

func (s SideSet) String() string {
	var t = "[ "
	for _, x := range s.Elements() {
		t += x.String() + " "
	}
	return t + "]"
}

// Add adds x to s.
func (s SideSet) Add(x Side) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s SideSet) Del(x Side) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s SideSet) Contains(x Side) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s SideSet) Join(t SideSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Remove removes all elements of t from s. (Set difference)
func (s SideSet) Remove(t SideSet) {
	for x := range t {
		delete(s, x)
	}
}

// Complement returns all sides not in s.
func (s SideSet) Complement() SideSet {
	c := NewSideSet(AllSides...)
	c.Remove(s)
	return c
}

// Equals compares s to a slice t.
func (s SideSet) Equals(t []Side) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

func (s SideSet) Copy() SideSet {
	c := make(SideSet, len(s))
	c.Join(s)
	return c
}

func (s SideSet) Elements() []Side {
	elems := make([]Side, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })
	return elems
}
