package main

import (
	"fmt"
	"math/bits"
)

// Priority returns the priority of item c: a-z are 1-26 and A-Z are
// 27-52. Anything else is 0.
func Priority(c byte) int {
	switch {
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 1
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// ItemSet is a set of item priorities. Bit p is set if priority p is
// in the set. Only priorities 1-52 are ever stored.
type ItemSet uint64

func ItemsOf(s string) ItemSet {
	var set ItemSet
	for i := 0; i < len(s); i++ {
		set.Add(Priority(s[i]))
	}
	return set
}

// Add inserts priority into s. Priorities outside 1-52, which
// never belong to a letter, are ignored.
func (s *ItemSet) Add(priority int) {
	if priority < 1 || priority > 52 {
		return
	}
	*s |= 1 << uint(priority)
}

func (s ItemSet) Has(priority int) bool {
	return s&(1<<uint(priority)) != 0
}

func (s ItemSet) Intersect(o ItemSet) ItemSet {
	return s & o
}

func (s ItemSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Sum returns the sum of the priorities in s, each counted once.
func (s ItemSet) Sum() int {
	sum := 0
	for s != 0 {
		p := bits.TrailingZeros64(uint64(s))
		sum += p
		s &^= 1 << uint(p)
	}
	return sum
}

// Single returns the only priority in s.
// It reports false if s does not have exactly one element.
func (s ItemSet) Single() (int, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(s)), true
}

// Rucksack holds the items of one input line, split in half.
type Rucksack struct {
	Left, Right string
}

func ParseRucksack(line string) (Rucksack, error) {
	if line == "" {
		return Rucksack{}, fmt.Errorf("empty rucksack")
	}
	if len(line)%2 != 0 {
		return Rucksack{}, fmt.Errorf("odd length %d; compartments must be the same size", len(line))
	}
	half := len(line) / 2
	return Rucksack{Left: line[:half], Right: line[half:]}, nil
}

// Items returns every item in either compartment.
func (r Rucksack) Items() ItemSet {
	return ItemsOf(r.Left) | ItemsOf(r.Right)
}

// Shared returns the items found in both compartments.
func (r Rucksack) Shared() ItemSet {
	return ItemsOf(r.Left).Intersect(ItemsOf(r.Right))
}

// Badge returns the priority of the only item carried by every rucksack
// in group.
func Badge(group []Rucksack) (int, error) {
	if len(group) == 0 {
		return 0, fmt.Errorf("empty group")
	}
	common := group[0].Items()
	for _, r := range group[1:] {
		common = common.Intersect(r.Items())
	}
	p, ok := common.Single()
	if !ok {
		return 0, fmt.Errorf("group has %d common items; want 1", common.Len())
	}
	return p, nil
}
