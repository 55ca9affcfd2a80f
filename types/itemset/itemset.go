package itemset

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// An ItemSet is a canonical representation of a set of items. The items
// are kept sorted and deduplicated so that two sets with the same members
// always produce the same Label. Labels are how sets are keyed in maps
// throughout the miner.
type ItemSet struct {
	items []int32
}

func NewItemSet(items ...int32) *ItemSet {
	s := make([]int32, len(items))
	copy(s, items)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	deduped := s[:0]
	for i, item := range s {
		if i > 0 && item == s[i-1] {
			continue
		}
		deduped = append(deduped, item)
	}
	return &ItemSet{items: deduped}
}

// FromSet converts a SortedSet of types.Int32 into an ItemSet. The set is
// already ordered so no re-sort happens.
func FromSet(s *set.SortedSet) *ItemSet {
	items := make([]int32, 0, s.Size())
	for i, next := s.Items()(); next != nil; i, next = next() {
		items = append(items, int32(i.(types.Int32)))
	}
	return &ItemSet{items: items}
}

func (is *ItemSet) Size() int {
	return len(is.items)
}

func (is *ItemSet) Items() []int32 {
	return is.items
}

func (is *ItemSet) Has(item int32) bool {
	i := sort.Search(len(is.items), func(i int) bool {
		return is.items[i] >= item
	})
	return i < len(is.items) && is.items[i] == item
}

// SupportedBy reports whether the transaction contains every item of the
// set. Cost is O(|is| log |tx|).
func (is *ItemSet) SupportedBy(tx *set.SortedSet) bool {
	for _, item := range is.items {
		if !tx.Has(types.Int32(item)) {
			return false
		}
	}
	return true
}

// Union merges two canonical sets into a new canonical set.
func (is *ItemSet) Union(o *ItemSet) *ItemSet {
	items := make([]int32, 0, len(is.items)+len(o.items))
	i, j := 0, 0
	for i < len(is.items) && j < len(o.items) {
		if is.items[i] < o.items[j] {
			items = append(items, is.items[i])
			i++
		} else if is.items[i] > o.items[j] {
			items = append(items, o.items[j])
			j++
		} else {
			items = append(items, is.items[i])
			i++
			j++
		}
	}
	items = append(items, is.items[i:]...)
	items = append(items, o.items[j:]...)
	return &ItemSet{items: items}
}

// SharesPrefix reports whether both sets agree on their first n items.
// This is the prefix test the level-wise join uses on sorted itemsets.
func (is *ItemSet) SharesPrefix(o *ItemSet, n int) bool {
	if len(is.items) < n || len(o.items) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if is.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Subsets gives every subset obtained by removing exactly one item.
func (is *ItemSet) Subsets() []*ItemSet {
	subs := make([]*ItemSet, 0, len(is.items))
	for i := range is.items {
		items := make([]int32, 0, len(is.items)-1)
		items = append(items, is.items[:i]...)
		items = append(items, is.items[i+1:]...)
		subs = append(subs, &ItemSet{items: items})
	}
	return subs
}

// EachProperSubset visits every non-empty proper subset of the set along
// with its complement. Subsets come out in ascending mask order which
// makes the visit order stable run to run.
func (is *ItemSet) EachProperSubset(do func(sub, rest *ItemSet) error) error {
	n := uint(len(is.items))
	for mask := uint64(1); mask < (uint64(1)<<n)-1; mask++ {
		sub := make([]int32, 0, len(is.items))
		rest := make([]int32, 0, len(is.items))
		for i, item := range is.items {
			if mask&(uint64(1)<<uint(i)) != 0 {
				sub = append(sub, item)
			} else {
				rest = append(rest, item)
			}
		}
		err := do(&ItemSet{items: sub}, &ItemSet{items: rest})
		if err != nil {
			return err
		}
	}
	return nil
}

func (is *ItemSet) Equals(o *ItemSet) bool {
	if len(is.items) != len(o.items) {
		return false
	}
	for i := range is.items {
		if is.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Label serializes the set as big endian int32s prefixed by the size. Two
// sets with the same members serialize identically, so string(Label()) is
// usable as a map key.
func (is *ItemSet) Label() []byte {
	size := uint32(len(is.items))
	bytes := make([]byte, 4*(size+1))
	binary.BigEndian.PutUint32(bytes[0:4], size)
	s := 4
	e := s + 4
	for _, item := range is.items {
		binary.BigEndian.PutUint32(bytes[s:e], uint32(item))
		s += 4
		e = s + 4
	}
	return bytes
}

func (is *ItemSet) String() string {
	parts := make([]string, 0, len(is.items))
	for _, item := range is.items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
