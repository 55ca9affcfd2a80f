package apriori

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
	"bytes"
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

type Strategy int

const (
	// PrefixJoin joins (k-1)-itemsets which agree on their first k-2
	// items and drops any candidate with an infrequent (k-1)-subset
	// before it reaches the support counter.
	PrefixJoin Strategy = iota
	// NaiveJoin unions every pair of (k-1)-itemsets and keeps the unions
	// of size k. No subset pruning.
	NaiveJoin
)

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "prefix":
		return PrefixJoin, nil
	case "naive":
		return NaiveJoin, nil
	}
	return 0, errors.Errorf("unknown candidate strategy '%v'", name)
}

func (s Strategy) String() string {
	switch s {
	case PrefixJoin:
		return "prefix"
	case NaiveJoin:
		return "naive"
	}
	return "unknown"
}

// candidates generates the size k candidates from the frequent (k-1)
// itemsets. The output is deduplicated and sorted by label so runs are
// reproducible. An empty input produces an empty output.
func candidates(frequent []*itemset.Entry, k int, strategy Strategy) []*itemset.ItemSet {
	sets := make([]*itemset.ItemSet, 0, len(frequent))
	for _, e := range frequent {
		sets = append(sets, e.Set)
	}
	sort.Slice(sets, func(i, j int) bool {
		return bytes.Compare(sets[i].Label(), sets[j].Label()) < 0
	})
	joined := make(map[string]*itemset.ItemSet)
	switch strategy {
	case NaiveJoin:
		naiveJoin(sets, k, joined)
	default:
		prefixJoin(sets, k, joined)
		prune(frequent, joined)
	}
	cands := make([]*itemset.ItemSet, 0, len(joined))
	for _, c := range joined {
		cands = append(cands, c)
	}
	sort.Slice(cands, func(i, j int) bool {
		return bytes.Compare(cands[i].Label(), cands[j].Label()) < 0
	})
	return cands
}

func naiveJoin(sets []*itemset.ItemSet, k int, joined map[string]*itemset.ItemSet) {
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			c := sets[i].Union(sets[j])
			if c.Size() == k {
				joined[string(c.Label())] = c
			}
		}
	}
}

// prefixJoin only unions pairs sharing their first k-2 items. On sorted
// itemsets the pairs with a common prefix are adjacent, so the inner loop
// stops at the first mismatch. For k == 2 the prefix is empty and every
// pair joins.
func prefixJoin(sets []*itemset.ItemSet, k int, joined map[string]*itemset.ItemSet) {
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			if !sets[i].SharesPrefix(sets[j], k-2) {
				break
			}
			c := sets[i].Union(sets[j])
			if c.Size() == k {
				joined[string(c.Label())] = c
			}
		}
	}
}

// prune removes the candidates with any (k-1)-subset outside the frequent
// set. The join only guarantees the two subsets used to build the
// candidate were frequent; anti-monotonicity rules out the rest.
func prune(frequent []*itemset.Entry, joined map[string]*itemset.ItemSet) {
	freq := make(map[string]bool, len(frequent))
	for _, e := range frequent {
		freq[string(e.Set.Label())] = true
	}
	for label, c := range joined {
		for _, sub := range c.Subsets() {
			if !freq[string(sub.Label())] {
				delete(joined, label)
				break
			}
		}
	}
}
