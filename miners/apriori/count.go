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
	"sync"
)

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// countSupport computes, for each candidate, the number of transactions
// which are supersets of it. The transaction list is split into disjoint
// chunks, one per worker; each worker counts into its own slice and the
// partials are summed after every worker exits. Summation is associative
// and commutative so worker ordering does not matter. hits[i] records
// whether transaction i supported at least one candidate, which drives
// transaction narrowing.
func countSupport(txs []*set.SortedSet, cands []*itemset.ItemSet, workers int) (counts []int, hits []bool) {
	counts = make([]int, len(cands))
	hits = make([]bool, len(txs))
	if len(txs) == 0 || len(cands) == 0 {
		return counts, hits
	}
	if workers > len(txs) {
		workers = len(txs)
	}
	partials := make([][]int, workers)
	chunk := (len(txs) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(txs) {
			end = len(txs)
		}
		partials[w] = make([]int, len(cands))
		wg.Add(1)
		go func(part []int, start, end int) {
			defer wg.Done()
			for t := start; t < end; t++ {
				for c, cand := range cands {
					if cand.SupportedBy(txs[t]) {
						part[c]++
						hits[t] = true
					}
				}
			}
		}(partials[w], start, end)
	}
	wg.Wait()
	for _, part := range partials {
		for c, n := range part {
			counts[c] += n
		}
	}
	return counts, hits
}

// narrow copies the working transaction list keeping only transactions
// which supported a current level candidate. A transaction dropped at
// level k never becomes relevant again: any (k+1)-itemset contains a
// k-subset, so a transaction supporting no surviving k-candidate cannot
// support a superset of one. The loaded Dataset is never touched.
func narrow(txs []*set.SortedSet, hits []bool) []*set.SortedSet {
	kept := make([]*set.SortedSet, 0, len(txs))
	for i, tx := range txs {
		if hits[i] {
			kept = append(kept, tx)
		}
	}
	return kept
}
