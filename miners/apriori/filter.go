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
	"github.com/timtadh/apriori/types/itemset"
)

// filterSupported pairs the candidates with their counts and keeps the
// ones meeting the minimum support. Pure and idempotent. A candidate
// contained in no transaction never enters the table, even at a minimum
// support of zero; a zero support entry would let rule derivation divide
// by it.
func filterSupported(cands []*itemset.ItemSet, counts []int, minSupport int) []*itemset.Entry {
	frequent := make([]*itemset.Entry, 0, len(cands))
	for i, c := range cands {
		if counts[i] >= minSupport && counts[i] > 0 {
			frequent = append(frequent, &itemset.Entry{Set: c, Support: counts[i]})
		}
	}
	return frequent
}

// filterEntries is filterSupported for already paired entries (the level
// one singletons come off the inverted index with their counts attached).
func filterEntries(entries []*itemset.Entry, minSupport int) []*itemset.Entry {
	frequent := make([]*itemset.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Support >= minSupport {
			frequent = append(frequent, e)
		}
	}
	return frequent
}
