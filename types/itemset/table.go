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
	"bytes"
	"sort"
)

type Entry struct {
	Set     *ItemSet
	Support int
}

// A SupportTable accumulates the frequent itemsets of every level keyed by
// canonical label. The mining engine is its only writer; once mining ends
// it is read-only for rule derivation and reporting.
type SupportTable struct {
	entries map[string]*Entry
}

func NewSupportTable() *SupportTable {
	return &SupportTable{
		entries: make(map[string]*Entry),
	}
}

func (t *SupportTable) Add(s *ItemSet, support int) {
	t.entries[string(s.Label())] = &Entry{Set: s, Support: support}
}

func (t *SupportTable) Support(s *ItemSet) (int, bool) {
	e, has := t.entries[string(s.Label())]
	if !has {
		return 0, false
	}
	return e.Support, true
}

func (t *SupportTable) Has(s *ItemSet) bool {
	_, has := t.entries[string(s.Label())]
	return has
}

func (t *SupportTable) Size() int {
	return len(t.entries)
}

// Entries lists the table sorted by itemset size then label. The order is
// deterministic so reports and rule output are reproducible.
func (t *SupportTable) Entries() []*Entry {
	entries := make([]*Entry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Set, entries[j].Set
		if a.Size() != b.Size() {
			return a.Size() < b.Size()
		}
		return bytes.Compare(a.Label(), b.Label()) < 0
	})
	return entries
}
