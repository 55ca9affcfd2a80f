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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/stores/intint"
)

// Input hands the loader a transaction stream. The closer must be called
// once the stream is consumed.
type Input func() (reader io.Reader, closer func(), err error)

// DatasetUnavailable wraps a failure of the collaborator supplying the
// transactions. It is fatal for the run; there is no retry.
type DatasetUnavailable struct {
	Err error
}

func (e *DatasetUnavailable) Error() string {
	return fmt.Sprintf("dataset unavailable: %v", e.Err)
}

// A Dataset is an immutable snapshot of the transactions plus an inverted
// index (item -> tx id) kept in an fs2 b+tree. The index supplies the
// distinct items and their level 1 supports without rescanning the
// transactions. Every component treats the Dataset as read-only.
type Dataset struct {
	Txs           []*set.SortedSet
	InvertedIndex intint.MultiMap
}

type IntLoader struct {
	config *config.Config
}

// NewIntLoader loads transactions in the int format: one transaction per
// line, items as whitespace separated integers.
//
// Example file:
//
//	10 1 5 7
//	213 2 5 1
//	23 1 4 5 7
//	3 4 1
func NewIntLoader(conf *config.Config) *IntLoader {
	return &IntLoader{config: conf}
}

func (l *IntLoader) Load(input Input) (*Dataset, error) {
	index, err := l.config.IntIntMultiMap("itemsets-inverted")
	if err != nil {
		return nil, err
	}
	reader, closer, err := input()
	if err != nil {
		index.Delete()
		return nil, &DatasetUnavailable{Err: err}
	}
	defer closer()
	txs := make([]*set.SortedSet, 0, 10)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		tx := set.NewSortedSet(10)
		for _, col := range strings.Fields(scanner.Text()) {
			item, err := strconv.Atoi(col)
			if err != nil {
				errors.Logf("WARN", "input line %d contained non int '%s'", len(txs), col)
				continue
			}
			err = tx.Add(types.Int32(int32(item)))
			if err != nil {
				index.Delete()
				return nil, err
			}
		}
		// the set collapsed duplicate tokens, index each member once
		for i, next := tx.Items()(); next != nil; i, next = next() {
			err := index.Add(int32(i.(types.Int32)), int32(len(txs)))
			if err != nil {
				index.Delete()
				return nil, err
			}
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		index.Delete()
		return nil, &DatasetUnavailable{Err: err}
	}
	return &Dataset{Txs: txs, InvertedIndex: index}, nil
}

// Singletons lists the distinct 1-itemsets of the dataset with their
// supports, in item order. The counts come straight off the inverted
// index.
func (d *Dataset) Singletons() ([]*Entry, error) {
	entries := make([]*Entry, 0, 10)
	citem := int32(-1)
	count := 0
	err := intint.Do(d.InvertedIndex.Iterate, func(item, tx int32) error {
		if count > 0 && item != citem {
			entries = append(entries, &Entry{Set: NewItemSet(citem), Support: count})
			count = 0
		}
		citem = item
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		entries = append(entries, &Entry{Set: NewItemSet(citem), Support: count})
	}
	return entries, nil
}

func (d *Dataset) Close() error {
	return d.InvertedIndex.Delete()
}
