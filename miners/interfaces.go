package miners

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
	"fmt"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// A Level summarizes one completed level of the level-wise search.
type Level struct {
	K            int // itemset size of the level
	Candidates   int // candidates counted at this level
	Frequent     int // candidates which met the minimum support
	Transactions int // size of the working transaction list after the level
}

// A Reporter observes the mining run. The engine itself never prints;
// every diagnostic goes through a Reporter.
//
// Note: the miner's Close function should close both the reporter and the
// dataset that were passed into it.
type Reporter interface {
	Report(e *itemset.Entry) error
	LevelEnd(lvl *Level) error
	Close() error
}

// InvalidThreshold rejects a bad minimum support or minimum confidence
// before any computation starts.
type InvalidThreshold struct {
	Name  string
	Value float64
}

func (e *InvalidThreshold) Error() string {
	return fmt.Sprintf("invalid threshold %v = %v", e.Name, e.Value)
}
