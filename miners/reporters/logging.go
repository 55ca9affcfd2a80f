package reporters

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
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

type Log struct {
	fmtr   itemset.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr itemset.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(e *itemset.Entry) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, lr.fmtr.FormatEntry(e))
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, lr.fmtr.FormatEntry(e))
	}
	return nil
}

func (lr *Log) LevelEnd(lvl *miners.Level) error {
	errors.Logf(lr.level, "level %v done: %v candidates, %v frequent, %v transactions live",
		lvl.K, lvl.Candidates, lvl.Frequent, lvl.Transactions)
	return nil
}

func (lr *Log) Close() error {
	return nil
}
