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
	"fmt"
	"os"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// Count tallies the frequent itemsets and levels of the run and writes
// the totals to a file on Close.
type Count struct {
	config   *config.Config
	filename string
	count    int
	levels   int
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(e *itemset.Entry) error {
	r.count++
	return nil
}

func (r *Count) LevelEnd(lvl *miners.Level) error {
	r.levels++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v %v\n", r.count, r.levels)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
