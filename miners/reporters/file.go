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
	"io"
	"os"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// File writes the frequent itemsets to a patterns file and the per level
// summaries to a levels file, both in the output directory.
type File struct {
	config   *config.Config
	fmtr     itemset.Formatter
	patterns io.WriteCloser
	levels   io.WriteCloser
}

func NewFile(c *config.Config, fmtr itemset.Formatter, patternsFilename, levelsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	levels, err := os.Create(c.OutputFile(levelsFilename))
	if err != nil {
		patterns.Close()
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
		levels:   levels,
	}
	return r, nil
}

func (r *File) Report(e *itemset.Entry) error {
	_, err := fmt.Fprintln(r.patterns, r.fmtr.FormatEntry(e))
	return err
}

func (r *File) LevelEnd(lvl *miners.Level) error {
	_, err := fmt.Fprintf(r.levels, "%v %v %v %v\n",
		lvl.K, lvl.Candidates, lvl.Frequent, lvl.Transactions)
	return err
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	return r.levels.Close()
}
