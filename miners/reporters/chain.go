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
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(e *itemset.Entry) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(e)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) LevelEnd(lvl *miners.Level) error {
	for _, rpt := range r.Reporters {
		err := rpt.LevelEnd(lvl)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
