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
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// Miner runs the level-wise search. Each level counts the support of the
// current candidates, filters by minimum support, merges the survivors
// into the accumulated table, and joins them into the next level's
// candidates. The run ends when a level has no frequent itemsets or the
// join produces no candidates. The Miner is the only writer of the table;
// after Mine returns the table is read-only.
type Miner struct {
	Config   *config.Config
	Strategy Strategy
	Narrow   bool
	Dt       *itemset.Dataset
	Rptr     miners.Reporter
}

func NewMiner(conf *config.Config, strategy Strategy, narrow bool) *Miner {
	return &Miner{
		Config:   conf,
		Strategy: strategy,
		Narrow:   narrow,
	}
}

func (m *Miner) Mine(dt *itemset.Dataset, rptr miners.Reporter) (*itemset.SupportTable, error) {
	if m.Config.Support < 0 {
		return nil, &miners.InvalidThreshold{Name: "min-support", Value: float64(m.Config.Support)}
	}
	m.Dt = dt
	m.Rptr = rptr
	errors.Logf("DEBUG", "mining with %v candidates, narrow=%v, workers=%v",
		m.Strategy, m.Narrow, m.Config.Workers())
	table := itemset.NewSupportTable()
	singletons, err := dt.Singletons()
	if err != nil {
		return nil, err
	}
	txs := dt.Txs
	k := 1
	candidateCount := len(singletons)
	frequent := filterEntries(singletons, m.Config.Support)
	for len(frequent) > 0 {
		for _, e := range frequent {
			table.Add(e.Set, e.Support)
			err := rptr.Report(e)
			if err != nil {
				return nil, err
			}
		}
		err := rptr.LevelEnd(&miners.Level{
			K:            k,
			Candidates:   candidateCount,
			Frequent:     len(frequent),
			Transactions: len(txs),
		})
		if err != nil {
			return nil, err
		}
		cands := candidates(frequent, k+1, m.Strategy)
		if len(cands) == 0 {
			break
		}
		k++
		candidateCount = len(cands)
		counts, hits := countSupport(txs, cands, m.Config.Workers())
		if m.Narrow && k > 2 {
			txs = narrow(txs, hits)
		}
		frequent = filterSupported(cands, counts, m.Config.Support)
	}
	return table, nil
}

func (m *Miner) Close() error {
	errs := make(chan error)
	go func() {
		if m.Dt == nil {
			errs <- nil
		} else {
			errs <- m.Dt.Close()
		}
	}()
	go func() {
		if m.Rptr == nil {
			errs <- nil
		} else {
			errs <- m.Rptr.Close()
		}
	}()
	for i := 0; i < 2; i++ {
		err := <-errs
		if err != nil {
			return err
		}
	}
	return nil
}
