package rules

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
	"sync"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// A Rule says: transactions containing the antecedent also contain the
// consequent with the given confidence. Antecedent and consequent
// partition a frequent itemset; Support is the support of that itemset.
type Rule struct {
	Antecedent *itemset.ItemSet
	Consequent *itemset.ItemSet
	Support    int
	Confidence float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v -> %v : %d : %.4f", r.Antecedent, r.Consequent, r.Support, r.Confidence)
}

// MissingAntecedentSupport means a proper subset of a frequent itemset
// was not in the table. By anti-monotonicity every such subset must have
// been found frequent during the level-wise search, so this is always a
// table accumulation defect, never an expected condition. It is raised
// instead of coercing the lookup to zero and dividing by it.
type MissingAntecedentSupport struct {
	Itemset    *itemset.ItemSet
	Antecedent *itemset.ItemSet
}

func (e *MissingAntecedentSupport) Error() string {
	return fmt.Sprintf("support of antecedent %v of %v missing from the frequent itemset table",
		e.Antecedent, e.Itemset)
}

type Generator struct {
	Config *config.Config
}

func NewGenerator(conf *config.Config) *Generator {
	return &Generator{Config: conf}
}

// Generate derives every association rule meeting the minimum confidence
// from the finished table. Each table entry of size >= 2 contributes
// 2^n - 2 candidate antecedents. Entries are independent of each other so
// they are split across workers; each worker only reads the table and
// writes into its own slot of the results. Output order is table order
// (itemset size, then label) with ascending antecedent masks inside an
// itemset, stable within a run.
func (g *Generator) Generate(table *itemset.SupportTable) ([]*Rule, error) {
	minConf := g.Config.Confidence
	if minConf < 0 || minConf > 1 {
		return nil, &miners.InvalidThreshold{Name: "min-confidence", Value: minConf}
	}
	entries := table.Entries()
	results := make([][]*Rule, len(entries))
	errs := make([]error, len(entries))
	workers := g.Config.Workers()
	if workers > len(entries) {
		workers = len(entries)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(entries); i += workers {
				results[i], errs[i] = derive(table, entries[i], minConf)
			}
		}(w)
	}
	wg.Wait()
	rules := make([]*Rule, 0, 10)
	for i := range entries {
		if errs[i] != nil {
			return nil, errs[i]
		}
		rules = append(rules, results[i]...)
	}
	return rules, nil
}

func derive(table *itemset.SupportTable, e *itemset.Entry, minConf float64) ([]*Rule, error) {
	if e.Set.Size() < 2 {
		return nil, nil
	}
	rules := make([]*Rule, 0, 10)
	err := e.Set.EachProperSubset(func(sub, rest *itemset.ItemSet) error {
		asup, has := table.Support(sub)
		if !has {
			return &MissingAntecedentSupport{Itemset: e.Set, Antecedent: sub}
		}
		conf := float64(e.Support) / float64(asup)
		if conf >= minConf {
			rules = append(rules, &Rule{
				Antecedent: sub,
				Consequent: rest,
				Support:    e.Support,
				Confidence: conf,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}
