package config

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
	"math/rand"
	"path/filepath"
	"runtime"
)

import (
	"github.com/timtadh/apriori/stores/intint"
)

type Config struct {
	Cache       string
	Output      string
	Support     int
	Confidence  float64
	Parallelism int
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) IntIntMultiMap(name string) (intint.MultiMap, error) {
	if c.Cache == "" {
		return intint.AnonBpTree()
	} else {
		return intint.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
