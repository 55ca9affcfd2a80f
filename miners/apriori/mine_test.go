package apriori

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/miners/rules"
	"github.com/timtadh/apriori/types/itemset"
)

// collector is a Reporter remembering everything the miner told it.
type collector struct {
	entries []*itemset.Entry
	levels  []*miners.Level
	closed  bool
}

func (c *collector) Report(e *itemset.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

func (c *collector) LevelEnd(lvl *miners.Level) error {
	c.levels = append(c.levels, lvl)
	return nil
}

func (c *collector) Close() error {
	c.closed = true
	return nil
}

func load(t *assert.Assertions, conf *config.Config, text string) *itemset.Dataset {
	dt, err := itemset.NewIntLoader(conf).Load(func() (io.Reader, func(), error) {
		return strings.NewReader(text), func() {}, nil
	})
	t.Nil(err)
	return dt
}

const scenario = "1 2 3\n1 2\n1 3\n2 3\n"

func mine(t *assert.Assertions, text string, conf *config.Config, strategy Strategy, narrow bool) (*itemset.SupportTable, *collector) {
	dt := load(t, conf, text)
	c := &collector{}
	m := NewMiner(conf, strategy, narrow)
	table, err := m.Mine(dt, c)
	t.Nil(err)
	t.Nil(m.Close())
	t.True(c.closed)
	return table, c
}

func support(t *assert.Assertions, table *itemset.SupportTable, items ...int32) int {
	sup, has := table.Support(itemset.NewItemSet(items...))
	t.True(has, "itemset %v not in table", itemset.NewItemSet(items...))
	return sup
}

func TestScenario(x *testing.T) {
	t := assert.New(x)
	for _, strategy := range []Strategy{PrefixJoin, NaiveJoin} {
		for _, narrow := range []bool{true, false} {
			conf := &config.Config{Support: 2}
			table, c := mine(t, scenario, conf, strategy, narrow)
			t.Equal(6, table.Size())
			t.Equal(3, support(t, table, 1))
			t.Equal(3, support(t, table, 2))
			t.Equal(3, support(t, table, 3))
			t.Equal(2, support(t, table, 1, 2))
			t.Equal(2, support(t, table, 1, 3))
			t.Equal(2, support(t, table, 2, 3))
			t.False(table.Has(itemset.NewItemSet(1, 2, 3)), "{1,2,3} has support 1")
			// levels 1 and 2 complete; the level 3 candidate {1,2,3} is
			// counted and filtered out so no third level is reported
			t.Len(c.levels, 2)
			t.Equal(1, c.levels[0].K)
			t.Equal(3, c.levels[0].Frequent)
			t.Equal(2, c.levels[1].K)
			t.Equal(3, c.levels[1].Candidates)
			t.Equal(3, c.levels[1].Frequent)
			t.Len(c.entries, 6)
		}
	}
}

func TestEmptyDataset(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: 1}
	table, c := mine(t, "", conf, PrefixJoin, true)
	t.Equal(0, table.Size())
	t.Len(c.levels, 0)
}

func TestSupportAboveDatasetSize(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: 5}
	table, c := mine(t, scenario, conf, PrefixJoin, true)
	t.Equal(0, table.Size())
	t.Len(c.levels, 0)
	t.Len(c.entries, 0)
}

func TestThresholdBoundary(x *testing.T) {
	t := assert.New(x)
	// {4} appears exactly twice: kept at support 2, dropped at 3
	text := "1 4\n2 4\n1 2\n"
	conf := &config.Config{Support: 2}
	table, _ := mine(t, text, conf, PrefixJoin, true)
	t.Equal(2, support(t, table, 4))
	conf = &config.Config{Support: 3}
	table, _ = mine(t, text, conf, PrefixJoin, true)
	t.False(table.Has(itemset.NewItemSet(4)))
}

func TestZeroSupport(x *testing.T) {
	t := assert.New(x)
	// at minimum support 0 the table must still only hold itemsets
	// contained in at least one transaction; {1,3} and {2,3} occur in
	// none and would give every derived rule a confidence of 0
	conf := &config.Config{Support: 0}
	table, _ := mine(t, "1 2\n3\n", conf, PrefixJoin, true)
	t.Equal(4, table.Size())
	t.Equal(1, support(t, table, 1))
	t.Equal(1, support(t, table, 2))
	t.Equal(1, support(t, table, 3))
	t.Equal(1, support(t, table, 1, 2))
	t.False(table.Has(itemset.NewItemSet(1, 3)))
	t.False(table.Has(itemset.NewItemSet(2, 3)))
	for _, e := range table.Entries() {
		t.True(e.Support > 0, "zero support entry %v", e.Set)
	}
	rs, err := rules.NewGenerator(conf).Generate(table)
	t.Nil(err)
	t.Len(rs, 2)
	for _, r := range rs {
		t.True(r.Confidence > 0 && r.Confidence <= 1,
			"confidence %v out of (0,1]", r.Confidence)
	}
}

func TestInvalidSupport(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: -1}
	dt := load(t, conf, scenario)
	defer dt.Close()
	m := NewMiner(conf, PrefixJoin, true)
	table, err := m.Mine(dt, &collector{})
	t.Nil(table)
	t.NotNil(err)
	_, ok := err.(*miners.InvalidThreshold)
	t.True(ok, "expected InvalidThreshold got %T", err)
}

const deeper = `1 2 3 4
1 2 3 4 5
1 2 3
1 2 4
2 3 4
1 9
5 9
`

func TestAntiMonotone(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: 2, Parallelism: 4}
	table, _ := mine(t, deeper, conf, PrefixJoin, true)
	for _, e := range table.Entries() {
		err := e.Set.EachProperSubset(func(sub, rest *itemset.ItemSet) error {
			sup, has := table.Support(sub)
			t.True(has, "subset %v of %v missing", sub, e.Set)
			t.True(sup >= e.Support, "support(%v) = %v < support(%v) = %v", sub, sup, e.Set, e.Support)
			return nil
		})
		t.Nil(err)
	}
}

func TestIdempotent(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: 2}
	a, _ := mine(t, deeper, conf, PrefixJoin, true)
	b, _ := mine(t, deeper, conf, PrefixJoin, true)
	t.Equal(a.Size(), b.Size())
	ae := a.Entries()
	be := b.Entries()
	for i := range ae {
		t.True(ae[i].Set.Equals(be[i].Set), "%v != %v", ae[i].Set, be[i].Set)
		t.Equal(ae[i].Support, be[i].Support)
	}
}

func TestStrategiesAgree(x *testing.T) {
	t := assert.New(x)
	for _, narrow := range []bool{true, false} {
		conf := &config.Config{Support: 2}
		a, _ := mine(t, deeper, conf, PrefixJoin, narrow)
		b, _ := mine(t, deeper, conf, NaiveJoin, narrow)
		t.Equal(a.Size(), b.Size())
		for _, e := range a.Entries() {
			sup, has := b.Support(e.Set)
			t.True(has, "%v missing from naive table", e.Set)
			t.Equal(e.Support, sup)
		}
	}
}

func TestParallelAgrees(x *testing.T) {
	t := assert.New(x)
	serial := &config.Config{Support: 2}
	parallel := &config.Config{Support: 2, Parallelism: 4}
	a, _ := mine(t, deeper, serial, PrefixJoin, true)
	b, _ := mine(t, deeper, parallel, PrefixJoin, true)
	t.Equal(a.Size(), b.Size())
	for _, e := range a.Entries() {
		sup, has := b.Support(e.Set)
		t.True(has)
		t.Equal(e.Support, sup)
	}
}
