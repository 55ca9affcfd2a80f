package apriori

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/apriori/types/itemset"
)

func entries(sets ...*itemset.ItemSet) []*itemset.Entry {
	es := make([]*itemset.Entry, 0, len(sets))
	for _, s := range sets {
		es = append(es, &itemset.Entry{Set: s, Support: 2})
	}
	return es
}

func labels(cands []*itemset.ItemSet) map[string]bool {
	m := make(map[string]bool, len(cands))
	for _, c := range cands {
		m[string(c.Label())] = true
	}
	return m
}

func TestParseStrategy(x *testing.T) {
	t := assert.New(x)
	s, err := ParseStrategy("prefix")
	t.Nil(err)
	t.Equal(PrefixJoin, s)
	s, err = ParseStrategy("naive")
	t.Nil(err)
	t.Equal(NaiveJoin, s)
	_, err = ParseStrategy("bogus")
	t.NotNil(err)
}

func TestPairsFromSingletons(x *testing.T) {
	t := assert.New(x)
	frequent := entries(itemset.NewItemSet(1), itemset.NewItemSet(2), itemset.NewItemSet(3))
	for _, strategy := range []Strategy{PrefixJoin, NaiveJoin} {
		cands := candidates(frequent, 2, strategy)
		t.Len(cands, 3)
		has := labels(cands)
		t.True(has[string(itemset.NewItemSet(1, 2).Label())])
		t.True(has[string(itemset.NewItemSet(1, 3).Label())])
		t.True(has[string(itemset.NewItemSet(2, 3).Label())])
	}
}

func TestPrefixJoinNeedsSharedPrefix(x *testing.T) {
	t := assert.New(x)
	// {1,2} and {3,4} share no 1-prefix so the prefix join never unions
	// them; the naive join does but discards the size 4 union
	frequent := entries(itemset.NewItemSet(1, 2), itemset.NewItemSet(3, 4))
	t.Len(candidates(frequent, 3, PrefixJoin), 0)
	t.Len(candidates(frequent, 3, NaiveJoin), 0)
}

func TestPruneDropsInfrequentSubset(x *testing.T) {
	t := assert.New(x)
	// {1,2} and {1,3} join to {1,2,3} but {2,3} is not frequent, so the
	// prefix strategy prunes the candidate while the naive one keeps it
	frequent := entries(itemset.NewItemSet(1, 2), itemset.NewItemSet(1, 3))
	t.Len(candidates(frequent, 3, PrefixJoin), 0)
	naive := candidates(frequent, 3, NaiveJoin)
	t.Len(naive, 1)
	t.True(naive[0].Equals(itemset.NewItemSet(1, 2, 3)))
}

func TestPruneKeepsFullySupported(x *testing.T) {
	t := assert.New(x)
	frequent := entries(
		itemset.NewItemSet(1, 2),
		itemset.NewItemSet(1, 3),
		itemset.NewItemSet(2, 3),
	)
	cands := candidates(frequent, 3, PrefixJoin)
	t.Len(cands, 1)
	t.True(cands[0].Equals(itemset.NewItemSet(1, 2, 3)))
}

func TestEmptyFrequent(x *testing.T) {
	t := assert.New(x)
	t.Len(candidates(nil, 2, PrefixJoin), 0)
	t.Len(candidates(nil, 2, NaiveJoin), 0)
}

func TestCandidatesSorted(x *testing.T) {
	t := assert.New(x)
	frequent := entries(
		itemset.NewItemSet(9),
		itemset.NewItemSet(4),
		itemset.NewItemSet(1),
	)
	cands := candidates(frequent, 2, PrefixJoin)
	t.Len(cands, 3)
	t.True(cands[0].Equals(itemset.NewItemSet(1, 4)))
	t.True(cands[1].Equals(itemset.NewItemSet(1, 9)))
	t.True(cands[2].Equals(itemset.NewItemSet(4, 9)))
}
