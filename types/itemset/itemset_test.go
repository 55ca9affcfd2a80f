package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

func TestCanonical(x *testing.T) {
	t := assert.New(x)
	a := NewItemSet(3, 1, 2, 2, 1)
	t.Equal([]int32{1, 2, 3}, a.Items())
	t.Equal(3, a.Size())
	t.Equal("{1, 2, 3}", a.String())
	b := NewItemSet(2, 3, 1)
	t.True(a.Equals(b), "%v != %v", a, b)
	t.Equal(a.Label(), b.Label())
}

func TestFromSet(x *testing.T) {
	t := assert.New(x)
	s := set.NewSortedSet(3)
	t.Nil(s.Add(types.Int32(7)))
	t.Nil(s.Add(types.Int32(3)))
	t.Nil(s.Add(types.Int32(7)))
	is := FromSet(s)
	t.Equal([]int32{3, 7}, is.Items())
}

func TestHas(x *testing.T) {
	t := assert.New(x)
	a := NewItemSet(1, 5, 9)
	t.True(a.Has(1))
	t.True(a.Has(5))
	t.True(a.Has(9))
	t.False(a.Has(2))
	t.False(a.Has(10))
}

func TestSupportedBy(x *testing.T) {
	t := assert.New(x)
	tx := set.FromSlice([]types.Hashable{types.Int32(1), types.Int32(2), types.Int32(3)})
	t.True(NewItemSet(1, 2).SupportedBy(tx))
	t.True(NewItemSet(1, 2, 3).SupportedBy(tx))
	t.False(NewItemSet(1, 4).SupportedBy(tx))
}

func TestUnion(x *testing.T) {
	t := assert.New(x)
	a := NewItemSet(1, 3)
	b := NewItemSet(1, 4)
	t.Equal([]int32{1, 3, 4}, a.Union(b).Items())
	t.Equal([]int32{1, 3}, a.Union(a).Items())
}

func TestSharesPrefix(x *testing.T) {
	t := assert.New(x)
	a := NewItemSet(1, 2, 5)
	b := NewItemSet(1, 2, 7)
	c := NewItemSet(1, 3, 7)
	t.True(a.SharesPrefix(b, 2))
	t.True(a.SharesPrefix(b, 0))
	t.False(a.SharesPrefix(c, 2))
	t.True(a.SharesPrefix(c, 1))
	t.False(a.SharesPrefix(NewItemSet(1), 2))
}

func TestSubsets(x *testing.T) {
	t := assert.New(x)
	subs := NewItemSet(1, 2, 3).Subsets()
	t.Len(subs, 3)
	t.Equal([]int32{2, 3}, subs[0].Items())
	t.Equal([]int32{1, 3}, subs[1].Items())
	t.Equal([]int32{1, 2}, subs[2].Items())
}

func TestEachProperSubset(x *testing.T) {
	t := assert.New(x)
	count := 0
	err := NewItemSet(1, 2, 3).EachProperSubset(func(sub, rest *ItemSet) error {
		count++
		t.True(sub.Size() >= 1 && sub.Size() <= 2, "bad subset %v", sub)
		t.Equal(3, sub.Size()+rest.Size())
		t.Equal([]int32{1, 2, 3}, sub.Union(rest).Items())
		return nil
	})
	t.Nil(err)
	t.Equal(6, count) // 2^3 - 2
}

func TestSupportTable(x *testing.T) {
	t := assert.New(x)
	tbl := NewSupportTable()
	tbl.Add(NewItemSet(1), 3)
	tbl.Add(NewItemSet(2), 3)
	tbl.Add(NewItemSet(1, 2), 2)
	tbl.Add(NewItemSet(1), 3) // same key, no growth
	t.Equal(3, tbl.Size())
	sup, has := tbl.Support(NewItemSet(1, 2))
	t.True(has)
	t.Equal(2, sup)
	_, has = tbl.Support(NewItemSet(3))
	t.False(has)
	entries := tbl.Entries()
	t.Len(entries, 3)
	t.Equal([]int32{1}, entries[0].Set.Items())
	t.Equal([]int32{2}, entries[1].Set.Items())
	t.Equal([]int32{1, 2}, entries[2].Set.Items())
}
