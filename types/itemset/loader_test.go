package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/config"
)

func fromString(text string) Input {
	return func() (io.Reader, func(), error) {
		return strings.NewReader(text), func() {}, nil
	}
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString("1 2 3\n1 2\n1 3\n2 3\n"))
	t.Nil(err)
	defer dt.Close()
	t.Len(dt.Txs, 4)
	t.Equal(3, dt.Txs[0].Size())
	t.True(dt.Txs[1].Has(types.Int32(2)))
	t.False(dt.Txs[1].Has(types.Int32(3)))
}

func TestLoadCollapsesDuplicates(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString("5 5 5 7\n"))
	t.Nil(err)
	defer dt.Close()
	t.Len(dt.Txs, 1)
	t.Equal(2, dt.Txs[0].Size())
	entries, err := dt.Singletons()
	t.Nil(err)
	t.Len(entries, 2)
	t.Equal(1, entries[0].Support)
	t.Equal(1, entries[1].Support)
}

func TestLoadEmptyLine(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString("1 2\n\n2 3\n"))
	t.Nil(err)
	defer dt.Close()
	t.Len(dt.Txs, 3)
	t.Equal(0, dt.Txs[1].Size())
}

func TestLoadSkipsNonInts(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString("1 apple 2\n"))
	t.Nil(err)
	defer dt.Close()
	t.Len(dt.Txs, 1)
	t.Equal(2, dt.Txs[0].Size())
}

func TestLoadEmptyDataset(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString(""))
	t.Nil(err)
	defer dt.Close()
	t.Len(dt.Txs, 0)
	entries, err := dt.Singletons()
	t.Nil(err)
	t.Len(entries, 0)
}

func TestLoadUnavailable(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(func() (io.Reader, func(), error) {
		return nil, nil, io.ErrUnexpectedEOF
	})
	t.Nil(dt)
	t.NotNil(err)
	_, ok := err.(*DatasetUnavailable)
	t.True(ok, "expected DatasetUnavailable got %T", err)
}

func TestSingletons(x *testing.T) {
	t := assert.New(x)
	l := NewIntLoader(&config.Config{})
	dt, err := l.Load(fromString("1 2 3\n1 2\n1 3\n2 3\n"))
	t.Nil(err)
	defer dt.Close()
	entries, err := dt.Singletons()
	t.Nil(err)
	t.Len(entries, 3)
	for i, e := range entries {
		t.Equal([]int32{int32(i + 1)}, e.Set.Items())
		t.Equal(3, e.Support)
	}
}
