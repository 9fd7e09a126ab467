package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsMerged(t *testing.T) {
	base := Params{"author": "Gandalf", "nested": map[string]int{"a": 1}}

	out := base.Merged(Params{"nested": map[string]int{"b": 2}, "date": 3})

	assert.Equal(t, Params{"author": "Gandalf", "nested": map[string]int{"b": 2}, "date": 3}, out)
	assert.Equal(t, "Gandalf", base["author"])
	assert.Equal(t, map[string]int{"a": 1}, base["nested"], "merge is shallow and leaves the receiver untouched")
}

func TestParamsMergedNil(t *testing.T) {
	var p Params
	assert.Nil(t, p.Merged(nil))
	assert.Equal(t, Params{"a": 1}, p.Merged(Params{"a": 1}))
	assert.Nil(t, p.Clone())
}

func TestParamStore(t *testing.T) {
	var store ParamStore
	entry := &Entry{ID: "Article-1", Params: Params{"author": "Gandalf"}}

	got := store.Get(entry)
	got["author"] = "mutated"
	assert.Equal(t, "Gandalf", entry.Params["author"])

	store.Merge(entry, Params{"author": "Babel fish", "unknown": true})
	assert.Equal(t, Params{"author": "Babel fish", "unknown": true}, entry.Params)
	assert.Equal(t, "Article-1", entry.ID)

	assert.Nil(t, store.Get(nil))
	assert.Nil(t, store.Merge(nil, Params{"a": 1}))
}

func TestStackPopN(t *testing.T) {
	s := NewStack(&Entry{ID: "root"})
	s.Push(&Entry{ID: "a"})
	s.Push(&Entry{ID: "b"})

	assert.Equal(t, 0, s.PopN(0))
	assert.Equal(t, 2, s.PopN(5))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "root", s.Peek().ID)
	assert.Equal(t, 0, s.PopN(1))
}

func TestStackReplaceAndLookup(t *testing.T) {
	s := NewStack(&Entry{ID: "root", Screen: 0})
	s.Push(&Entry{ID: "a", Screen: 1})

	old := s.Replace(&Entry{ID: "b", Screen: 2})

	assert.Equal(t, "a", old.ID)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.LastIndexOf(2))
	assert.Equal(t, -1, s.LastIndexOf(1))
	assert.Equal(t, []string{"root", "b"}, []string{s.Entries()[0].ID, s.Entries()[1].ID})
}
