package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindKnownBook(t *testing.T) {
	e, id := Find("Gênesis")
	require.NotNil(t, e)
	assert.Equal(t, Scripture, id)
	assert.Equal(t, 50, e.Chapters)
	assert.Equal(t, TestamentOld, e.Testament)
}

func TestFindApocryphalBook(t *testing.T) {
	e, id := Find("1 Enoque")
	require.NotNil(t, e)
	assert.Equal(t, Apocrypha, id)
	assert.Equal(t, 108, e.Chapters)
}

func TestFindLibraryBook(t *testing.T) {
	e, id := Find("O Grande Conflito")
	require.NotNil(t, e)
	assert.Equal(t, White, id)
	assert.Equal(t, 42, e.Chapters)
	assert.Equal(t, TestamentNone, e.Testament)
}

func TestFindUnknownReturnsNil(t *testing.T) {
	e, id := Find("Livro Inexistente")
	assert.Nil(t, e)
	assert.Equal(t, ID(""), id)
}

func TestFindInScopesToOneCatalog(t *testing.T) {
	// "Atos" exists in scripture, "Atos dos Apóstolos" in the White library.
	// A namespaced lookup must not leak across catalogs.
	assert.Nil(t, FindIn(White, "Atos"))
	assert.NotNil(t, FindIn(Scripture, "Atos"))
	assert.NotNil(t, FindIn(White, "Atos dos Apóstolos"))
}

func TestFindInUnknownCatalog(t *testing.T) {
	assert.Nil(t, FindIn(ID("nope"), "Gênesis"))
}

func TestScriptureCatalogShape(t *testing.T) {
	require.Len(t, ScriptureCatalog.Entries, 66)

	old, new_ := 0, 0
	for _, e := range ScriptureCatalog.Entries {
		require.Positive(t, e.Chapters, "book %q must have chapters", e.Name)
		switch e.Testament {
		case TestamentOld:
			old++
		case TestamentNew:
			new_++
		}
	}
	assert.Equal(t, 39, old)
	assert.Equal(t, 27, new_)
}

func TestNamesUniqueWithinEachCatalog(t *testing.T) {
	for _, c := range All() {
		seen := map[string]bool{}
		for _, e := range c.Entries {
			require.False(t, seen[e.Name], "duplicate %q in catalog %s", e.Name, c.ID)
			seen[e.Name] = true
		}
	}
}

func TestPriorityOrderStable(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, Scripture, all[0].ID)
	assert.Equal(t, Apocrypha, all[1].ID)
}
