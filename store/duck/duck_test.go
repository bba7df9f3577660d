package duck

import (
	"context"
	"testing"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "soshiki/entity"
	"soshiki/testutil"
)

func newDuck(t *testing.T) *Duck {
	t.Helper()

	dk, err := New(context.Background(), &testutil.Logger{}, "")
	require.NoError(t, err)
	t.Cleanup(dk.Close)
	return dk
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)

	filters := nt.FilterList{
		&nt.TextFilter{Name: "Title", Value: "moon", Placeholder: "search"},
		&nt.ToggleFilter{Name: "Adult", Value: true},
		&nt.SegmentFilter{Name: "Status", Options: []nt.SegmentOption{{Name: "Any"}, {Name: "Ongoing", Selected: true}}},
		&nt.ExcludableMultiSelectFilter{Name: "Genre", Options: []nt.SelectOption{{Name: "Drama", Selected: true}, {Name: "Horror", Excluded: true}}},
		&nt.AscendableSortFilter{Name: "Sort", Options: []nt.SortOption{{Name: "Title"}, {Name: "Added", Selected: true, Ascending: true}}},
		&nt.NumberFilter{Name: "Rating", Value: 3.5, LowerBound: 0, UpperBound: 5, Step: 0.5},
	}

	err := dk.SaveFilters(ctx, "mangadex", filters)
	require.NoError(t, err)

	loaded, err := dk.LoadFilters(ctx, "mangadex")
	require.NoError(t, err)
	assert.Equal(t, filters, loaded)
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)

	err := dk.SaveFilters(ctx, "src", nt.FilterList{
		&nt.ToggleFilter{Name: "A"},
		&nt.ToggleFilter{Name: "B"},
	})
	require.NoError(t, err)

	err = dk.SaveFilters(ctx, "src", nt.FilterList{
		&nt.ToggleFilter{Name: "C", Value: true},
	})
	require.NoError(t, err)

	loaded, err := dk.LoadFilters(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, nt.FilterList{&nt.ToggleFilter{Name: "C", Value: true}}, loaded)
}

func TestSaveTwiceWithChangedValue(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)

	adult := &nt.ToggleFilter{Name: "Adult"}
	filters := nt.FilterList{adult, &nt.TextFilter{Name: "Title"}}

	require.NoError(t, dk.SaveFilters(ctx, "src", filters))

	adult.Value = true
	require.NoError(t, dk.SaveFilters(ctx, "src", filters))
	require.NoError(t, dk.SaveFilters(ctx, "src", filters))

	loaded, err := dk.LoadFilters(ctx, "src")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.True(t, loaded[0].(*nt.ToggleFilter).Value)
	assert.Equal(t, "Title", loaded[1].Label())
}

func TestSourcesAreSeparate(t *testing.T) {
	ctx := context.Background()
	dk := newDuck(t)

	require.NoError(t, dk.SaveFilters(ctx, "one", nt.FilterList{&nt.TextFilter{Name: "One"}}))
	require.NoError(t, dk.SaveFilters(ctx, "two", nt.FilterList{&nt.TextFilter{Name: "Two"}}))

	loaded, err := dk.LoadFilters(ctx, "two")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Two", loaded[0].Label())

	sources, err := dk.Sources(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, sources)

	missing, err := dk.LoadFilters(ctx, "three")
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, "memory", dk.Name())
}
