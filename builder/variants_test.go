// Package builder_test verifies the Famous catalog: member parameters,
// equivalence with direct GeneralizedPetersen calls, and unknown-name errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/petersen/builder"
)

// TestFamous_Counts checks every catalog member against its canonical
// vertex/edge counts.
func TestFamous_Counts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  builder.FamousName
		wantV int
		wantE int
	}{
		{name: builder.Petersen, wantV: 10, wantE: 15},
		{name: builder.Duerer, wantV: 12, wantE: 18},
		{name: builder.MoebiusKantor, wantV: 16, wantE: 24},
		{name: builder.Dodecahedral, wantV: 20, wantE: 30},
		{name: builder.Desargues, wantV: 20, wantE: 30},
		{name: builder.Nauru, wantV: 24, wantE: 36},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.name), func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, builder.Famous(tc.name))
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

// TestFamous_MatchesDirectCall verifies that the catalog dispatch produces
// exactly the same edge set as the parametrized constructor.
func TestFamous_MatchesDirectCall(t *testing.T) {
	t.Parallel()

	gCat, err := builder.BuildGraph(nil, nil, builder.Famous(builder.Petersen))
	require.NoError(t, err)
	gDir, err := builder.BuildGraph(nil, nil, builder.GeneralizedPetersen(5, 2))
	require.NoError(t, err)

	catalog, direct := edgeWeights(gCat), edgeWeights(gDir)
	assert.Equal(t, direct, catalog)
	assert.Equal(t, gDir.Vertices(), gCat.Vertices())
}

// TestFamous_UnknownName verifies the invalid-parameter sentinel.
func TestFamous_UnknownName(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Famous("heawood"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

// TestFamous_Classical3Regular: every GP member is 3-regular; spot-check the
// largest catalog entry.
func TestFamous_Classical3Regular(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Famous(builder.Nauru))
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 3, deg, "vertex %s", v)
	}
}
