package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncluded(t *testing.T) {
	var in Included
	in.add(Record{Name: "a", PValue: 0.01, RValue: 0.5})
	in.add(Record{Name: "b", PValue: 0.02, RValue: 0.6})
	in.add(Record{Name: "c", PValue: 0.03, RValue: 0.7})

	require.Equal(t, 3, in.Len())
	require.Equal(t, []string{"a", "b", "c"}, in.Names())
	require.Equal(t, []float64{0.01, 0.02, 0.03}, in.PValues())
	require.Equal(t, []float64{0.5, 0.6, 0.7}, in.RValues())
	require.Equal(t, 1, in.Index("b"))
	require.Equal(t, -1, in.Index("z"))
	require.True(t, in.Contains("c"))

	snapshot := in.Clone()

	removed := in.removeAt(1)
	require.Equal(t, "b", removed.Name)
	require.Equal(t, []string{"a", "c"}, in.Names())
	require.Equal(t, []float64{0.01, 0.03}, in.PValues())
	require.Equal(t, []float64{0.5, 0.7}, in.RValues())
	require.Equal(t, []string{"a", "b", "c"}, snapshot.Names(), "clone is independent")

	in.truncate(1)
	require.Equal(t, []string{"a"}, in.Names())

	in.reset()
	require.Zero(t, in.Len())
	require.Empty(t, in.Names())
}
