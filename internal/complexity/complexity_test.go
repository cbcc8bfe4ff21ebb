package complexity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		n     int
		want  float64
	}{
		{"quadratic", Quadratic, 20000, 4.0e8},
		{"linearithmic power of two", Linearithmic, 1024, 10240},
		{"linearithmic one", Linearithmic, 1, 0},
		{"linearithmic zero", Linearithmic, 0, 0},
		{"linear", Linear, 1000000, 1.0e6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Raw(tt.class, tt.n), 1e-9)
		})
	}

	assert.True(t, math.IsNaN(Raw(Class(42), 10)))
}

func TestScaledMatchesReferenceMeasurements(t *testing.T) {
	k := DefaultConstants()

	assert.InDelta(t, 0.9213, Scaled(Quadratic, 20000, k), 1e-3)
	assert.InDelta(t, 3.7607, Scaled(Linear, 1000000, k), 1e-3)
	// 600000 * log2(600000) is ~1.15168e7
	assert.InDelta(t, 75.67, Scaled(Linearithmic, 600000, k), 0.1)
}

func TestConstantsValidate(t *testing.T) {
	require.NoError(t, DefaultConstants().Validate())

	k := DefaultConstants()
	k.Linear = 0
	assert.Error(t, k.Validate())

	k = DefaultConstants()
	k.Quadratic = -1
	assert.Error(t, k.Validate())
}

func TestParseClass(t *testing.T) {
	tests := map[string]Class{
		"quadratic":     Quadratic,
		"O(n^2)":        Quadratic,
		" Linearithmic": Linearithmic,
		"o(n log n)":    Linearithmic,
		"linear":        Linear,
		"O(N)":          Linear,
	}
	for in, want := range tests {
		got, err := ParseClass(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseClass("cubic")
	assert.Error(t, err)
}

func TestClassStrings(t *testing.T) {
	assert.Equal(t, "O(n^2)", Quadratic.String())
	assert.Equal(t, "O(n log n)", Linearithmic.String())
	assert.Equal(t, "O(n)", Linear.String())
	assert.Equal(t, "Class(9)", Class(9).String())
	assert.Equal(t, "", Class(9).Key())
}
