package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestSubsetID(t *testing.T) {
	t.Run("matches ID over the joined key", func(t *testing.T) {
		names := []string{"x1", "x2", "x3"}
		require.Equal(t, ID(SubsetKey(names)), SubsetID(names))
	})

	t.Run("order matters", func(t *testing.T) {
		require.NotEqual(t, SubsetID([]string{"a", "b"}), SubsetID([]string{"b", "a"}))
	})

	t.Run("separator prevents concatenation aliasing", func(t *testing.T) {
		require.NotEqual(t, SubsetID([]string{"ab", "c"}), SubsetID([]string{"a", "bc"}))
	})

	t.Run("empty subset", func(t *testing.T) {
		require.Equal(t, ID(""), SubsetID(nil))
		require.Equal(t, "", SubsetKey(nil))
	})
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkSubsetID(b *testing.B) {
	names := make([]string, 12)
	for i := range names {
		names[i] = randString(12)
	}
	b.ResetTimer()
	for b.Loop() {
		SubsetID(names)
	}
}
