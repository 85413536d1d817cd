package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryMinimalPrimitiveRootKnownValue(t *testing.T) {
	// q = 97, 2n = 32: 97 = 1 + 3*32, so twoN | q-1.
	q := mustModulus(t, 97)
	root, ok := tryMinimalPrimitiveRoot(32, q)
	require.True(t, ok)

	require.Equal(t, uint64(1), modExp(root, 32, q))
	require.NotEqual(t, uint64(1), modExp(root, 16, q))

	// root must be the smallest such element: every g below it fails one
	// of the two checks.
	for g := uint64(2); g < root; g++ {
		if modExp(g, 32, q) == 1 && modExp(g, 16, q) != 1 {
			t.Fatalf("g=%d also qualifies but is smaller than reported root %d", g, root)
		}
	}
}

func TestTryMinimalPrimitiveRootRejectsNonCongruentModulus(t *testing.T) {
	// 2n = 10 does not divide 96 = q-1 for q = 97.
	q := mustModulus(t, 97)
	_, ok := tryMinimalPrimitiveRoot(10, q)
	require.False(t, ok)
}

func TestTryMinimalPrimitiveRootRejectsComposite(t *testing.T) {
	q := mustModulus(t, 100)
	_, ok := tryMinimalPrimitiveRoot(4, q)
	require.False(t, ok)
}
