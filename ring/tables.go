package ring

import "fmt"

// MinDegree and MaxDegree bound the polynomial degree n = 2^logN a Tables
// value may be built for, named after SEAL_POLY_MOD_DEGREE_MIN/MAX in
// spec §3.
const (
	MinDegree = 2
	MaxDegree = 32768
)

// Tables holds every precomputed value needed to run the forward and
// inverse negacyclic NTT for a fixed (n, q) pair, per spec §3's Data
// Model. A Tables value is immutable once returned by BuildTables and
// safe to share across goroutines operating on disjoint coefficient
// buffers.
type Tables struct {
	logN int
	n    int

	modulus SmallModulus
	root    uint64

	rootPowers       []uint64
	scaledRootPowers []uint64

	invRootPowers       []uint64
	scaledInvRootPowers []uint64

	// invRootPowersDivTwo and scaledInvRootPowersDivTwo mirror the
	// original source's alternate fused-halving table set. Neither the
	// forward nor the inverse transform below reads them: InvNTTLazy
	// fuses the n^-1 scaling into its own merge layer (spec §4.5).
	// They are computed and stored anyway because the Data Model in
	// spec §3 requires them to be present.
	invRootPowersDivTwo       []uint64
	scaledInvRootPowersDivTwo []uint64

	invDegreeModulo uint64

	initialized bool
}

// N returns the transform length n = 2^logN.
func (t *Tables) N() int { return t.n }

// LogN returns the coefficient-count power k such that n = 2^k.
func (t *Tables) LogN() int { return t.logN }

// Modulus returns the modulus these tables were built for.
func (t *Tables) Modulus() SmallModulus { return t.modulus }

// Root returns the minimal primitive 2n-th root of unity mod q.
func (t *Tables) Root() uint64 { return t.root }

// InvDegree returns n^-1 mod q.
func (t *Tables) InvDegree() uint64 { return t.invDegreeModulo }

// RootPower returns root_powers[i], i.e. root^bitrev_k(i) mod q.
func (t *Tables) RootPower(i int) uint64 { return t.rootPowers[i] }

// ScaledRootPower returns the Shoup-scaled companion of RootPower(i).
func (t *Tables) ScaledRootPower(i int) uint64 { return t.scaledRootPowers[i] }

// InvRootPower returns the i-th entry of the reordered inverse-root table
// consumed sequentially by InvNTTLazy (see §4.5); this is not
// root^-1's power at index i in bit-reversed order.
func (t *Tables) InvRootPower(i int) uint64 { return t.invRootPowers[i] }

// ScaledInvRootPower returns the Shoup-scaled companion of InvRootPower(i).
func (t *Tables) ScaledInvRootPower(i int) uint64 { return t.scaledInvRootPowers[i] }

// BuildTables constructs the NTT tables for a transform of length n = 2^logN
// modulo q, following spec §4.3. It returns an error, wrapping one of the
// sentinels in errors.go, if q is not prime, if no primitive 2n-th root of
// unity exists mod q, or if n has no inverse mod q. A returned error
// implies no *Tables value: there is no partially-initialized state to
// observe.
func BuildTables(logN int, q SmallModulus) (*Tables, error) {
	if logN < 1 || (1<<uint(logN)) > MaxDegree || (1<<uint(logN)) < MinDegree {
		return nil, fmt.Errorf("ring: logN=%d: %w", logN, ErrDegreeOutOfRange)
	}
	if q.IsZero() {
		return nil, fmt.Errorf("ring: zero modulus: %w", ErrNotPrime)
	}

	n := 1 << uint(logN)
	twoN := uint64(2 * n)

	root, ok := tryMinimalPrimitiveRoot(twoN, q)
	if !ok {
		if !IsPrime(q.value) {
			return nil, fmt.Errorf("ring: q=%d: %w", q.value, ErrNotPrime)
		}
		return nil, fmt.Errorf("ring: q=%d, n=%d: %w", q.value, n, ErrNoPrimitiveRoot)
	}

	invRoot, ok := tryInvMod(root, q)
	if !ok {
		return nil, fmt.Errorf("ring: root=%d, q=%d: %w", root, q.value, ErrNoInverse)
	}

	t := &Tables{logN: logN, n: n, modulus: q, root: root}

	t.rootPowers = powersInBitReversedOrder(root, n, logN, q)
	t.scaledRootPowers = scaleAll(t.rootPowers, q)

	invRootPowersStraight := powersInBitReversedOrder(invRoot, n, logN, q)

	t.invRootPowersDivTwo = make([]uint64, n)
	for i, v := range invRootPowersStraight {
		t.invRootPowersDivTwo[i] = div2Mod(v, q)
	}
	t.scaledInvRootPowersDivTwo = scaleAll(t.invRootPowersDivTwo, q)

	t.invRootPowers = reorderForInverseTransform(invRootPowersStraight)
	scaledInvRootPowersStraight := scaleAll(invRootPowersStraight, q)
	t.scaledInvRootPowers = reorderForInverseTransform(scaledInvRootPowersStraight)

	invDegree, ok := tryInvMod(uint64(n), q)
	if !ok {
		return nil, fmt.Errorf("ring: n=%d, q=%d: %w", n, q.value, ErrNoInverse)
	}
	t.invDegreeModulo = invDegree

	t.initialized = true
	return t, nil
}

// powersInBitReversedOrder fills a length-n table such that
// dst[bitrev(i, logN)] = root^i mod q, for i = 0..n-1, computed
// incrementally as spec §4.3 step 4 and the original source's
// ntt_powers_of_primitive_root describe: walk i upward, multiplying the
// running power by root once per step, and store each result at the
// bit-reversal of the *next* index, leaving the zeroth slot equal to 1.
func powersInBitReversedOrder(root uint64, n, logN int, q SmallModulus) []uint64 {
	dst := make([]uint64, n)
	dst[0] = 1 % q.value
	acc := dst[0]
	for i := 1; i < n; i++ {
		acc = mulMod(acc, root, q)
		dst[bitReverse(uint64(i), logN)] = acc
	}
	return dst
}

// scaleAll returns the Shoup-scaled companion of every entry in src.
func scaleAll(src []uint64, q SmallModulus) []uint64 {
	dst := make([]uint64, len(src))
	for i, v := range src {
		dst[i] = scaleShoup(v, q)
	}
	return dst
}

// reorderForInverseTransform copies the straight bit-reversed inverse-root
// table into the access pattern InvNTTLazy walks sequentially, per spec
// §4.5 and the original source's reorder pass: for each block size
// m = n/2, n/4, ..., 1, the m entries straight[m:2m) land at consecutive
// positions starting at offset 1. Position 0 is left zero, reserved for
// the final merge layer's root, which InvNTTLazy reads from the last
// index the main loop reaches — never from position 0 itself.
func reorderForInverseTransform(straight []uint64) []uint64 {
	n := len(straight)
	dst := make([]uint64, n)
	pos := 1
	for m := n / 2; m > 0; m >>= 1 {
		copy(dst[pos:pos+m], straight[m:2*m])
		pos += m
	}
	return dst
}
