package ring

// InvNTTLazy computes the inverse negacyclic NTT of a in place, per spec
// §4.5. len(a) must equal t.N(); a's entries must lie in [0, 2q) — one
// conditional subtraction in inverseButterfly and mergeFinalLayer assumes
// this range, and an entry in [2q, 4q) would leave sum = x+y above 2q
// after that single subtraction. On return, a holds the coefficients in
// natural order, already multiplied by n^-1 mod q so that
// InvNTTLazy(NTTLazy(a)) = a (mod q), with entries in [0, 2q).
//
// The main butterfly loop runs one layer short of a full network: the
// last layer (m == 2) is peeled off into the merge loop below, which
// fuses the n^-1 scaling into the same Shoup multiply that would
// otherwise apply the final layer's root, following the original
// source's inverse_ntt_negacyclic_harvey_lazy.
func InvNTTLazy(a []uint64, t *Tables) {
	if !t.initialized {
		panic("ring: InvNTTLazy called with uninitialized Tables")
	}

	n := t.n
	q := t.modulus.value
	twoQ := q << 1

	tt := 1
	rootIndex := 1
	for m := n; m > 2; m >>= 1 {
		h := m >> 1
		j1 := 0
		if tt >= 4 {
			for i := 0; i < h; i++ {
				w := t.invRootPowers[rootIndex]
				wp := t.scaledInvRootPowers[rootIndex]
				rootIndex++

				j2 := j1 + tt
				for j := j1; j < j2; j += 4 {
					inverseButterfly4(a, j, tt, w, wp, q, twoQ)
				}
				j1 += tt << 1
			}
		} else {
			for i := 0; i < h; i++ {
				w := t.invRootPowers[rootIndex]
				wp := t.scaledInvRootPowers[rootIndex]
				rootIndex++

				j2 := j1 + tt
				for j := j1; j < j2; j++ {
					a[j], a[j+tt] = inverseButterfly(a[j], a[j+tt], w, wp, q, twoQ)
				}
				j1 += tt << 1
			}
		}
		tt <<= 1
	}

	mergeFinalLayer(a, t, rootIndex, q, twoQ)
}

// inverseButterfly is the inverse Harvey butterfly of spec §4.5: X, Y in
// [0, 2q) enter, X', Y' in [0, 2q) leave, with X' = X + Y (mod 2q) and
// Y' = W*(X - Y) mod q, lazily reduced.
func inverseButterfly(x, y, w, wp, q, twoQ uint64) (uint64, uint64) {
	sum := x + y
	if sum >= twoQ {
		sum -= twoQ
	}
	diff := x + twoQ - y
	return sum, shoupMulLazy(diff, w, wp, q)
}

// inverseButterfly4 applies inverseButterfly to four adjacent (X, Y)
// pairs starting at offset j, matching the original source's unroll-by-4
// inner loop used whenever the butterfly stride is at least 4.
func inverseButterfly4(a []uint64, j, tt int, w, wp, q, twoQ uint64) {
	a[j], a[j+tt] = inverseButterfly(a[j], a[j+tt], w, wp, q, twoQ)
	a[j+1], a[j+1+tt] = inverseButterfly(a[j+1], a[j+1+tt], w, wp, q, twoQ)
	a[j+2], a[j+2+tt] = inverseButterfly(a[j+2], a[j+2+tt], w, wp, q, twoQ)
	a[j+3], a[j+3+tt] = inverseButterfly(a[j+3], a[j+3+tt], w, wp, q, twoQ)
}

// mergeFinalLayer performs the last butterfly layer (m == 2, block size
// n/2) fused with the n^-1 scaling: X'' = n^-1*(X+Y), Y'' = n^-1*W*(X-Y),
// where W is the single root the main loop left unconsumed at rootIndex.
func mergeFinalLayer(a []uint64, t *Tables, rootIndex int, q, twoQ uint64) {
	half := t.n / 2
	w := t.invRootPowers[rootIndex]

	invN := t.invDegreeModulo
	invNp := scaleShoup(invN, t.modulus)
	invNW := mulMod(invN, w, t.modulus)
	invNWp := scaleShoup(invNW, t.modulus)

	for j := 0; j < half; j++ {
		x := a[j]
		y := a[j+half]

		sum := x + y
		if sum >= twoQ {
			sum -= twoQ
		}
		diff := x + twoQ - y

		a[j] = shoupMulLazy(sum, invN, invNp, q)
		a[j+half] = shoupMulLazy(diff, invNW, invNWp, q)
	}
}
