package ring

// NTTLazy computes the forward negacyclic NTT of a in place, per spec
// §4.4. len(a) must equal t.N(); a's entries must lie in [0, 4q). On
// return, a holds the transform in bit-reversed order with entries in
// [0, 4q): A[j] = a(psi^(2*bitrev(j)+1)) mod q, where psi is t.Root().
//
// This is the hot path of the whole core: it performs no bounds or range
// checking on its input, per spec §4.6 — presenting an out-of-range
// buffer to an initialized Tables is a caller error, not a runtime
// condition this function detects.
func NTTLazy(a []uint64, t *Tables) {
	if !t.initialized {
		panic("ring: NTTLazy called with uninitialized Tables")
	}

	n := t.n
	q := t.modulus.value
	twoQ := q << 1

	tt := n >> 1
	for m := 1; m < n; m <<= 1 {
		j1 := 0
		if tt >= 4 {
			for i := 0; i < m; i++ {
				j2 := j1 + tt
				w := t.rootPowers[m+i]
				wp := t.scaledRootPowers[m+i]

				for j := j1; j < j2; j += 4 {
					forwardButterfly4(a, j, tt, w, wp, q, twoQ)
				}
				j1 += tt << 1
			}
		} else {
			for i := 0; i < m; i++ {
				j2 := j1 + tt
				w := t.rootPowers[m+i]
				wp := t.scaledRootPowers[m+i]

				for j := j1; j < j2; j++ {
					a[j], a[j+tt] = forwardButterfly(a[j], a[j+tt], w, wp, q, twoQ)
				}
				j1 += tt << 1
			}
		}
		tt >>= 1
	}
}

// forwardButterfly is the Harvey butterfly of spec §4.4: X, Y in [0, 4q)
// enter, X', Y' in [0, 4q) leave, with X', Y' = X + W*Y, X - W*Y (mod q).
func forwardButterfly(x, y, w, wp, q, twoQ uint64) (uint64, uint64) {
	tx := x
	if tx >= twoQ {
		tx -= twoQ
	}
	prod := shoupMulLazy(y, w, wp, q)
	return tx + prod, tx + twoQ - prod
}

// forwardButterfly4 applies forwardButterfly to four adjacent (X, Y) pairs
// starting at offset j, matching the original source's unroll-by-4 inner
// loop used whenever the butterfly stride is at least 4.
func forwardButterfly4(a []uint64, j, tt int, w, wp, q, twoQ uint64) {
	a[j], a[j+tt] = forwardButterfly(a[j], a[j+tt], w, wp, q, twoQ)
	a[j+1], a[j+1+tt] = forwardButterfly(a[j+1], a[j+1+tt], w, wp, q, twoQ)
	a[j+2], a[j+2+tt] = forwardButterfly(a[j+2], a[j+2+tt], w, wp, q, twoQ)
	a[j+3], a[j+3+tt] = forwardButterfly(a[j+3], a[j+3+tt], w, wp, q, twoQ)
}
