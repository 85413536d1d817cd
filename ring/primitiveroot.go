package ring

// tryMinimalPrimitiveRoot searches for the numerically smallest
// g in [2, q.value-1] such that g^twoN = 1 mod q but g^(twoN/2) != 1 mod q,
// i.e. the smallest element of order exactly twoN. It reports (0, false)
// if q is not prime, if twoN does not divide q-1, or if the search space
// is exhausted without a hit.
//
// This follows spec §4.2 and the original source's contract for
// try_minimal_primitive_root directly: unlike the teacher's PrimitiveRoot
// (which factors q-1 and tests each factor to certify primitivity), the
// original SEAL routine performs no factorization — it certifies order
// twoN by the two-exponent check below, which is sufficient because twoN
// is a power of two: the only proper divisor of twoN whose vanishing must
// be excluded is twoN/2.
func tryMinimalPrimitiveRoot(twoN uint64, q SmallModulus) (uint64, bool) {
	if !IsPrime(q.value) {
		return 0, false
	}
	if q.value%twoN != 1 {
		return 0, false
	}
	halfN := twoN / 2
	for g := uint64(2); g < q.value; g++ {
		if modExp(g, twoN, q) != 1 {
			continue
		}
		if modExp(g, halfN, q) == 1 {
			continue
		}
		return g, true
	}
	return 0, false
}
