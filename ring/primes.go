package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers
// below 2^64. Adapted from the teacher's IsPrime, which delegates to the
// same big.Int primitive.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// nextNTTPrime returns the smallest prime strictly greater than q that is
// congruent to 1 mod twoN, i.e. usable as the modulus of a negacyclic NTT
// of degree twoN/2. Multi-prime RNS chains (GenerateNTTPrimesQ/P in the
// teacher) are out of this core's scope, which handles a single modulus;
// this keeps only the single-prime search. It is unexported: spec §6's
// external interface has no prime-search operation, and its only caller
// is the test suite, which uses it to derive a large NTT-friendly
// modulus rather than hardcoding one.
func nextNTTPrime(q uint64, twoN int) (uint64, error) {
	step := uint64(twoN)
	next := q - (q % step) + 1
	if next <= q {
		next += step
	}
	for !IsPrime(next) {
		next += step
		if bits.Len64(next) > maxModulusBits {
			return 0, fmt.Errorf("ring: no %d-bit NTT-friendly prime found above %d", maxModulusBits, q)
		}
	}
	return next, nil
}
