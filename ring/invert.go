package ring

import "math/big"

// tryInvMod returns a^-1 mod q.value and true, or (0, false) if a and
// q.value are not coprime. Table construction calls this at most twice
// per build (for the primitive root and for n), so reaching for
// math/big.Int.ModInverse here — as the teacher's ring/int.go does for
// its generic Int.Inv — is simpler and safer than hand-rolling extended
// Euclid for a call that never sits on a hot path.
func tryInvMod(a uint64, q SmallModulus) (uint64, bool) {
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(q.value))
	if inv == nil {
		return 0, false
	}
	return inv.Uint64(), true
}
