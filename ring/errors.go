package ring

import "errors"

// Sentinel errors returned by BuildTables, matching the error taxonomy of
// spec §7. Callers distinguish them with errors.Is.
var (
	// ErrDegreeOutOfRange is returned when logN falls outside
	// [log2(MinDegree), log2(MaxDegree)].
	ErrDegreeOutOfRange = errors.New("ring: coefficient-count power out of range")

	// ErrNotPrime is returned when the modulus is not prime.
	ErrNotPrime = errors.New("ring: modulus is not prime")

	// ErrNoPrimitiveRoot is returned when no primitive 2n-th root of
	// unity exists modulo q (q is prime but q != 1 mod 2n, or the search
	// space was exhausted).
	ErrNoPrimitiveRoot = errors.New("ring: no primitive 2n-th root of unity exists for this modulus")

	// ErrNoInverse is returned when n has no inverse modulo q. This can
	// only happen if q divides n, which primality plus q > n already
	// rules out, but BuildTables still checks it explicitly per spec §4.3.
	ErrNoInverse = errors.New("ring: degree has no modular inverse")
)
