// Package prime provides the primality helpers used by the
// distribution sequence generator.
package prime

import "sync"

// largestBelow results keyed by modulus. The generator asks for the
// same modulus on every encode and decode of a given QR version.
var cache sync.Map

// IsPrime reports whether n is prime, by trial division up to √n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// LargestBelow returns the largest prime strictly smaller than m.
// When no prime exists below m it returns 2.
func LargestBelow(m int) int {
	if v, ok := cache.Load(m); ok {
		return v.(int)
	}
	p := 2
	for n := m - 1; n >= 3; n-- {
		if IsPrime(n) {
			p = n
			break
		}
	}
	cache.Store(m, p)
	return p
}
