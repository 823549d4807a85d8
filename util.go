package bn256

import "math/big"

// bitsOf returns the binary digits of k, most significant first. k = 0
// yields an empty slice.
func bitsOf(k *big.Int) []byte {
	n := k.BitLen()
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = byte(k.Bit(n - 1 - i))
	}
	return bits
}
