package qrcode

// GF(256) exponential/log tables over the primitive polynomial 0x11D,
// built once at package init and read-only afterward — safe to share
// across concurrent encode calls. Grounded on the exp/log table
// construction in AshokShau-qrcode's reedsolomon.go, generalised to also
// expose power() and generator-polynomial construction.
var (
	gfExp [256]int
	gfLog [256]int
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = x
		gfLog[x] = i
		x <<= 1
		if x >= 256 {
			x ^= 0x11D
		}
	}
	gfExp[255] = gfExp[0]
}

func gfMultiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(gfLog[a]+gfLog[b])%255]
}

func gfPower(a, n int) int {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	return gfExp[(gfLog[a]*n)%255]
}

// generatorPolynomial builds the degree-n generator polynomial
// Π (x − 2^i), i = 0..n-1, as coefficients highest-degree first, with
// n+1 terms.
func generatorPolynomial(n int) []int {
	gen := make([]int, 1, n+1)
	gen[0] = 1
	for i := 0; i < n; i++ {
		root := gfPower(2, i)
		next := make([]int, len(gen)+1)
		for j, c := range gen {
			next[j] ^= c
			next[j+1] ^= gfMultiply(c, root)
		}
		gen = next
	}
	return gen
}

// reedSolomonRemainder computes the n error-correction codewords for the
// given data codewords, using the degree-n generator polynomial. data must
// be non-empty and len(data)+n must not exceed 255 (the RS bound); both are
// guaranteed by the caller (the version planner never selects a block that
// violates this), so a violation here is an internal inconsistency and
// panics rather than returning an error.
func reedSolomonRemainder(data []byte, n int) []byte {
	if len(data) == 0 {
		panic("qrcode: reed-solomon remainder requested for empty data")
	}
	if len(data)+n > 255 {
		panic("qrcode: reed-solomon data+ec exceeds the 255-codeword field bound")
	}
	gen := generatorPolynomial(n)
	buf := make([]int, len(data)+n)
	for i, v := range data {
		buf[i] = int(v)
	}
	for i := 0; i < len(data); i++ {
		coef := buf[i]
		if coef == 0 {
			continue
		}
		for j := 1; j < len(gen); j++ {
			buf[i+j] ^= gfMultiply(gen[j], coef)
		}
	}
	ec := make([]byte, n)
	for i := 0; i < n; i++ {
		ec[i] = byte(buf[len(data)+i])
	}
	return ec
}
