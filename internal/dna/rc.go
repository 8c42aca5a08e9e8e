// internal/dna/rc.go
package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// ComplementBase maps one symbol to its complement. Unknown symbols map
// to 'N' rather than a zero byte so callers never emit NULs.
func ComplementBase(b byte) byte {
	c := complement[b]
	if c == 0 {
		c = 'N'
	}
	return c
}

// Complement returns the base-wise complement of seq, same orientation.
func Complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = ComplementBase(seq[i])
	}
	return string(out)
}

// Reverse returns seq in reverse order.
func Reverse(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = seq[n-1-i]
	}
	return string(out)
}

// RevComp returns the reverse complement of seq, IUPAC symbols included.
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = ComplementBase(seq[n-1-i])
	}
	return string(out)
}
