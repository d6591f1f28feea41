package numlit

// DigitValue converts ch to its numeric value under base (2, 8, 10 or 16).
// It is the single authority on digit range validity: a decimal digit whose
// value is >= base is rejected here, not by the caller's accumulation.
func DigitValue(ch byte, base int) (uint64, bool) {
	var v int
	switch {
	case ch >= '0' && ch <= '9':
		v = int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		v = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		v = int(ch-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return uint64(v), true
}

// PrefixBase maps a radix prefix character (the one following a leading
// zero) to its base.
func PrefixBase(ch byte) (int, bool) {
	switch ch {
	case 'b':
		return 2, true
	case 'o':
		return 8, true
	case 'x':
		return 16, true
	}
	return 0, false
}
