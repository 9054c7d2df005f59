// Package conv formats integers without fmt or strconv for the MCU
// diagnostics.
package conv

// Itoa writes n in base 10 to the end of buf and returns that tail. A
// 20-byte buffer fits any int64.
func Itoa(buf []byte, n int64) []byte {
	if n < 0 {
		b := Utoa(buf, uint64(-n))
		i := len(buf) - len(b)
		if i == 0 {
			return b
		}
		buf[i-1] = '-'
		return buf[i-1:]
	}
	return Utoa(buf, uint64(n))
}

// Utoa writes n in base 10 to the end of buf and returns that tail.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf
	}
	if n == 0 {
		buf[i-1] = '0'
		return buf[i-1:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return buf[i:]
}
