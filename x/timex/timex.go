package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Since16 returns the milliseconds elapsed from last to now on a 16-bit
// free-running counter. A counter that passed its maximum since last is
// handled by the unsigned wrap.
func Since16(now, last uint16) uint16 { return now - last }

// Trunc16 keeps the low 16 bits of a millisecond reading.
func Trunc16(ms int64) uint16 { return uint16(uint64(ms)) }
