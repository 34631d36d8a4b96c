package textproc

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Document and span ids are 26 Crockford Base32 characters with a
// millisecond timestamp prefix, so ids sort by creation time. A
// per-millisecond sequence keeps ids minted in a tight loop unique,
// which matters when every span of a document gets one.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var idState struct {
	sync.Mutex
	ts  uint64
	seq uint16
}

// NewID returns a fresh unique id.
func NewID() string {
	idState.Lock()
	ts := uint64(time.Now().UnixMilli())
	if ts == idState.ts {
		idState.seq++
	} else {
		idState.ts = ts
		idState.seq = 0
	}
	seq := idState.seq
	idState.Unlock()

	var b [16]byte
	// 48-bit timestamp and 16-bit sequence pack into the first 8 bytes;
	// the rest is random.
	binary.BigEndian.PutUint64(b[:8], ts<<16|uint64(seq))
	rand.Read(b[8:])
	return encodeBase32(b)
}

// encodeBase32 renders 128 bits as 26 Crockford characters, consuming
// five bits at a time. A two-bit zero pad up front makes 130 bits, so
// the groups come out even.
func encodeBase32(b [16]byte) string {
	var out [26]byte
	var acc uint
	nbits := 2
	j := 0
	for _, by := range b {
		acc = acc<<8 | uint(by)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			out[j] = crockford[(acc>>nbits)&31]
			j++
		}
	}
	return string(out[:])
}
