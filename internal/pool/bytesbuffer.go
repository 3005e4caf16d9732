// Package pool provides buffer recycling helpers. The hierarchy
// readers take one buffer per line read, so pooling keeps allocation
// pressure flat no matter how large the dump file is.
package pool

import (
	"bytes"
	"sync"

	"github.com/geohier/ghier/internal/constants"
)

// BytesBuffer pools line buffers. Buffers start out with a capacity
// large enough for typical hierarchy dump lines and grow on demand.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, constants.LineBufferInitialCapacity))
	},
}

// RecycleBytesBuffer resets the buffer and puts it back into the pool.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
