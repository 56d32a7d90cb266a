package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers used to encode trajectories before hashing.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}
