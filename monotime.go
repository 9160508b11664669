package typefaces

import _ "unsafe"
//go:linkname monoNanoTime runtime.nanotime

//go:noescape
func monoNanoTime() int64
