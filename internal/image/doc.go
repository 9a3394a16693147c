// Package image provides the texel storage used by the software backend.
//
// A [Buf] is an RGBA8 buffer with the memory layout and alpha-premultiplied
// semantics of *image.RGBA. It doubles as an *image.RGBA view, so it can be
// handed to golang.org/x/image/draw scalers without copying. [Pool] recycles
// buffers of identical size; the software backend uses it for transient
// render targets that live for a single command list execution.
package image
