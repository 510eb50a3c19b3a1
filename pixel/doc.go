// Package pixel implements the packed pixel formats used by frame buffers.
//
// The formats are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces. [ABGRImage] is the 32-bit grid the renderer writes
// into; [PackedImage] covers the bit-field layouts found on framebuffer devices.
package pixel
