// Package fftmul implements transform-based multiplication of decimal-limb
// buffers: it packs each operand's limbs into a complex sample sequence
// (low/high base-10^4 half-limb split), drives internal/transform's FFT
// engine, and carries the resulting real convolution back out into
// base-10^8 limbs.
package fftmul
