// Package transform implements the in-place, split-radix-style complex FFT
// pair (decimation-in-frequency forward, decimation-in-time inverse) that
// the FFT multiplier drives, along with the Hermitian-symmetric pointwise
// product that lets two real operand sequences share a single complex
// transform. An Engine owns its twiddle-factor cache (the complex scratch
// buffers belong to internal/fftmul's Multiplier); it is not safe for concurrent use by multiple goroutines, matching the
// per-owner-instance thread model every caller of this package must honor.
package transform
