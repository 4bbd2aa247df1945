// Package divide implements division and modulus of decimal-limb
// buffers: schoolbook long division below the bruteforce threshold, and a
// Newton-iteration reciprocal-based division above it, each grounded on
// the corresponding branch of UnsignedInteger::divisionAndModulus.
package divide
