//go:build !cgo || gofuzz

package secp256k1

// ConstantTime reports whether private key operations run on libsecp256k1's
// constant-time scalar multiplication. Without cgo they fall back to decred's
// pure Go implementation.
const ConstantTime = false
