// cshared/bridge.go
//
// Pure-Go half of the C bridge: return-code tables, error mapping, and
// output-buffer rendering. Everything that touches C types lives in
// main.go; keeping this half free of cgo keeps it testable with plain
// go test.
package main

import (
	"errors"

	sss "github.com/LD-Smart-Supply/sss-shared-lib"
)

const rcOK = 0

// create_token return codes. The table is a stable contract with C
// callers; -4 and -5 are reserved by mint_token.
const (
	rcCreateNullPointer     = -1
	rcCreateBadURIEncoding  = -2
	rcCreateBadNameEncoding = -3
	rcCreateSignatureBuffer = -6
	rcCreateMintBuffer      = -7
	rcCreateFailed          = -8
)

// mint_token return codes.
const (
	rcMintNullPointer     = -1
	rcMintBadMintAddress  = -2
	rcMintBadOwnerAddress = -3
	rcMintSignatureBuffer = -4
	rcMintFailed          = -5
)

// bufferFits reports whether value plus its NUL terminator fits in
// capacity bytes. A capacity of zero or less never fits anything.
func bufferFits(value string, capacity int) bool {
	return capacity > 0 && len(value)+1 <= capacity
}

// writeCString copies value and a trailing NUL into dst. It reports
// false and leaves dst untouched when the value does not fit.
func writeCString(dst []byte, value string) bool {
	if !bufferFits(value, len(dst)) {
		return false
	}
	n := copy(dst, value)
	dst[n] = 0
	return true
}

// writeCreateOutputs renders both create_token outputs. Neither buffer
// is touched unless both values fit, so a caller never sees partial
// output next to a non-zero code.
func writeCreateOutputs(sigBuf, mintBuf []byte, signature, mintAddress string) int {
	if !bufferFits(signature, len(sigBuf)) {
		return rcCreateSignatureBuffer
	}
	if !bufferFits(mintAddress, len(mintBuf)) {
		return rcCreateMintBuffer
	}
	writeCString(sigBuf, signature)
	writeCString(mintBuf, mintAddress)
	return rcOK
}

// writeMintOutput renders the mint_token signature.
func writeMintOutput(sigBuf []byte, signature string) int {
	if !writeCString(sigBuf, signature) {
		return rcMintSignatureBuffer
	}
	return rcOK
}

// mintErrorCode translates a pipeline error into the mint_token table.
func mintErrorCode(err error) int {
	switch {
	case err == nil:
		return rcOK
	case errors.Is(err, sss.ErrInvalidMintAddress):
		return rcMintBadMintAddress
	case errors.Is(err, sss.ErrInvalidOwner):
		return rcMintBadOwnerAddress
	default:
		return rcMintFailed
	}
}
