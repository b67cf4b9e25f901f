// cshared/main.go
//
// C entry points of the shared library. Build with
//
//	go build -buildmode=c-shared -o libsss_shared.so ./cshared
//
// and call through include/sss_shared.h. Each exported function checks
// pointers, decodes inputs, runs one blocking token operation, and
// renders the result into caller-owned buffers. Output buffers are
// written only when the return code is 0.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"unicode/utf8"
	"unsafe"

	sss "github.com/LD-Smart-Supply/sss-shared-lib"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
)

// bufferView maps a caller-owned C buffer to a Go slice. Null pointers
// and non-positive capacities map to nil, which no value fits.
func bufferView(p *C.char, n C.int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

// create_token creates a fungible token with on-chain metadata and
// writes the transaction signature and mint address into the caller's
// buffers. Returns 0 on success, otherwise a code from the create
// table in bridge.go.
//
//export create_token
func create_token(uriPtr, namePtr *C.char, decimals C.uchar, signatureOut, mintAddressOut *C.char, signatureLen, mintAddressLen C.int) C.int {
	if uriPtr == nil || namePtr == nil || signatureOut == nil || mintAddressOut == nil {
		return rcCreateNullPointer
	}

	uri := C.GoString(uriPtr)
	if !utf8.ValidString(uri) {
		return rcCreateBadURIEncoding
	}
	name := C.GoString(namePtr)
	if !utf8.ValidString(name) {
		return rcCreateBadNameEncoding
	}

	res, err := sss.CreateToken(context.Background(), uri, name, uint8(decimals))
	if err != nil {
		log.FFI.Error().Err(err).Msg("create_token failed")
		return rcCreateFailed
	}

	code := writeCreateOutputs(
		bufferView(signatureOut, signatureLen),
		bufferView(mintAddressOut, mintAddressLen),
		res.Signature,
		res.MintAddress,
	)
	return C.int(code)
}

// mint_token mints amount base units of an existing token to the
// owner's associated token account (to the payer's own when
// token_owner is null) and writes the transaction signature into the
// caller's buffer. Returns 0 on success, otherwise a code from the
// mint table in bridge.go.
//
//export mint_token
func mint_token(mintStr, tokenOwnerStr *C.char, amount C.uint64_t, signatureOut *C.char, signatureLen C.int) C.int {
	if mintStr == nil || signatureOut == nil {
		return rcMintNullPointer
	}

	mint := C.GoString(mintStr)
	var owner string
	if tokenOwnerStr != nil {
		owner = C.GoString(tokenOwnerStr)
		if owner == "" {
			return rcMintBadOwnerAddress
		}
	}

	sig, err := sss.MintToken(context.Background(), mint, owner, uint64(amount))
	if err != nil {
		log.FFI.Error().Err(err).Msg("mint_token failed")
		return C.int(mintErrorCode(err))
	}

	return C.int(writeMintOutput(bufferView(signatureOut, signatureLen), sig))
}

// free_string releases a string the library allocated and handed to
// the caller by pointer. Safe to call with null. The current exports
// write into caller-owned buffers, so nothing they return needs
// freeing; the symbol stays part of the stable contract.
//
//export free_string
func free_string(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

func main() {}
