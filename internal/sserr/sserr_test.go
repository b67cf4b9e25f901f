package sserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindConfig, "config"},
		{KindKeypair, "keypair"},
		{KindRPC, "rpc"},
		{KindToken, "token"},
		{KindFFI, "ffi"},
		{KindUnknown, "unknown"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(KindRPC, "send transaction", nil))
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(KindRPC, "get latest blockhash", errors.New("connection refused"))
	assert.Equal(t, "rpc error: get latest blockhash: connection refused", err.Error())

	bare := New(KindToken, "name is empty")
	assert.Equal(t, "token error: name is empty", bare.Error())
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindKeypair, "derive payer", cause)

	assert.Equal(t, KindKeypair, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfThroughFmtWrap(t *testing.T) {
	inner := Wrap(KindRPC, "send transaction", errors.New("timeout"))
	outer := fmt.Errorf("mint token: %w", inner)

	assert.Equal(t, KindRPC, KindOf(outer))
	assert.True(t, IsKind(outer, KindRPC))
	assert.False(t, IsKind(outer, KindToken))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("missing SOLANA_RPC_URL")
	err := Wrap(KindConfig, "load config", cause)
	require.ErrorIs(t, err, cause)
}

func TestIsKindNestedKinds(t *testing.T) {
	// A token operation that failed because of an RPC error keeps both
	// classifications visible in the chain.
	rpcErr := Wrap(KindRPC, "send transaction", errors.New("node unavailable"))
	tokenErr := Wrap(KindToken, "create token", rpcErr)

	assert.Equal(t, KindToken, KindOf(tokenErr))
	assert.True(t, IsKind(tokenErr, KindRPC))
}
