package token

import (
	"errors"
	"strings"
)

// CreateTokenInput carries the parameters for a new fungible mint.
type CreateTokenInput struct {
	URI  string // metadata pointer, e.g. https://.../token.json
	Name string // display name recorded on chain
	// Decimals is passed through to the mint as-is. Nodes reject values
	// the token program does not support; this layer does not clamp.
	Decimals uint8
}

// Errors
var (
	ErrEmptyURI           = errors.New("token: empty uri")
	ErrURITooLong         = errors.New("token: uri too long")
	ErrEmptyName          = errors.New("token: empty name")
	ErrNameTooLong        = errors.New("token: name too long")
	ErrInvalidMintAddress = errors.New("token: invalid mint address")
	ErrInvalidOwner       = errors.New("token: invalid owner address")
)

// Policy (on-chain metadata account limits)
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200
)

// Constructors

func NewCreateTokenInput(uri, name string, decimals uint8) (CreateTokenInput, error) {
	in := CreateTokenInput{
		URI:      strings.TrimSpace(uri),
		Name:     strings.TrimSpace(name),
		Decimals: decimals,
	}
	if err := in.Validate(); err != nil {
		return CreateTokenInput{}, err
	}
	return in, nil
}

// Validation

func (in CreateTokenInput) Validate() error {
	if in.URI == "" {
		return ErrEmptyURI
	}
	if len(in.URI) > MaxURILength {
		return ErrURITooLong
	}
	if in.Name == "" {
		return ErrEmptyName
	}
	if len(in.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
