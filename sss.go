// Package sss creates and mints Solana fungible tokens on behalf of a
// configured payer wallet. It is the Go surface behind the C shared
// library (see cshared/); Go programs can also import it directly.
//
// Every operation is self-contained: it reads configuration from the
// environment, resolves the payer keypair, opens an RPC client, runs a
// single transaction pipeline, and releases the key material before
// returning. Nothing is cached between calls, so concurrent calls do
// not share state.
//
// Required environment:
//
//	SOLANA_RPC_URL            JSON-RPC endpoint (e.g. https://api.devnet.solana.com)
//	PAYER_MNEMONIC            BIP-39 phrase for the payer keypair, or
//	SOLANA_PAYER_KEY_SECRET   Secret Manager resource with a keypair JSON
//
// Optional:
//
//	SSS_METADATA_UPLOAD_URL   off-chain metadata upload service
//	SSS_METADATA_UPLOAD_KEY   bearer token for the upload service
//	SSS_LOG_LEVEL             enables stderr logging (debug/info/warn/error)
package sss

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/application/usecase"
	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/config"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/metadata"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/solana"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/wallet"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// Errors callers can test for with errors.Is.
var (
	ErrInvalidMintAddress = tokendom.ErrInvalidMintAddress
	ErrInvalidOwner       = tokendom.ErrInvalidOwner
	ErrEmptyURI           = tokendom.ErrEmptyURI
	ErrEmptyName          = tokendom.ErrEmptyName
)

// CreateTokenResult is the outcome of a successful CreateToken call.
type CreateTokenResult struct {
	// Signature of the submitted transaction, base58.
	Signature string
	// MintAddress of the new token, base58.
	MintAddress string
}

// DigitalAsset is one asset owned by a wallet, as reported by the RPC
// provider's DAS (Digital Asset Standard) index.
type DigitalAsset struct {
	ID        string
	Interface string
	Name      string
	Symbol    string
	URI       string
	Owner     string
	Decimals  uint8
	Supply    uint64
}

// TokenMetadata is the off-chain JSON document describing a token,
// in the Metaplex fungible standard shape.
type TokenMetadata struct {
	Name        string
	Symbol      string
	Description string
	Image       string
	ExternalURL string
	Attributes  []TokenAttribute
}

// TokenAttribute is one display trait of a token.
type TokenAttribute struct {
	TraitType string
	Value     string
}

// CreateToken creates a new fungible token: it allocates a fresh mint
// account, initializes it with the given decimals, and attaches
// on-chain metadata pointing at uri. The payer funds the transaction
// and becomes mint, freeze, and update authority. The mint keypair is
// discarded after submission; only its public address is returned.
func CreateToken(ctx context.Context, uri, name string, decimals uint8) (*CreateTokenResult, error) {
	in, err := tokendom.NewCreateTokenInput(uri, name, decimals)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "create token", err)
	}

	eng, _, release, err := newEngine(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	res, err := eng.CreateToken(ctx, in)
	if err != nil {
		return nil, err
	}
	return &CreateTokenResult{
		Signature:   res.Signature,
		MintAddress: res.Mint.ToBase58(),
	}, nil
}

// CreateTokenWithMetadata uploads the metadata document to the
// configured upload service and creates a token whose URI points at
// the stored copy. It is UploadTokenMetadata followed by CreateToken
// in one call; the token is named after meta.Name.
func CreateTokenWithMetadata(ctx context.Context, meta TokenMetadata, decimals uint8) (*CreateTokenResult, error) {
	eng, cfg, release, err := newEngine(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	up := metadata.NewHTTPUploader(cfg.MetadataUploadURL, cfg.MetadataUploadKey)
	res, err := eng.CreateTokenFromMetadata(ctx, up, meta.domain(), decimals)
	if err != nil {
		return nil, err
	}
	return &CreateTokenResult{
		Signature:   res.Signature,
		MintAddress: res.Mint.ToBase58(),
	}, nil
}

// CreateTokenWithMint is CreateToken with a caller-supplied mint
// keypair, for flows that need the mint address ahead of submission.
// The caller keeps ownership of the keypair and its cleanup.
func CreateTokenWithMint(ctx context.Context, mint types.Account, uri, name string, decimals uint8) (string, error) {
	in, err := tokendom.NewCreateTokenInput(uri, name, decimals)
	if err != nil {
		return "", sserr.Wrap(sserr.KindToken, "create token", err)
	}

	eng, _, release, err := newEngine(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	res, err := eng.CreateTokenWithMint(ctx, mint, in)
	if err != nil {
		return "", err
	}
	return res.Signature, nil
}

// MintToken mints amount base units of an existing token to the
// owner's associated token account, creating that account when it does
// not exist yet. ownerAddress may be empty, in which case the tokens
// go to the payer's own wallet. The payer must hold mint authority.
func MintToken(ctx context.Context, mintAddress, ownerAddress string, amount uint64) (string, error) {
	mint, err := ParsePublicKey(mintAddress)
	if err != nil {
		return "", sserr.Wrap(sserr.KindToken, "parse mint address", tokendom.ErrInvalidMintAddress)
	}
	var owner *common.PublicKey
	if ownerAddress != "" {
		o, err := ParsePublicKey(ownerAddress)
		if err != nil {
			return "", sserr.Wrap(sserr.KindToken, "parse owner address", tokendom.ErrInvalidOwner)
		}
		owner = &o
	}

	eng, _, release, err := newEngine(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	return eng.MintToken(ctx, usecase.MintSupplyInput{Mint: mint, Owner: owner, Amount: amount})
}

// FetchAssetsByOwner lists the digital assets a wallet owns via the
// RPC provider's DAS index. It is read-only and does not touch the
// payer keypair. page starts at 1; limit is capped at 1000.
func FetchAssetsByOwner(ctx context.Context, ownerAddress string, page, limit int) ([]DigitalAsset, error) {
	owner, err := ParsePublicKey(ownerAddress)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "parse owner address", tokendom.ErrInvalidOwner)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	chain, err := solana.Connect(cfg.RPCURL)
	if err != nil {
		return nil, err
	}

	assets, err := chain.AssetsByOwner(ctx, owner, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]DigitalAsset, len(assets))
	for i, a := range assets {
		out[i] = DigitalAsset{
			ID:        a.ID,
			Interface: a.Interface,
			Name:      a.Name,
			Symbol:    a.Symbol,
			URI:       a.URI,
			Owner:     a.Owner,
			Decimals:  a.Decimals,
			Supply:    a.Supply,
		}
	}
	return out, nil
}

// UploadTokenMetadata posts the metadata document to the configured
// upload service and returns the public URI it was stored under. Use
// the URI as the uri argument of CreateToken.
func UploadTokenMetadata(ctx context.Context, meta TokenMetadata) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	up := metadata.NewHTTPUploader(cfg.MetadataUploadURL, cfg.MetadataUploadKey)
	return up.UploadTokenMetadata(ctx, meta.domain())
}

func (m TokenMetadata) domain() tokendom.Metadata {
	attrs := make([]tokendom.Attribute, len(m.Attributes))
	for i, a := range m.Attributes {
		attrs[i] = tokendom.Attribute{TraitType: a.TraitType, Value: a.Value}
	}
	return tokendom.Metadata{
		Name:        m.Name,
		Symbol:      m.Symbol,
		Description: m.Description,
		Image:       m.Image,
		ExternalURL: m.ExternalURL,
		Attributes:  attrs,
	}
}

// ParsePublicKey decodes a base58 Solana address, rejecting anything
// that is not exactly 32 bytes.
func ParsePublicKey(s string) (common.PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("parse public key: %w", err)
	}
	if len(raw) != 32 {
		return common.PublicKey{}, fmt.Errorf("parse public key: got %d bytes, want 32", len(raw))
	}
	return common.PublicKeyFromBytes(raw), nil
}

// newEngine performs the per-call wiring: configuration, payer keypair,
// RPC client. release zeroes the payer key and must run on every path.
func newEngine(ctx context.Context) (*usecase.TokenUsecase, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	payer, err := wallet.LoadPayer(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	chain, err := solana.Connect(cfg.RPCURL)
	if err != nil {
		wallet.Zero(&payer)
		return nil, config.Config{}, nil, err
	}
	eng := usecase.NewTokenUsecase(chain, payer)
	return eng, cfg, func() { wallet.Zero(&payer) }, nil
}
