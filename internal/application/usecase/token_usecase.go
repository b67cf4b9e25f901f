// internal/application/usecase/token_usecase.go
package usecase

import (
	"context"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/rs/zerolog"

	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// ============================================================
// DTOs
// ============================================================

// CreateTokenResult is the outcome of a successful token creation.
type CreateTokenResult struct {
	Signature string
	Mint      common.PublicKey
}

// MintSupplyInput carries validated parameters for minting additional
// supply. Owner nil mints to the payer's own associated token account.
// Amount is in base units; no decimal scaling happens here.
type MintSupplyInput struct {
	Mint   common.PublicKey
	Owner  *common.PublicKey
	Amount uint64
}

// ============================================================
// TokenUsecase
// ============================================================

// TokenUsecase builds, signs and submits the supported token
// operations. Each instance is bound to one payer keypair and one
// chain client; operations run as a linear pipeline that stops at the
// first error.
type TokenUsecase struct {
	chain  ChainClient
	payer  types.Account
	logger zerolog.Logger
}

// NewTokenUsecase binds the engine to a chain client and payer.
func NewTokenUsecase(chain ChainClient, payer types.Account) *TokenUsecase {
	return &TokenUsecase{
		chain:  chain,
		payer:  payer,
		logger: log.Token,
	}
}

// CreateToken creates a fungible token under a freshly generated mint
// keypair. The mint secret never leaves this call; after the creation
// transaction is signed the payer remains the mint authority.
func (u *TokenUsecase) CreateToken(ctx context.Context, in tokendom.CreateTokenInput) (*CreateTokenResult, error) {
	mint := types.NewAccount()
	defer zeroAccount(&mint)
	return u.CreateTokenWithMint(ctx, mint, in)
}

// CreateTokenFromMetadata uploads the metadata document and then
// creates a token whose on-chain URI points at the stored copy. The
// uploader is passed per call, keeping the engine bound to chain and
// payer only.
func (u *TokenUsecase) CreateTokenFromMetadata(ctx context.Context, uploader MetadataUploader, meta tokendom.Metadata, decimals uint8) (*CreateTokenResult, error) {
	if u == nil || u.chain == nil {
		return nil, sserr.New(sserr.KindToken, "token usecase is not initialized")
	}
	if uploader == nil {
		return nil, sserr.New(sserr.KindToken, "metadata uploader is nil")
	}

	doc, err := meta.JSON()
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "build metadata document", err)
	}
	uri, err := uploader.UploadJSON(ctx, doc)
	if err != nil {
		return nil, err
	}

	in, err := tokendom.NewCreateTokenInput(uri, meta.Name, decimals)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "validate create input", err)
	}
	return u.CreateToken(ctx, in)
}

// CreateTokenWithMint creates a fungible token on the given mint
// keypair: one transaction creating the mint account, initializing it
// with in.Decimals, and attaching the metadata (name, uri). Signed by
// both the mint and the payer.
func (u *TokenUsecase) CreateTokenWithMint(ctx context.Context, mint types.Account, in tokendom.CreateTokenInput) (*CreateTokenResult, error) {
	if u == nil || u.chain == nil {
		return nil, sserr.New(sserr.KindToken, "token usecase is not initialized")
	}
	if err := in.Validate(); err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "validate create input", err)
	}

	metadataPubkey, err := token_metadata.GetTokenMetaPubkey(mint.PublicKey)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "derive metadata account", err)
	}

	mintRent, err := u.chain.MinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return nil, err
	}

	recent, err := u.chain.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	freezeAuth := u.payer.PublicKey

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: []types.Account{mint, u.payer},
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        u.payer.PublicKey,
			RecentBlockhash: recent,
			Instructions: []types.Instruction{
				// 1) create the mint account
				system.CreateAccount(system.CreateAccountParam{
					From:     u.payer.PublicKey,
					New:      mint.PublicKey,
					Owner:    common.TokenProgramID,
					Lamports: mintRent,
					Space:    token.MintAccountSize,
				}),
				// 2) initialize it with the requested decimals
				token.InitializeMint(token.InitializeMintParam{
					Decimals:   in.Decimals,
					Mint:       mint.PublicKey,
					MintAuth:   u.payer.PublicKey,
					FreezeAuth: &freezeAuth,
				}),
				// 3) attach the metadata account
				token_metadata.CreateMetadataAccountV3(
					token_metadata.CreateMetadataAccountV3Param{
						Metadata:                metadataPubkey,
						Mint:                    mint.PublicKey,
						MintAuthority:           u.payer.PublicKey,
						UpdateAuthority:         u.payer.PublicKey,
						Payer:                   u.payer.PublicKey,
						UpdateAuthorityIsSigner: true,
						IsMutable:               true,
						Data: token_metadata.DataV2{
							Name:                 in.Name,
							Symbol:               "",
							Uri:                  in.URI,
							SellerFeeBasisPoints: 0,
							Creators:             nil,
						},
						CollectionDetails: nil,
					},
				),
			},
		}),
	})
	if err != nil {
		return nil, sserr.Wrap(sserr.KindToken, "build create transaction", err)
	}

	sig, err := u.chain.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	u.logger.Info().
		Str("mint", maskShort(mint.PublicKey.ToBase58())).
		Str("signature", maskShort(sig)).
		Uint8("decimals", in.Decimals).
		Msg("token created")

	return &CreateTokenResult{Signature: sig, Mint: mint.PublicKey}, nil
}

// MintToken mints in.Amount base units to the resolved owner's
// associated token account, creating that account first when absent.
// Signed by the payer, which must hold the mint authority.
func (u *TokenUsecase) MintToken(ctx context.Context, in MintSupplyInput) (string, error) {
	if u == nil || u.chain == nil {
		return "", sserr.New(sserr.KindToken, "token usecase is not initialized")
	}

	owner := u.payer.PublicKey
	if in.Owner != nil {
		owner = *in.Owner
	}

	ata, _, err := common.FindAssociatedTokenAddress(owner, in.Mint)
	if err != nil {
		return "", sserr.Wrap(sserr.KindToken, "derive associated token account", err)
	}

	exists, err := u.chain.AccountExists(ctx, ata)
	if err != nil {
		return "", err
	}

	recent, err := u.chain.LatestBlockhash(ctx)
	if err != nil {
		return "", err
	}

	ins := make([]types.Instruction, 0, 2)
	if !exists {
		ins = append(ins, associated_token_account.CreateAssociatedTokenAccount(
			associated_token_account.CreateAssociatedTokenAccountParam{
				Funder:                 u.payer.PublicKey,
				Owner:                  owner,
				Mint:                   in.Mint,
				AssociatedTokenAccount: ata,
			},
		))
	}
	ins = append(ins, token.MintTo(token.MintToParam{
		Mint:   in.Mint,
		To:     ata,
		Auth:   u.payer.PublicKey,
		Amount: in.Amount,
	}))

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: []types.Account{u.payer},
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        u.payer.PublicKey,
			RecentBlockhash: recent,
			Instructions:    ins,
		}),
	})
	if err != nil {
		return "", sserr.Wrap(sserr.KindToken, "build mint transaction", err)
	}

	sig, err := u.chain.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}

	u.logger.Info().
		Str("mint", maskShort(in.Mint.ToBase58())).
		Str("owner", maskShort(owner.ToBase58())).
		Str("signature", maskShort(sig)).
		Bool("createdATA", !exists).
		Uint64("amount", in.Amount).
		Msg("supply minted")

	return sig, nil
}

// FetchAssetsByOwner lists the DAS-indexed assets held by owner.
func (u *TokenUsecase) FetchAssetsByOwner(ctx context.Context, owner common.PublicKey, page, limit int) ([]tokendom.DigitalAsset, error) {
	if u == nil || u.chain == nil {
		return nil, sserr.New(sserr.KindToken, "token usecase is not initialized")
	}
	return u.chain.AssetsByOwner(ctx, owner, page, limit)
}

func zeroAccount(acc *types.Account) {
	for i := range acc.PrivateKey {
		acc.PrivateKey[i] = 0
	}
	acc.PrivateKey = nil
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
