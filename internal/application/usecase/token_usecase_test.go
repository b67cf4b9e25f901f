package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// testBlockhash is the base58 rendering of 32 zero bytes.
const testBlockhash = "11111111111111111111111111111111"

// fakeChain counts every port invocation so tests can assert which
// pipeline steps ran.
type fakeChain struct {
	rent      uint64
	ataExists bool
	assets    []tokendom.DigitalAsset

	errRent      error
	errBlockhash error
	errExists    error
	errSend      error

	rentCalls      int
	blockhashCalls int
	existsCalls    int
	sendCalls      int
	assetsCalls    int

	existsProbes []common.PublicKey
	sentTxs      []types.Transaction
}

func (f *fakeChain) LatestBlockhash(ctx context.Context) (string, error) {
	f.blockhashCalls++
	if f.errBlockhash != nil {
		return "", f.errBlockhash
	}
	return testBlockhash, nil
}

func (f *fakeChain) MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	f.rentCalls++
	if f.errRent != nil {
		return 0, f.errRent
	}
	return f.rent, nil
}

func (f *fakeChain) AccountExists(ctx context.Context, address common.PublicKey) (bool, error) {
	f.existsCalls++
	f.existsProbes = append(f.existsProbes, address)
	if f.errExists != nil {
		return false, f.errExists
	}
	return f.ataExists, nil
}

func (f *fakeChain) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	f.sendCalls++
	if f.errSend != nil {
		return "", f.errSend
	}
	f.sentTxs = append(f.sentTxs, tx)
	return fmt.Sprintf("signature-%d", f.sendCalls), nil
}

func (f *fakeChain) AssetsByOwner(ctx context.Context, owner common.PublicKey, page, limit int) ([]tokendom.DigitalAsset, error) {
	f.assetsCalls++
	return f.assets, nil
}

func (f *fakeChain) totalCalls() int {
	return f.rentCalls + f.blockhashCalls + f.existsCalls + f.sendCalls + f.assetsCalls
}

// fakeUploader records every uploaded document.
type fakeUploader struct {
	uri     string
	err     error
	uploads [][]byte
}

func (f *fakeUploader) UploadJSON(ctx context.Context, metadataJSON []byte) (string, error) {
	f.uploads = append(f.uploads, metadataJSON)
	if f.err != nil {
		return "", f.err
	}
	return f.uri, nil
}

func validCreateInput() tokendom.CreateTokenInput {
	return tokendom.CreateTokenInput{
		URI:      "https://example.com/token.json",
		Name:     "Test",
		Decimals: 6,
	}
}

func TestCreateToken(t *testing.T) {
	chain := &fakeChain{rent: 1461600}
	u := NewTokenUsecase(chain, types.NewAccount())

	res, err := u.CreateToken(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "signature-1", res.Signature)
	assert.NotEqual(t, common.PublicKey{}, res.Mint)

	assert.Equal(t, 1, chain.rentCalls)
	assert.Equal(t, 1, chain.blockhashCalls)
	assert.Equal(t, 1, chain.sendCalls)
	assert.Zero(t, chain.existsCalls)

	// one coordinated transaction: create account, initialize mint,
	// attach metadata; signed by mint and payer
	require.Len(t, chain.sentTxs, 1)
	tx := chain.sentTxs[0]
	assert.Len(t, tx.Signatures, 2)
	assert.Len(t, tx.Message.Instructions, 3)
}

func TestCreateTokenWithMintUsesGivenKeypair(t *testing.T) {
	chain := &fakeChain{rent: 1461600}
	u := NewTokenUsecase(chain, types.NewAccount())

	mint := types.NewAccount()
	res, err := u.CreateTokenWithMint(context.Background(), mint, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, mint.PublicKey, res.Mint)
}

func TestCreateTokenFromMetadata(t *testing.T) {
	chain := &fakeChain{rent: 1461600}
	up := &fakeUploader{uri: "https://arweave.net/abc123"}
	u := NewTokenUsecase(chain, types.NewAccount())

	meta := tokendom.Metadata{
		Name:        "Supply Coin",
		Symbol:      "SUP",
		Description: "a traceable supply token",
		Image:       "https://example.com/icon.png",
	}

	res, err := u.CreateTokenFromMetadata(context.Background(), up, meta, 6)
	require.NoError(t, err)
	assert.Equal(t, "signature-1", res.Signature)

	require.Len(t, up.uploads, 1)
	assert.Contains(t, string(up.uploads[0]), `"name":"Supply Coin"`)

	assert.Equal(t, 1, chain.rentCalls)
	assert.Equal(t, 1, chain.sendCalls)
}

func TestCreateTokenFromMetadataEmptyName(t *testing.T) {
	chain := &fakeChain{}
	up := &fakeUploader{uri: "https://arweave.net/abc123"}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.CreateTokenFromMetadata(context.Background(), up, tokendom.Metadata{}, 0)
	require.ErrorIs(t, err, tokendom.ErrEmptyMetadataName)
	assert.Empty(t, up.uploads)
	assert.Zero(t, chain.totalCalls())
}

func TestCreateTokenFromMetadataUploadError(t *testing.T) {
	chain := &fakeChain{}
	cause := errors.New("arweave unavailable")
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.CreateTokenFromMetadata(context.Background(), &fakeUploader{err: cause}, tokendom.Metadata{Name: "Supply Coin"}, 0)
	require.ErrorIs(t, err, cause)
	assert.Zero(t, chain.totalCalls())
}

func TestCreateTokenFromMetadataNilUploader(t *testing.T) {
	u := NewTokenUsecase(&fakeChain{}, types.NewAccount())

	_, err := u.CreateTokenFromMetadata(context.Background(), nil, tokendom.Metadata{Name: "Supply Coin"}, 0)
	require.Error(t, err)
	assert.Equal(t, sserr.KindToken, sserr.KindOf(err))
}

func TestCreateTokenValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		in      tokendom.CreateTokenInput
		wantErr error
	}{
		{"empty name", tokendom.CreateTokenInput{URI: "https://example.com/t.json"}, tokendom.ErrEmptyName},
		{"empty uri", tokendom.CreateTokenInput{Name: "Test"}, tokendom.ErrEmptyURI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := &fakeChain{}
			u := NewTokenUsecase(chain, types.NewAccount())

			_, err := u.CreateToken(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, sserr.KindToken, sserr.KindOf(err))

			// no chain traffic after a validation failure
			assert.Zero(t, chain.totalCalls())
		})
	}
}

func TestCreateTokenStopsAtFirstError(t *testing.T) {
	rentErr := errors.New("node unavailable")
	chain := &fakeChain{errRent: rentErr}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.CreateToken(context.Background(), validCreateInput())
	require.ErrorIs(t, err, rentErr)

	assert.Equal(t, 1, chain.rentCalls)
	assert.Zero(t, chain.blockhashCalls)
	assert.Zero(t, chain.sendCalls)
}

func TestCreateTokenBlockhashError(t *testing.T) {
	hashErr := errors.New("blockhash unavailable")
	chain := &fakeChain{errBlockhash: hashErr}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.CreateToken(context.Background(), validCreateInput())
	require.ErrorIs(t, err, hashErr)
	assert.Zero(t, chain.sendCalls)
}

func TestMintTokenDefaultsToPayer(t *testing.T) {
	payer := types.NewAccount()
	mint := types.NewAccount().PublicKey

	chain := &fakeChain{ataExists: true}
	u := NewTokenUsecase(chain, payer)

	sig, err := u.MintToken(context.Background(), MintSupplyInput{Mint: mint, Amount: 1000000})
	require.NoError(t, err)
	assert.Equal(t, "signature-1", sig)

	wantATA, _, err := common.FindAssociatedTokenAddress(payer.PublicKey, mint)
	require.NoError(t, err)
	require.Len(t, chain.existsProbes, 1)
	assert.Equal(t, wantATA, chain.existsProbes[0])

	// account already present: a single mint-to instruction, payer signs
	require.Len(t, chain.sentTxs, 1)
	tx := chain.sentTxs[0]
	assert.Len(t, tx.Signatures, 1)
	assert.Len(t, tx.Message.Instructions, 1)
}

func TestMintTokenExplicitOwner(t *testing.T) {
	payer := types.NewAccount()
	owner := types.NewAccount().PublicKey
	mint := types.NewAccount().PublicKey

	chain := &fakeChain{ataExists: true}
	u := NewTokenUsecase(chain, payer)

	_, err := u.MintToken(context.Background(), MintSupplyInput{Mint: mint, Owner: &owner, Amount: 5})
	require.NoError(t, err)

	wantATA, _, err := common.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	require.Len(t, chain.existsProbes, 1)
	assert.Equal(t, wantATA, chain.existsProbes[0])
}

func TestMintTokenCreatesMissingATA(t *testing.T) {
	chain := &fakeChain{ataExists: false}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.MintToken(context.Background(), MintSupplyInput{
		Mint:   types.NewAccount().PublicKey,
		Amount: 1,
	})
	require.NoError(t, err)

	require.Len(t, chain.sentTxs, 1)
	tx := chain.sentTxs[0]
	assert.Len(t, tx.Message.Instructions, 2)
}

func TestMintTokenDistinctSignatures(t *testing.T) {
	chain := &fakeChain{ataExists: true}
	u := NewTokenUsecase(chain, types.NewAccount())

	in := MintSupplyInput{Mint: types.NewAccount().PublicKey, Amount: 1000000}

	first, err := u.MintToken(context.Background(), in)
	require.NoError(t, err)
	second, err := u.MintToken(context.Background(), in)
	require.NoError(t, err)

	// identical requests are two independent transactions
	assert.NotEqual(t, first, second)
}

func TestMintTokenExistsProbeError(t *testing.T) {
	probeErr := errors.New("node unavailable")
	chain := &fakeChain{errExists: probeErr}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.MintToken(context.Background(), MintSupplyInput{
		Mint:   types.NewAccount().PublicKey,
		Amount: 1,
	})
	require.ErrorIs(t, err, probeErr)
	assert.Zero(t, chain.blockhashCalls)
	assert.Zero(t, chain.sendCalls)
}

func TestMintTokenSendError(t *testing.T) {
	sendErr := errors.New("simulation failed")
	chain := &fakeChain{ataExists: true, errSend: sendErr}
	u := NewTokenUsecase(chain, types.NewAccount())

	_, err := u.MintToken(context.Background(), MintSupplyInput{
		Mint:   types.NewAccount().PublicKey,
		Amount: 1,
	})
	require.ErrorIs(t, err, sendErr)
}

func TestFetchAssetsByOwner(t *testing.T) {
	want := []tokendom.DigitalAsset{{ID: "mint1", Interface: "FungibleToken", Name: "T"}}
	chain := &fakeChain{assets: want}
	u := NewTokenUsecase(chain, types.NewAccount())

	got, err := u.FetchAssetsByOwner(context.Background(), types.NewAccount().PublicKey, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, chain.assetsCalls)
}
