// internal/application/usecase/ports.go
package usecase

import (
	"context"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
)

// ============================================================
// Chain access port
// ============================================================

// ChainClient is the outbound port to the Solana node, implemented by
// the infra adapter. Every method blocks until the node answers or ctx
// is done; none of them retry.
type ChainClient interface {
	LatestBlockhash(ctx context.Context) (string, error)
	MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error)
	AccountExists(ctx context.Context, address common.PublicKey) (bool, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
	AssetsByOwner(ctx context.Context, owner common.PublicKey, page, limit int) ([]tokendom.DigitalAsset, error)
}

// ============================================================
// Metadata upload port
// ============================================================

// MetadataUploader stores an off-chain metadata document and returns
// the public URI a mint can point at.
type MetadataUploader interface {
	UploadJSON(ctx context.Context, metadataJSON []byte) (string, error)
}
