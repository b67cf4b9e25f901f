// internal/infra/wallet/payer.go
package wallet

import (
	"context"

	"github.com/blocto/solana-go-sdk/types"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/config"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// LoadPayer resolves the payer keypair from the configured source.
// A mnemonic takes precedence over a Secret Manager key. The caller
// owns the returned account and releases it with Zero.
func LoadPayer(ctx context.Context, cfg config.Config) (types.Account, error) {
	if cfg.PayerMnemonic != "" {
		return FromMnemonic(cfg.PayerMnemonic)
	}
	if cfg.PayerKeySecret != "" {
		return PayerFromSecret(ctx, cfg.PayerKeySecret)
	}
	return types.Account{}, sserr.Wrap(sserr.KindConfig, "load payer", config.ErrPayerSourceNotSet)
}
