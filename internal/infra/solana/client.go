// internal/infra/solana/client.go
package solana

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

var ErrEmptyRPCURL = errors.New("rpc url is empty")

// Client adapts a Solana JSON-RPC node for the token pipeline. It holds
// no mutable state; one instance is constructed per operation and every
// method blocks until the node answers or ctx is done.
type Client struct {
	rpc   *client.Client
	httpc *http.Client
	url   string
}

// Connect builds a client for the given endpoint. No network traffic
// happens here; the first RPC method call reports connection failures.
func Connect(rpcURL string) (*Client, error) {
	u := strings.TrimSpace(rpcURL)
	if u == "" {
		return nil, sserr.Wrap(sserr.KindRPC, "connect", ErrEmptyRPCURL)
	}
	return &Client{
		rpc:   client.NewClient(u),
		httpc: http.DefaultClient,
		url:   u,
	}, nil
}

// LatestBlockhash fetches the blockhash every transaction must embed.
func (c *Client) LatestBlockhash(ctx context.Context) (string, error) {
	recent, err := c.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", sserr.Wrap(sserr.KindRPC, "get latest blockhash", err)
	}
	return recent.Blockhash, nil
}

// MinimumBalanceForRentExemption returns the lamports a fresh account
// of the given size needs to stay alive.
func (c *Client) MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, size)
	if err != nil {
		return 0, sserr.Wrap(sserr.KindRPC, "get minimum balance for rent exemption", err)
	}
	return rent, nil
}

// AccountExists reports whether the address holds a live account.
// Nodes answer a missing account either with an empty value or with an
// error, depending on version; both shapes are classified here.
func (c *Client) AccountExists(ctx context.Context, address common.PublicKey) (bool, error) {
	info, err := c.rpc.GetAccountInfo(ctx, address.ToBase58())
	if err == nil {
		return info.Owner != (common.PublicKey{}), nil
	}
	if accountMissing(err.Error()) {
		return false, nil
	}
	return false, sserr.Wrap(sserr.KindRPC, "get account info", err)
}

// SendTransaction submits a signed transaction and returns its
// signature. No confirmation is awaited and nothing is retried; node
// rejections (simulation failure, insufficient funds) surface as-is.
func (c *Client) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", sserr.Wrap(sserr.KindRPC, "send transaction", err)
	}

	log.RPC.Debug().Str("signature", maskShort(sig)).Msg("transaction submitted")
	return sig, nil
}

// accountMissing classifies node errors that mean "no such account"
// rather than a transport or node failure.
func accountMissing(errMsg string) bool {
	msg := strings.ToLower(errMsg)
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "could not find account") ||
		strings.Contains(msg, "invalid param") ||
		strings.Contains(msg, "account does not exist")
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
