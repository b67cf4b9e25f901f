// internal/infra/solana/das.go
package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/blocto/solana-go-sdk/common"

	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// The DAS (Digital Asset Standard) read API is served over plain
// JSON-RPC 2.0 by index-enabled nodes. The SDK has no bindings for it,
// so the request is issued directly against the configured endpoint.

type dasRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type dasResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *dasError       `json:"error,omitempty"`
}

type dasError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *dasError) Error() string {
	return fmt.Sprintf("das error %d: %s", e.Code, e.Message)
}

type assetsByOwnerParams struct {
	OwnerAddress string `json:"ownerAddress"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

type dasAssetList struct {
	Total int        `json:"total"`
	Items []dasAsset `json:"items"`
}

type dasAsset struct {
	Interface string `json:"interface"`
	ID        string `json:"id"`
	Content   struct {
		JSONURI  string `json:"json_uri"`
		Metadata struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"metadata"`
	} `json:"content"`
	Ownership struct {
		Owner string `json:"owner"`
	} `json:"ownership"`
	TokenInfo struct {
		Decimals uint8  `json:"decimals"`
		Supply   uint64 `json:"supply"`
	} `json:"token_info"`
}

// AssetsByOwner lists the assets the node's DAS index attributes to
// owner. page starts at 1; limit is capped at 1000 per DAS rules.
func (c *Client) AssetsByOwner(ctx context.Context, owner common.PublicKey, page, limit int) ([]tokendom.DigitalAsset, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	body, err := json.Marshal(dasRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getAssetsByOwner",
		Params: assetsByOwnerParams{
			OwnerAddress: owner.ToBase58(),
			Page:         page,
			Limit:        limit,
		},
	})
	if err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "marshal das request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "build das request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "get assets by owner", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "read das response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, sserr.Newf(sserr.KindRPC, "get assets by owner: status=%d body=%s", resp.StatusCode, data)
	}

	var rpcResp dasResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "decode das response", err)
	}
	if rpcResp.Error != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "get assets by owner", rpcResp.Error)
	}

	var list dasAssetList
	if err := json.Unmarshal(rpcResp.Result, &list); err != nil {
		return nil, sserr.Wrap(sserr.KindRPC, "decode das asset list", err)
	}

	assets := make([]tokendom.DigitalAsset, 0, len(list.Items))
	for _, item := range list.Items {
		assets = append(assets, tokendom.DigitalAsset{
			ID:        item.ID,
			Interface: item.Interface,
			Name:      item.Content.Metadata.Name,
			Symbol:    item.Content.Metadata.Symbol,
			URI:       item.Content.JSONURI,
			Owner:     item.Ownership.Owner,
			Decimals:  item.TokenInfo.Decimals,
			Supply:    item.TokenInfo.Supply,
		})
	}

	log.RPC.Debug().
		Str("owner", maskShort(owner.ToBase58())).
		Int("count", len(assets)).
		Msg("das assets fetched")

	return assets, nil
}
