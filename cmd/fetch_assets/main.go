// cmd/fetch_assets/main.go
//
// Lists the digital assets a wallet owns through the RPC provider's
// DAS index. Read-only; needs no payer configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/blocto/solana-go-sdk/rpc"

	sss "github.com/LD-Smart-Supply/sss-shared-lib"
)

func main() {
	var (
		owner = flag.String("owner", "", "wallet address to list (required)")
		page  = flag.Int("page", 1, "result page, starting at 1")
		limit = flag.Int("limit", 100, "assets per page")
	)
	flag.Parse()

	if *owner == "" {
		fmt.Fprintln(os.Stderr, "usage: fetch_assets -owner <wallet> [-page N] [-limit N]")
		os.Exit(2)
	}
	if os.Getenv("SOLANA_RPC_URL") == "" {
		os.Setenv("SOLANA_RPC_URL", rpc.DevnetRPCEndpoint)
	}

	fmt.Printf("Fetching digital assets for wallet: %s\n", *owner)
	assets, err := sss.FetchAssetsByOwner(context.Background(), *owner, *page, *limit)
	if err != nil {
		log.Fatalf("❌ fetch assets: %v", err)
	}

	fmt.Printf("\nFound %d digital assets:\n", len(assets))
	for _, a := range assets {
		fmt.Printf("- %s  [%s]\n", a.ID, a.Interface)
		if a.Name != "" || a.Symbol != "" {
			fmt.Printf("    name:   %s (%s)\n", a.Name, a.Symbol)
		}
		if a.URI != "" {
			fmt.Printf("    uri:    %s\n", a.URI)
		}
		fmt.Printf("    supply: %d (decimals %d)\n", a.Supply, a.Decimals)
	}
}
