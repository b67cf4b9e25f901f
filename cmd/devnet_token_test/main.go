// cmd/devnet_token_test/main.go
//
// End-to-end devnet exercise: creates a token, mints supply, and
// prints explorer links. Spends real devnet SOL from the configured
// payer. SOLANA_RPC_URL defaults to the public devnet endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/joho/godotenv"

	sss "github.com/LD-Smart-Supply/sss-shared-lib"
)

func main() {
	var (
		envFile  = flag.String("env", "", "load configuration from this env file")
		uri      = flag.String("uri", "https://example.com/token-metadata.json", "metadata URI for the new token")
		name     = flag.String("name", "Test Token 666", "token name")
		decimals = flag.Uint("decimals", 6, "token decimals")
		amount   = flag.Uint64("amount", 1_000_000, "base units to mint after creation (0 skips minting)")
		owner    = flag.String("owner", "", "mint to this wallet instead of the payer")
		timeout  = flag.Duration("timeout", 90*time.Second, "overall deadline for both transactions")
	)
	flag.Parse()

	// File first, then the devnet default: a URL from the file must win
	// over the default, and godotenv never overrides set variables.
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("❌ load %s: %v", *envFile, err)
		}
	}
	if os.Getenv("SOLANA_RPC_URL") == "" {
		os.Setenv("SOLANA_RPC_URL", rpc.DevnetRPCEndpoint)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Printf("Creating new token: %s\n", *name)
	res, err := sss.CreateToken(ctx, *uri, *name, uint8(*decimals))
	if err != nil {
		log.Fatalf("❌ create token: %v", err)
	}
	fmt.Println("✅ Token created")
	fmt.Printf("  signature: %s\n", res.Signature)
	fmt.Printf("  mint:      %s\n", res.MintAddress)
	fmt.Printf("  explorer:  https://explorer.solana.com/address/%s?cluster=devnet\n", res.MintAddress)

	if *amount == 0 {
		return
	}

	fmt.Printf("Minting %d base units\n", *amount)
	sig, err := sss.MintToken(ctx, res.MintAddress, *owner, *amount)
	if err != nil {
		log.Fatalf("❌ mint token: %v", err)
	}
	fmt.Println("✅ Supply minted")
	fmt.Printf("  signature: %s\n", sig)
	fmt.Printf("  explorer:  https://explorer.solana.com/tx/%s?cluster=devnet\n", sig)
}
