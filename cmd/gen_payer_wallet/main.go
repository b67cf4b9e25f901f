// cmd/gen_payer_wallet/main.go
//
// Generates a payer wallet: a 24-word BIP-39 mnemonic, its derived
// Solana address, and optionally a Solana-CLI-compatible keypair JSON
// for upload to Secret Manager.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/infra/wallet"
)

func main() {
	keyFile := flag.String("keyfile", "", "also write a Solana-CLI-compatible keypair JSON here")
	flag.Parse()

	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		log.Fatalf("generate mnemonic: %v", err)
	}

	payer, err := wallet.FromMnemonic(mnemonic)
	if err != nil {
		log.Fatalf("derive payer: %v", err)
	}
	defer wallet.Zero(&payer)

	fmt.Println("============================================")
	fmt.Println("✅ Payer wallet generated")
	fmt.Println("============================================")
	fmt.Printf("Address:\n  %s\n\n", payer.PublicKey.ToBase58())
	fmt.Printf("PAYER_MNEMONIC:\n  %s\n\n", mnemonic)

	if *keyFile != "" {
		secret := make([]int, len(payer.PrivateKey))
		for i, b := range payer.PrivateKey {
			secret[i] = int(b)
		}
		data, err := json.Marshal(secret)
		if err != nil {
			log.Fatalf("marshal keypair json: %v", err)
		}
		if err := os.WriteFile(*keyFile, data, 0o600); err != nil {
			log.Fatalf("write %s: %v", *keyFile, err)
		}
		fmt.Printf("Keypair JSON (Solana CLI compatible):\n  %s\n\n", *keyFile)
	}

	fmt.Println("⚠ IMPORTANT:")
	fmt.Println("  - The mnemonic is the wallet. Store it somewhere safe and never commit it.")
	fmt.Println("  - Fund the address (devnet: solana airdrop 2 <address>) before creating tokens.")
}
