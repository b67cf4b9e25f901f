// Package wallet derives and loads the payer signing keypair.
//
// Secret material handled here (seeds, private key bytes) is scoped to
// a single operation; callers release it with Zero when signing is done.
package wallet

import (
	"crypto/ed25519"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/tyler-smith/go-bip39"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// FromMnemonic derives the payer keypair from a BIP-39 phrase with an
// empty passphrase. The first 32 bytes of the BIP-39 seed are used as
// the ed25519 seed, matching the Solana CLI's keypair-from-seed rule,
// so the same phrase always restores the same account.
func FromMnemonic(mnemonic string) (types.Account, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "derive seed from mnemonic", err)
	}
	defer zeroBytes(seed)

	priv := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	acc, err := types.AccountFromBytes(priv)
	if err != nil {
		zeroBytes(priv)
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "restore account from seed", err)
	}
	return acc, nil
}

// Zero wipes the account's private key material in place.
func Zero(acc *types.Account) {
	if acc == nil {
		return
	}
	zeroBytes(acc.PrivateKey)
	acc.PrivateKey = nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
