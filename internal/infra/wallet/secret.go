// internal/infra/wallet/secret.go
package wallet

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretspb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/blocto/solana-go-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// ErrSecretNotFound marks a payer secret version that does not exist.
var ErrSecretNotFound = errors.New("payer key secret not found")

// PayerFromSecret restores the payer keypair from a Secret Manager
// secret version holding a Solana CLI keypair JSON ([u8;64]).
//
// secretName is a full secret version path, e.g.
//
//	"projects/<PROJECT_ID>/secrets/<SECRET_ID>/versions/latest"
func PayerFromSecret(ctx context.Context, secretName string) (types.Account, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "secretmanager.NewClient", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretspb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Account{}, sserr.Wrap(sserr.KindKeypair, "access secret version", ErrSecretNotFound)
		}
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "access secret version", err)
	}

	keyBytes, err := decodeKeypairJSON(resp.Payload.Data)
	if err != nil {
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "decode keypair json", err)
	}

	// AccountFromBytes keeps the slice as the account's private key, so
	// keyBytes is only zeroed on failure; the caller owns it otherwise.
	acc, err := types.AccountFromBytes(keyBytes)
	if err != nil {
		zeroBytes(keyBytes)
		return types.Account{}, sserr.Wrap(sserr.KindKeypair, "restore account from secret", err)
	}

	log.Wallet.Debug().
		Str("pubkey", maskShort(acc.PublicKey.ToBase58())).
		Msg("payer restored from secret manager")

	return acc, nil
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

// decodeKeypairJSON restores the 64-byte key array from a keypair JSON
// payload. The canonical form is a [u8;64] array; a base64 string is
// accepted for compatibility with older secret payloads.
func decodeKeypairJSON(data []byte) ([]byte, error) {
	var keyBytes []byte
	if err := json.Unmarshal(data, &keyBytes); err == nil {
		if len(keyBytes) == ed25519.PrivateKeySize {
			return keyBytes, nil
		}
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("unmarshal keypair json: %w", err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unexpected secret key length: got %d, want %d", len(ints), ed25519.PrivateKeySize)
	}

	keyBytes = make([]byte, len(ints))
	for i, v := range ints {
		keyBytes[i] = byte(v)
	}
	return keyBytes, nil
}
