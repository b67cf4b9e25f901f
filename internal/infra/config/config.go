// internal/infra/config/config.go
package config

import (
	"errors"
	"net/url"
	"os"

	"github.com/joho/godotenv"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// Config holds the environment-derived settings for one operation.
// It is loaded fresh per call; nothing is cached between calls.
type Config struct {
	// RPCURL is the Solana JSON-RPC endpoint, e.g. https://api.devnet.solana.com.
	RPCURL string

	// PayerMnemonic is the BIP-39 phrase the payer keypair is derived from.
	PayerMnemonic string

	// PayerKeySecret names a Secret Manager secret version holding a
	// Solana CLI keypair JSON. Used when PayerMnemonic is empty.
	PayerKeySecret string

	// MetadataUploadURL / MetadataUploadKey configure the optional
	// off-chain metadata upload service.
	MetadataUploadURL string
	MetadataUploadKey string
}

// Errors
var (
	ErrRPCURLNotSet      = errors.New("SOLANA_RPC_URL is not set")
	ErrRPCURLInvalid     = errors.New("SOLANA_RPC_URL is not a valid http(s) URL")
	ErrPayerSourceNotSet = errors.New("PAYER_MNEMONIC or SOLANA_PAYER_KEY_SECRET must be set")
)

// Load reads a .env file when present, then the process environment,
// and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load() // allow .env for local runs
	return fromEnv()
}

// LoadFrom behaves like Load but requires the named env file to exist.
func LoadFrom(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		return Config{}, sserr.Wrap(sserr.KindConfig, "load env file", err)
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		RPCURL:            os.Getenv("SOLANA_RPC_URL"),
		PayerMnemonic:     os.Getenv("PAYER_MNEMONIC"),
		PayerKeySecret:    os.Getenv("SOLANA_PAYER_KEY_SECRET"),
		MetadataUploadURL: os.Getenv("SSS_METADATA_UPLOAD_URL"),
		MetadataUploadKey: os.Getenv("SSS_METADATA_UPLOAD_KEY"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	// The endpoint URL itself is not logged; hosted RPC providers embed
	// API keys in it.
	log.Config.Debug().
		Bool("payerMnemonic", cfg.PayerMnemonic != "").
		Bool("payerKeySecret", cfg.PayerKeySecret != "").
		Bool("metadataUpload", cfg.MetadataUploadURL != "").
		Msg("environment loaded")

	return cfg, nil
}

// Validate checks the settings every operation depends on. A payer
// source is not required here: read-only operations never resolve the
// payer, so its absence surfaces from wallet.LoadPayer instead.
func (c Config) Validate() error {
	if c.RPCURL == "" {
		return sserr.Wrap(sserr.KindConfig, "validate", ErrRPCURLNotSet)
	}
	u, err := url.Parse(c.RPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return sserr.Wrap(sserr.KindConfig, "validate", ErrRPCURLInvalid)
	}
	return nil
}
