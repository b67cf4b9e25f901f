// internal/infra/metadata/uploader.go
package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/LD-Smart-Supply/sss-shared-lib/internal/application/usecase"
	tokendom "github.com/LD-Smart-Supply/sss-shared-lib/internal/domain/token"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/log"
	"github.com/LD-Smart-Supply/sss-shared-lib/internal/sserr"
)

// Errors
var (
	ErrNoEndpoint = sserr.New(sserr.KindConfig, "metadata upload endpoint not configured")
	ErrEmptyBody  = sserr.New(sserr.KindToken, "metadata payload is empty")
	ErrEmptyURI   = sserr.New(sserr.KindToken, "upload response has empty uri")
)

// HTTPUploader pushes off-chain token metadata JSON to an upload
// service (an Irys/Arweave gateway proxy) and returns the public URI
// the service assigns. The URI goes into the on-chain metadata account.
type HTTPUploader struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
	logger  zerolog.Logger
}

var _ usecase.MetadataUploader = (*HTTPUploader)(nil)

// NewHTTPUploader builds an uploader for the given service endpoint.
// apiKey may be empty when the service accepts unauthenticated calls.
func NewHTTPUploader(baseURL, apiKey string) *HTTPUploader {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	return &HTTPUploader{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  log.Metadata,
	}
}

// UploadTokenMetadata encodes meta and uploads it.
func (u *HTTPUploader) UploadTokenMetadata(ctx context.Context, meta tokendom.Metadata) (string, error) {
	body, err := meta.JSON()
	if err != nil {
		return "", sserr.Wrap(sserr.KindToken, "encode metadata", err)
	}
	return u.UploadJSON(ctx, body)
}

// UploadJSON posts an already-encoded JSON document to the upload
// service and returns the URI from its response.
func (u *HTTPUploader) UploadJSON(ctx context.Context, payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyBody
	}
	if u.baseURL == "" {
		return "", ErrNoEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/upload/json", bytes.NewReader(payload))
	if err != nil {
		return "", sserr.Wrap(sserr.KindRPC, "create upload request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if u.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+u.apiKey)
	}

	resp, err := u.httpc.Do(req)
	if err != nil {
		return "", sserr.Wrap(sserr.KindRPC, "upload metadata", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", sserr.Newf(sserr.KindRPC, "upload metadata: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", sserr.Wrap(sserr.KindRPC, "decode upload response", err)
	}
	if out.URI == "" {
		return "", ErrEmptyURI
	}

	u.logger.Debug().Int("bytes", len(payload)).Str("uri", out.URI).Msg("metadata uploaded")
	return out.URI, nil
}
