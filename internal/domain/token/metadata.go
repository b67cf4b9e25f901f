package token

import (
	"encoding/json"
	"errors"
	"strings"
)

// Metadata is the off-chain JSON document a mint's URI points at.
type Metadata struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	ExternalURL string      `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// Attribute is a single trait entry in the metadata document.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

var ErrEmptyMetadataName = errors.New("token: empty metadata name")

// JSON renders the document for upload.
func (m Metadata) JSON() ([]byte, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, ErrEmptyMetadataName
	}
	return json.Marshal(m)
}
