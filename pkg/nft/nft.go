// Package nft holds the mint request and token metadata types.
package nft

import "strings"

// Trait types written into token metadata.
const (
	TraitMintedBy      = "Minted By"
	TraitRecipient     = "Recipient"
	TraitAchievement   = "Achievement"
	TraitCertificateID = "Certificate ID"
	TraitIssuer        = "Issuer"
	TraitIssuedOn      = "Issued On"
)

// File is an uploaded image.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// MintImageRequest mints an NFT from an uploaded image.
type MintImageRequest struct {
	Recipient   string
	Name        string
	Description string
	Image       *File
}

// Complete reports whether every required field is present.
func (r *MintImageRequest) Complete() bool {
	return r != nil &&
		strings.TrimSpace(r.Recipient) != "" &&
		strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Description) != "" &&
		r.Image != nil && len(r.Image.Data) > 0
}

// MintCertificateRequest mints an NFT whose image is a generated certificate.
type MintCertificateRequest struct {
	Recipient   string `json:"recipient"`
	Name        string `json:"name"`
	Achievement string `json:"achievement"`
	Description string `json:"description,omitempty"`
}

// Complete reports whether every required field is present. Description is optional.
func (r *MintCertificateRequest) Complete() bool {
	return r != nil &&
		strings.TrimSpace(r.Recipient) != "" &&
		strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Achievement) != ""
}

// Attribute is one ERC-721 metadata trait.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TokenMetadata is the JSON document the token URI points to.
type TokenMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}
