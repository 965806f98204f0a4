package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-mint-action/pkg/action"
	apperrors "github.com/chainsafe/nft-mint-action/pkg/app/errors"
	"github.com/chainsafe/nft-mint-action/pkg/certificate"
	"github.com/chainsafe/nft-mint-action/pkg/ethereum"
	"github.com/chainsafe/nft-mint-action/pkg/ethereum/contracts"
	"github.com/chainsafe/nft-mint-action/pkg/nft"
	"github.com/chainsafe/nft-mint-action/pkg/nft/service/mocks"
	"github.com/chainsafe/nft-mint-action/pkg/pinning"
)

const (
	testContract  = "0x45804FA4dDfBC8D6BB5aeABB3EE5765740661e8a"
	testRecipient = "0x1111111111111111111111111111111111111111"
	imageCID      = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	metadataCID   = "QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o"
)

// pngBytes starts with the PNG signature so content sniffing reports image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

var fixedNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, pinner Pinner, format string) Service {
	t.Helper()

	chain, err := action.LookupChain("fuji")
	if err != nil {
		t.Fatalf("LookupChain() failed: %v", err)
	}
	minter, err := ethereum.NewMinter(testContract, chain.ID)
	if err != nil {
		t.Fatalf("NewMinter() failed: %v", err)
	}

	return NewService(Options{
		Chain:             chain,
		ProjectURL:        "https://sherry.social",
		IconURL:           "https://avatars.githubusercontent.com/u/117962315",
		MintedBy:          "SherryLinks API",
		Issuer:            "SherryLinks",
		CertificateFormat: format,
		Now:               func() time.Time { return fixedNow },
	}, pinner, minter, certificate.NewRenderer(""), zap.NewNop())
}

func imageRequest() *nft.MintImageRequest {
	return &nft.MintImageRequest{
		Recipient:   testRecipient,
		Name:        "Cat",
		Description: "A very good cat",
		Image:       &nft.File{Name: "cat.png", ContentType: "image/png", Data: pngBytes},
	}
}

func requireStatus(t *testing.T, err error, status int) *apperrors.ServiceError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.StatusCode() != status {
		t.Fatalf("expected status %d, got %d (%v)", status, svcErr.StatusCode(), err)
	}
	return svcErr
}

// decodeMint deserializes the response transaction and unpacks the safeMint arguments.
func decodeMint(t *testing.T, resp *action.ExecutionResponse) (*ethereum.Transaction, common.Address, string) {
	t.Helper()

	tx, err := ethereum.DeserializeTransaction(resp.SerializedTransaction)
	if err != nil {
		t.Fatalf("DeserializeTransaction() failed: %v", err)
	}
	parsed, err := contracts.ParseImageNFTABI()
	if err != nil {
		t.Fatalf("ParseImageNFTABI() failed: %v", err)
	}
	args, err := parsed.Methods["safeMint"].Inputs.Unpack(tx.Data[4:])
	if err != nil {
		t.Fatalf("Unpack() failed: %v", err)
	}
	return tx, args[0].(common.Address), args[1].(string)
}

func TestMintService_NFTMetadata(t *testing.T) {
	svc := newTestService(t, mocks.NewPinner(t), "svg")

	m, err := svc.NFTMetadata(context.Background(), "https://mint.example.com")
	if err != nil {
		t.Fatalf("NFTMetadata() failed: %v", err)
	}

	if m.BaseURL != "https://mint.example.com" {
		t.Fatalf("expected baseUrl %q, got %q", "https://mint.example.com", m.BaseURL)
	}
	if m.Title != "NFT Minter with IPFS Upload" {
		t.Fatalf("unexpected title %q", m.Title)
	}
	if len(m.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(m.Actions))
	}

	a := m.Actions[0]
	if a.Type != action.TypeDynamic || a.Path != ImagePath || a.Chains.Source != "fuji" {
		t.Fatalf("unexpected action %+v", a)
	}

	wantParams := []struct{ name, typ string }{
		{"recipient", action.ParamText},
		{"name", action.ParamText},
		{"description", action.ParamText},
		{"image", action.ParamFile},
	}
	if len(a.Params) != len(wantParams) {
		t.Fatalf("expected %d params, got %d", len(wantParams), len(a.Params))
	}
	for i, want := range wantParams {
		p := a.Params[i]
		if p.Name != want.name || p.Type != want.typ || !p.Required {
			t.Fatalf("param %d: expected required %s/%s, got %+v", i, want.name, want.typ, p)
		}
	}
}

func TestMintService_CertificateMetadata(t *testing.T) {
	svc := newTestService(t, mocks.NewPinner(t), "svg")

	m, err := svc.CertificateMetadata(context.Background(), "http://localhost:3000")
	if err != nil {
		t.Fatalf("CertificateMetadata() failed: %v", err)
	}

	a := m.Actions[0]
	if a.Path != CertificatePath {
		t.Fatalf("expected path %q, got %q", CertificatePath, a.Path)
	}

	required := map[string]bool{}
	for _, p := range a.Params {
		required[p.Name] = p.Required
	}
	for _, name := range []string{"recipient", "name", "achievement"} {
		if !required[name] {
			t.Fatalf("expected %q to be required", name)
		}
	}
	if req, ok := required["description"]; !ok || req {
		t.Fatalf("expected optional description param, got present=%v required=%v", ok, req)
	}
}

func TestMintService_MetadataFailure(t *testing.T) {
	svc := newTestService(t, mocks.NewPinner(t), "svg")

	_, err := svc.NFTMetadata(context.Background(), "not a url")
	svcErr := requireStatus(t, err, http.StatusInternalServerError)
	if svcErr.Message != "Failed to create metadata" {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
}

func TestMintService_MintImage(t *testing.T) {
	ctx := context.Background()
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	pinner.EXPECT().
		PinFile(ctx, mock.MatchedBy(func(f *pinning.File) bool {
			return f.Name == "cat.png" && f.ContentType == "image/png" && len(f.Data) == len(pngBytes)
		})).
		Return(&pinning.PinResult{IpfsHash: imageCID}, nil).Once()
	pinner.EXPECT().
		PinJSON(ctx, "Cat metadata", mock.MatchedBy(func(m *nft.TokenMetadata) bool {
			return m.Name == "Cat" &&
				m.Description == "A very good cat" &&
				m.Image == "ipfs://"+imageCID &&
				len(m.Attributes) == 1 &&
				m.Attributes[0] == nft.Attribute{TraitType: nft.TraitMintedBy, Value: "SherryLinks API"}
		})).
		Return(&pinning.PinResult{IpfsHash: metadataCID}, nil).Once()

	svc := newTestService(t, pinner, "svg")

	resp, err := svc.MintImage(ctx, imageRequest())
	if err != nil {
		t.Fatalf("MintImage() failed: %v", err)
	}
	if resp.ChainID != "Avalanche Fuji" {
		t.Fatalf("expected chain %q, got %q", "Avalanche Fuji", resp.ChainID)
	}

	tx, to, uri := decodeMint(t, resp)
	if tx.To != common.HexToAddress(testContract) {
		t.Fatalf("expected tx to %s, got %s", testContract, tx.To.Hex())
	}
	if tx.ChainID != 43113 {
		t.Fatalf("expected chain id 43113, got %d", tx.ChainID)
	}
	if tx.Value.Sign() != 0 {
		t.Fatalf("expected zero value, got %s", tx.Value)
	}
	if to != common.HexToAddress(testRecipient) {
		t.Fatalf("expected recipient %s, got %s", testRecipient, to.Hex())
	}
	if uri != "ipfs://"+metadataCID {
		t.Fatalf("expected token uri %q, got %q", "ipfs://"+metadataCID, uri)
	}
}

func TestMintService_MintImage_NotConfigured(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(false).Once()

	svc := newTestService(t, pinner, "svg")

	_, err := svc.MintImage(context.Background(), imageRequest())
	svcErr := requireStatus(t, err, http.StatusInternalServerError)
	if svcErr.Message != "Pinata API Key and Secret are not configured in environment variables." {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
	if !errors.Is(err, pinning.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestMintService_MintImage_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *nft.MintImageRequest)
	}{
		{"recipient", func(r *nft.MintImageRequest) { r.Recipient = "" }},
		{"name", func(r *nft.MintImageRequest) { r.Name = "  " }},
		{"description", func(r *nft.MintImageRequest) { r.Description = "" }},
		{"image", func(r *nft.MintImageRequest) { r.Image = nil }},
		{"empty image", func(r *nft.MintImageRequest) { r.Image.Data = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinner := mocks.NewPinner(t)
			pinner.EXPECT().Configured().Return(true).Once()
			svc := newTestService(t, pinner, "svg")

			req := imageRequest()
			tt.mutate(req)

			_, err := svc.MintImage(context.Background(), req)
			svcErr := requireStatus(t, err, http.StatusBadRequest)
			if svcErr.Message != "Missing required form fields." {
				t.Fatalf("unexpected message %q", svcErr.Message)
			}
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestMintService_MintImage_InvalidRecipient(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	svc := newTestService(t, pinner, "svg")

	req := imageRequest()
	req.Recipient = "alice.eth"

	_, err := svc.MintImage(context.Background(), req)
	requireStatus(t, err, http.StatusBadRequest)
	if !errors.Is(err, ethereum.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestMintService_MintImage_NotAnImage(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	svc := newTestService(t, pinner, "svg")

	req := imageRequest()
	req.Image = &nft.File{Name: "notes.txt", ContentType: "image/png", Data: []byte("just some text")}

	_, err := svc.MintImage(context.Background(), req)
	requireStatus(t, err, http.StatusBadRequest)
	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestMintService_MintImage_PinningFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "rejected",
			err:     fmt.Errorf("pin file: %w", &pinning.APIError{StatusCode: 401, Message: "Invalid API key"}),
			status:  http.StatusBadGateway,
			message: "Invalid API key",
		},
		{
			name:    "timeout",
			err:     fmt.Errorf("pin file: request failed: %w", context.DeadlineExceeded),
			status:  http.StatusGatewayTimeout,
			message: "Pinning service timed out.",
		},
		{
			name:    "transport",
			err:     errors.New("pin file: request failed: connection refused"),
			status:  http.StatusBadGateway,
			message: "Failed to upload image to IPFS.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinner := mocks.NewPinner(t)
			pinner.EXPECT().Configured().Return(true).Once()
			pinner.EXPECT().PinFile(mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			svc := newTestService(t, pinner, "svg")

			_, err := svc.MintImage(context.Background(), imageRequest())
			svcErr := requireStatus(t, err, tt.status)
			if svcErr.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, svcErr.Message)
			}
		})
	}
}

func TestMintService_MintImage_MetadataPinFailure(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	pinner.EXPECT().PinFile(mock.Anything, mock.Anything).Return(&pinning.PinResult{IpfsHash: imageCID}, nil).Once()
	pinner.EXPECT().PinJSON(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &pinning.APIError{StatusCode: 500, Message: "storage unavailable"}).Once()
	svc := newTestService(t, pinner, "svg")

	_, err := svc.MintImage(context.Background(), imageRequest())
	svcErr := requireStatus(t, err, http.StatusBadGateway)
	if svcErr.Message != "storage unavailable" {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
}

func TestMintService_MintCertificate(t *testing.T) {
	ctx := context.Background()
	var certID string

	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	pinner.EXPECT().
		PinFile(ctx, mock.MatchedBy(func(f *pinning.File) bool {
			return f.ContentType == "image/svg+xml" &&
				strings.HasPrefix(f.Name, "certificate-") &&
				strings.HasSuffix(f.Name, ".svg") &&
				strings.Contains(string(f.Data), "Ada Lovelace") &&
				strings.Contains(string(f.Data), "Awarded to Ada Lovelace for Solidity.")
		})).
		Return(&pinning.PinResult{IpfsHash: imageCID}, nil).Once()
	pinner.EXPECT().
		PinJSON(ctx, "Solidity Certificate metadata", mock.AnythingOfType("*nft.TokenMetadata")).
		Run(func(_ context.Context, _ string, content interface{}) {
			m := content.(*nft.TokenMetadata)
			if m.Name != "Solidity Certificate" {
				t.Errorf("unexpected name %q", m.Name)
			}
			if m.Description != "Awarded to Ada Lovelace for Solidity." {
				t.Errorf("unexpected description %q", m.Description)
			}
			if m.Image != "ipfs://"+imageCID {
				t.Errorf("unexpected image %q", m.Image)
			}
			traits := map[string]string{}
			for _, a := range m.Attributes {
				traits[a.TraitType] = a.Value
			}
			want := map[string]string{
				nft.TraitMintedBy:    "SherryLinks API",
				nft.TraitRecipient:   "Ada Lovelace",
				nft.TraitAchievement: "Solidity",
				nft.TraitIssuer:      "SherryLinks",
				nft.TraitIssuedOn:    "2026-03-14",
			}
			for k, v := range want {
				if traits[k] != v {
					t.Errorf("trait %q: expected %q, got %q", k, v, traits[k])
				}
			}
			certID = traits[nft.TraitCertificateID]
		}).
		Return(&pinning.PinResult{IpfsHash: metadataCID}, nil).Once()

	svc := newTestService(t, pinner, "svg")

	resp, err := svc.MintCertificate(ctx, &nft.MintCertificateRequest{
		Recipient:   testRecipient,
		Name:        "Ada Lovelace",
		Achievement: "Solidity",
	})
	if err != nil {
		t.Fatalf("MintCertificate() failed: %v", err)
	}
	if certID == "" {
		t.Fatal("expected a certificate id trait")
	}

	_, to, uri := decodeMint(t, resp)
	if to != common.HexToAddress(testRecipient) {
		t.Fatalf("unexpected recipient %s", to.Hex())
	}
	if uri != "ipfs://"+metadataCID {
		t.Fatalf("unexpected token uri %q", uri)
	}
}

func TestMintService_MintCertificate_DescriptionOnImageAndMetadata(t *testing.T) {
	const description = "Finished the security track."

	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	pinner.EXPECT().
		PinFile(mock.Anything, mock.MatchedBy(func(f *pinning.File) bool {
			return strings.Contains(string(f.Data), description) &&
				!strings.Contains(string(f.Data), "Awarded to")
		})).
		Return(&pinning.PinResult{IpfsHash: imageCID}, nil).Once()
	pinner.EXPECT().
		PinJSON(mock.Anything, "Audit Certificate metadata", mock.MatchedBy(func(m *nft.TokenMetadata) bool {
			return m.Description == description
		})).
		Return(&pinning.PinResult{IpfsHash: metadataCID}, nil).Once()

	svc := newTestService(t, pinner, "svg")

	if _, err := svc.MintCertificate(context.Background(), &nft.MintCertificateRequest{
		Recipient:   testRecipient,
		Name:        "Grace",
		Achievement: "Audit",
		Description: "  " + description + " ",
	}); err != nil {
		t.Fatalf("MintCertificate() failed: %v", err)
	}
}

func TestMintService_MintCertificate_PNG(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	pinner.EXPECT().
		PinFile(mock.Anything, mock.MatchedBy(func(f *pinning.File) bool {
			return f.ContentType == "image/png" && strings.HasSuffix(f.Name, ".png")
		})).
		Return(&pinning.PinResult{IpfsHash: imageCID}, nil).Once()
	pinner.EXPECT().
		PinJSON(mock.Anything, mock.Anything, mock.MatchedBy(func(m *nft.TokenMetadata) bool {
			return m.Description == "For outstanding work."
		})).
		Return(&pinning.PinResult{IpfsHash: metadataCID}, nil).Once()

	svc := newTestService(t, pinner, "png")

	_, err := svc.MintCertificate(context.Background(), &nft.MintCertificateRequest{
		Recipient:   testRecipient,
		Name:        "Grace",
		Achievement: "Compilers",
		Description: "For outstanding work.",
	})
	if err != nil {
		t.Fatalf("MintCertificate() failed: %v", err)
	}
}

func TestMintService_MintCertificate_MissingFields(t *testing.T) {
	pinner := mocks.NewPinner(t)
	pinner.EXPECT().Configured().Return(true).Once()
	svc := newTestService(t, pinner, "svg")

	_, err := svc.MintCertificate(context.Background(), &nft.MintCertificateRequest{
		Recipient: testRecipient,
		Name:      "Ada",
	})
	requireStatus(t, err, http.StatusBadRequest)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
