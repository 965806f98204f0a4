package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-mint-action/internal/metrics"
	"github.com/chainsafe/nft-mint-action/pkg/action"
	apperrors "github.com/chainsafe/nft-mint-action/pkg/app/errors"
	"github.com/chainsafe/nft-mint-action/pkg/certificate"
	"github.com/chainsafe/nft-mint-action/pkg/ethereum"
	"github.com/chainsafe/nft-mint-action/pkg/nft"
	"github.com/chainsafe/nft-mint-action/pkg/pinning"
)

const (
	kindImage       = "image"
	kindCertificate = "certificate"

	// Paths the descriptors point their actions at.
	ImagePath       = "/api/nft"
	CertificatePath = "/api/certificate"

	issuedOnLayout = "2006-01-02"
)

// Client-facing messages.
const (
	msgMissingFields    = "Missing required form fields."
	msgNotConfigured    = "Pinata API Key and Secret are not configured in environment variables."
	msgInvalidRecipient = "Invalid recipient address."
	msgNotAnImage       = "Uploaded file must be an image."
	msgMetadataFailed   = "Failed to create metadata"
	msgPinTimeout       = "Pinning service timed out."
	msgEncodeFailed     = "Failed to build mint transaction."
	msgRenderFailed     = "Failed to generate certificate image."
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
)

// Pinner stores content on IPFS.
//
//go:generate mockery --name Pinner --output mocks --outpkg mocks --filename mock_pinner.go --with-expecter
type Pinner interface {
	Configured() bool
	PinFile(ctx context.Context, file *pinning.File) (*pinning.PinResult, error)
	PinJSON(ctx context.Context, name string, content any) (*pinning.PinResult, error)
}

// Service defines the mint action operations.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	NFTMetadata(ctx context.Context, baseURL string) (*action.Metadata, error)
	CertificateMetadata(ctx context.Context, baseURL string) (*action.Metadata, error)
	MintImage(ctx context.Context, req *nft.MintImageRequest) (*action.ExecutionResponse, error)
	MintCertificate(ctx context.Context, req *nft.MintCertificateRequest) (*action.ExecutionResponse, error)
}

// Options carries the descriptor and metadata settings.
type Options struct {
	Chain             action.Chain
	ProjectURL        string
	IconURL           string
	MintedBy          string
	Issuer            string
	CertificateFormat string
	// Now is used for certificate issue dates; nil means time.Now.
	Now func() time.Time
}

type mintService struct {
	opts     Options
	pinner   Pinner
	minter   *ethereum.Minter
	renderer *certificate.Renderer
	logger   *zap.Logger
}

// NewService creates the mint service.
func NewService(
	opts Options,
	pinner Pinner,
	minter *ethereum.Minter,
	renderer *certificate.Renderer,
	logger *zap.Logger,
) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if renderer == nil {
		renderer = certificate.NewRenderer("")
	}
	return &mintService{
		opts:     opts,
		pinner:   pinner,
		minter:   minter,
		renderer: renderer,
		logger:   logger,
	}
}

// NFTMetadata returns the descriptor of the image upload action.
func (s *mintService) NFTMetadata(_ context.Context, baseURL string) (*action.Metadata, error) {
	return s.describe(kindImage, action.Metadata{
		URL:         s.opts.ProjectURL,
		Icon:        s.opts.IconURL,
		Title:       "NFT Minter with IPFS Upload",
		BaseURL:     baseURL,
		Description: "Upload an image and provide details to mint an NFT. Metadata is created and stored on IPFS automatically.",
		Actions: []action.Action{{
			Type:        action.TypeDynamic,
			Label:       "Create and Mint NFT",
			Description: "Upload an image to create and mint your NFT.",
			Chains:      action.Chains{Source: s.opts.Chain.Name},
			Path:        ImagePath,
			Params: []action.Param{
				{Name: "recipient", Label: "Recipient Address", Type: action.ParamText, Required: true,
					Description: "The wallet address that will receive the NFT."},
				{Name: "name", Label: "NFT Name", Type: action.ParamText, Required: true,
					Description: "The name of your NFT."},
				{Name: "description", Label: "NFT Description", Type: action.ParamText, Required: true,
					Description: "A description for your NFT."},
				{Name: "image", Label: "Image", Type: action.ParamFile, Required: true,
					Description: "Select an image file to be minted as an NFT."},
			},
		}},
	})
}

// CertificateMetadata returns the descriptor of the certificate action.
func (s *mintService) CertificateMetadata(_ context.Context, baseURL string) (*action.Metadata, error) {
	return s.describe(kindCertificate, action.Metadata{
		URL:         s.opts.ProjectURL,
		Icon:        s.opts.IconURL,
		Title:       "Certificate NFT Minter",
		BaseURL:     baseURL,
		Description: "Generate a certificate of achievement and mint it as an NFT. The certificate image and its metadata are stored on IPFS automatically.",
		Actions: []action.Action{{
			Type:        action.TypeDynamic,
			Label:       "Mint Certificate",
			Description: "Generate a certificate and mint it to the recipient's wallet.",
			Chains:      action.Chains{Source: s.opts.Chain.Name},
			Path:        CertificatePath,
			Params: []action.Param{
				{Name: "recipient", Label: "Recipient Address", Type: action.ParamText, Required: true,
					Description: "The wallet address that will receive the certificate."},
				{Name: "name", Label: "Recipient Name", Type: action.ParamText, Required: true,
					Description: "The name printed on the certificate."},
				{Name: "achievement", Label: "Achievement", Type: action.ParamText, Required: true,
					Description: "What the certificate is awarded for."},
				{Name: "description", Label: "Description", Type: action.ParamTextarea,
					Description: "Optional text printed on the certificate."},
			},
		}},
	})
}

func (s *mintService) describe(kind string, m action.Metadata) (*action.Metadata, error) {
	out, err := action.CreateMetadata(m)
	if err != nil {
		metrics.DescriptorRequestsTotal.WithLabelValues(kind, "error").Inc()
		return nil, apperrors.InternalError(err, msgMetadataFailed)
	}
	metrics.DescriptorRequestsTotal.WithLabelValues(kind, "success").Inc()
	return out, nil
}

// MintImage pins the uploaded image and its metadata, then returns the
// unsigned safeMint transaction.
func (s *mintService) MintImage(ctx context.Context, req *nft.MintImageRequest) (resp *action.ExecutionResponse, err error) {
	defer s.observe(kindImage, time.Now(), &err)

	if !s.pinner.Configured() {
		return nil, apperrors.InternalError(pinning.ErrNotConfigured, msgNotConfigured)
	}
	if !req.Complete() {
		return nil, apperrors.BadRequestError(ErrMissingFields, msgMissingFields)
	}
	if _, err := ethereum.ParseAddress(req.Recipient); err != nil {
		return nil, apperrors.BadRequestError(err, msgInvalidRecipient)
	}

	mt := mimetype.Detect(req.Image.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: detected %s", ErrNotAnImage, mt.String()), msgNotAnImage)
	}

	fileName := req.Image.Name
	if fileName == "" {
		fileName = "image" + mt.Extension()
	}

	metrics.UploadedImageBytes.WithLabelValues(kindImage).Observe(float64(len(req.Image.Data)))
	image, err := s.pinner.PinFile(ctx, &pinning.File{
		Name:        fileName,
		ContentType: mt.String(),
		Data:        req.Image.Data,
	})
	if err != nil {
		return nil, pinError(err, "image")
	}

	return s.mint(ctx, req.Recipient, &nft.TokenMetadata{
		Name:        req.Name,
		Description: req.Description,
		Image:       image.URI(),
		Attributes: []nft.Attribute{
			{TraitType: nft.TraitMintedBy, Value: s.opts.MintedBy},
		},
	})
}

// MintCertificate renders a certificate, pins it with its metadata, then
// returns the unsigned safeMint transaction.
func (s *mintService) MintCertificate(ctx context.Context, req *nft.MintCertificateRequest) (resp *action.ExecutionResponse, err error) {
	defer s.observe(kindCertificate, time.Now(), &err)

	if !s.pinner.Configured() {
		return nil, apperrors.InternalError(pinning.ErrNotConfigured, msgNotConfigured)
	}
	if !req.Complete() {
		return nil, apperrors.BadRequestError(ErrMissingFields, msgMissingFields)
	}
	if _, err := ethereum.ParseAddress(req.Recipient); err != nil {
		return nil, apperrors.BadRequestError(err, msgInvalidRecipient)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fmt.Sprintf("Awarded to %s for %s.", strings.TrimSpace(req.Name), strings.TrimSpace(req.Achievement))
	}

	cert := certificate.New(req.Name, req.Recipient, req.Achievement, description, s.opts.Issuer, s.opts.Now())
	rendered, err := s.renderer.Render(cert, s.opts.CertificateFormat)
	if err != nil {
		return nil, apperrors.InternalError(err, msgRenderFailed)
	}

	metrics.UploadedImageBytes.WithLabelValues(kindCertificate).Observe(float64(len(rendered.Data)))
	image, err := s.pinner.PinFile(ctx, &pinning.File{
		Name:        cert.FileName(rendered.Extension),
		ContentType: rendered.ContentType,
		Data:        rendered.Data,
	})
	if err != nil {
		return nil, pinError(err, "certificate image")
	}

	return s.mint(ctx, req.Recipient, &nft.TokenMetadata{
		Name:        cert.Achievement + " Certificate",
		Description: cert.Description,
		Image:       image.URI(),
		Attributes: []nft.Attribute{
			{TraitType: nft.TraitMintedBy, Value: s.opts.MintedBy},
			{TraitType: nft.TraitRecipient, Value: cert.RecipientName},
			{TraitType: nft.TraitAchievement, Value: cert.Achievement},
			{TraitType: nft.TraitCertificateID, Value: cert.ID.String()},
			{TraitType: nft.TraitIssuer, Value: cert.Issuer},
			{TraitType: nft.TraitIssuedOn, Value: cert.IssuedAt.Format(issuedOnLayout)},
		},
	})
}

// mint pins the token metadata and encodes safeMint(recipient, ipfs://<metadata>).
func (s *mintService) mint(ctx context.Context, recipient string, meta *nft.TokenMetadata) (*action.ExecutionResponse, error) {
	pinned, err := s.pinner.PinJSON(ctx, meta.Name+" metadata", meta)
	if err != nil {
		return nil, pinError(err, "metadata")
	}

	tx, err := s.minter.BuildSafeMint(recipient, pinned.URI())
	if err != nil {
		if errors.Is(err, ethereum.ErrInvalidAddress) {
			return nil, apperrors.BadRequestError(err, msgInvalidRecipient)
		}
		return nil, apperrors.InternalError(err, msgEncodeFailed)
	}

	serialized, err := ethereum.SerializeTransaction(tx)
	if err != nil {
		return nil, apperrors.InternalError(err, msgEncodeFailed)
	}

	s.logger.Debug("Mint transaction built",
		zap.String("token_uri", pinned.URI()),
		zap.String("image", meta.Image),
		zap.String("contract", tx.To.Hex()),
		zap.Uint64("chain_id", tx.ChainID))

	return &action.ExecutionResponse{
		SerializedTransaction: serialized,
		ChainID:               s.opts.Chain.DisplayName,
	}, nil
}

func (s *mintService) observe(kind string, start time.Time, errp *error) {
	status := "success"
	if *errp != nil {
		status = "error"
	}
	metrics.MintRequestsTotal.WithLabelValues(kind, status).Inc()
	metrics.MintDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// pinError converts a pinning failure into a client-facing error. Rejections
// by the pinning service carry its own message.
func pinError(err error, what string) error {
	var apiErr *pinning.APIError
	var netErr net.Error
	switch {
	case errors.Is(err, pinning.ErrNotConfigured):
		return apperrors.InternalError(err, msgNotConfigured)
	case errors.As(err, &apiErr):
		return apperrors.DependencyFailureError(err, apiErr.Message)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.TimeoutError(err, msgPinTimeout)
	default:
		return apperrors.DependencyFailureError(err, fmt.Sprintf("Failed to upload %s to IPFS.", what))
	}
}
