package service

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-mint-action/pkg/app/errors"
	apphttp "github.com/chainsafe/nft-mint-action/pkg/app/http"
	"github.com/chainsafe/nft-mint-action/pkg/nft"
)

const (
	defaultHost           = "localhost:3000"
	defaultMaxUploadBytes = 10 << 20
	// multipartMemory is how much of a form is buffered in memory before
	// spilling file parts to disk.
	multipartMemory = 8 << 20
)

// RouteConfig configures the HTTP surface.
type RouteConfig struct {
	// BaseURL overrides the descriptor baseUrl derived from request headers.
	BaseURL string
	// MaxUploadBytes caps POST bodies.
	MaxUploadBytes int64
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	cfg     RouteConfig
	logger  *zap.Logger
}

// RegisterRoutes registers the mint action endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, cfg RouteConfig, logger *zap.Logger) {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HTTP{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}

	r.Get(ImagePath, apphttp.HandleError(h.nftMetadata))
	r.Post(ImagePath, apphttp.HandleError(h.mintImage))
	r.Options(ImagePath, apphttp.Preflight)

	r.Get(CertificatePath, apphttp.HandleError(h.certificateMetadata))
	r.Post(CertificatePath, apphttp.HandleError(h.mintCertificate))
	r.Options(CertificatePath, apphttp.Preflight)
}

func (h *HTTP) nftMetadata(w http.ResponseWriter, r *http.Request) error {
	m, err := h.service.NFTMetadata(r.Context(), h.baseURL(r))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, m)
	return nil
}

func (h *HTTP) certificateMetadata(w http.ResponseWriter, r *http.Request) error {
	m, err := h.service.CertificateMetadata(r.Context(), h.baseURL(r))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, m)
	return nil
}

// mintImage handles multipart submissions with recipient, name, description and image fields.
func (h *HTTP) mintImage(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return h.rejected(r, formError(err))
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	req := &nft.MintImageRequest{
		Recipient:   strings.TrimSpace(r.FormValue("recipient")),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return h.rejected(r, formError(err))
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return h.rejected(r, formError(err))
		}
		req.Image = &nft.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	resp, err := h.service.MintImage(r.Context(), req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// mintCertificate accepts a JSON body, or form and query parameters.
func (h *HTTP) mintCertificate(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	var req nft.MintCertificateRequest
	if isJSON(r) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return h.rejected(r, formError(err))
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return h.rejected(r, apperrors.BadRequestError(err, "invalid JSON"))
		}
	} else {
		req = nft.MintCertificateRequest{
			Recipient:   r.FormValue("recipient"),
			Name:        r.FormValue("name"),
			Achievement: r.FormValue("achievement"),
			Description: r.FormValue("description"),
		}
	}
	req.Recipient = strings.TrimSpace(req.Recipient)

	resp, err := h.service.MintCertificate(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// baseURL returns the configured base URL, or one built from the request's
// X-Forwarded-Proto and Host headers.
func (h *HTTP) baseURL(r *http.Request) string {
	if h.cfg.BaseURL != "" {
		return strings.TrimRight(h.cfg.BaseURL, "/")
	}
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
	}
	host := r.Host
	if host == "" {
		host = defaultHost
	}
	return proto + "://" + host
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// rejected logs a request the handler refuses before it reaches the service.
func (h *HTTP) rejected(r *http.Request, err error) error {
	h.logger.Warn("Rejected mint request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int64("content_length", r.ContentLength),
		zap.Error(err),
	)
	return err
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.BadRequestError(err, "Request body too large.")
	}
	return apperrors.BadRequestError(err, "Invalid form data.")
}
