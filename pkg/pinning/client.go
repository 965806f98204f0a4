// Package pinning uploads files and JSON documents to a Pinata-compatible
// pinning service and returns their IPFS content identifiers.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-mint-action/internal/metrics"
	"github.com/chainsafe/nft-mint-action/pkg/config"
)

const (
	pinFilePath = "/pinning/pinFileToIPFS"
	pinJSONPath = "/pinning/pinJSONToIPFS"

	kindFile = "file"
	kindJSON = "json"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 1 << 20
)

// Client talks to the pinning service HTTP API.
type Client struct {
	baseURL    string
	creds      credentials
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// NewClient creates a pinning client. Missing credentials are not an error:
// the client is created and every upload fails with ErrNotConfigured.
func NewClient(cfg *config.PinningConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil pinning config")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("pinning base url is required")
	}
	if cfg.JWT != "" {
		if err := checkJWT(cfg.JWT, time.Now()); err != nil {
			return nil, err
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds: credentials{
			apiKey:    cfg.APIKey,
			apiSecret: cfg.APISecret,
			jwt:       cfg.JWT,
		},
		httpClient: &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool {
	return c.creds.configured()
}

// PinFile uploads a single file and returns its pin.
func (c *Client) PinFile(ctx context.Context, file *File) (*PinResult, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, fmt.Errorf("pin file: empty file")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("pin file: create form part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("pin file: write form part: %w", err)
	}

	meta, err := json.Marshal(pinOptions{Name: file.Name})
	if err != nil {
		return nil, fmt.Errorf("pin file: encode metadata: %w", err)
	}
	if err := mw.WriteField("pinataMetadata", string(meta)); err != nil {
		return nil, fmt.Errorf("pin file: write metadata: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("pin file: close multipart writer: %w", err)
	}

	return c.pin(ctx, kindFile, pinFilePath, mw.FormDataContentType(), &body)
}

// PinJSON uploads content as a JSON document named name.
func (c *Client) PinJSON(ctx context.Context, name string, content any) (*PinResult, error) {
	raw, err := json.Marshal(pinJSONRequest{
		Content:  content,
		Metadata: pinOptions{Name: name},
	})
	if err != nil {
		return nil, fmt.Errorf("pin json: encode content: %w", err)
	}

	return c.pin(ctx, kindJSON, pinJSONPath, "application/json", bytes.NewReader(raw))
}

func (c *Client) pin(ctx context.Context, kind, path, contentType string, body io.Reader) (res *PinResult, err error) {
	if !c.creds.configured() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.PinningUploadsTotal.WithLabelValues(kind, status).Inc()
		metrics.PinningUploadDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("pin %s: build request: %w", kind, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	c.creds.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pin %s: request failed: %w", kind, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("pin %s: read response: %w", kind, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
		c.logger.Warn("Pinning request rejected",
			zap.String("kind", kind),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, fmt.Errorf("pin %s: %w", kind, apiErr)
	}

	var result PinResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("pin %s: decode response: %w", kind, err)
	}
	if _, err := cid.Decode(result.IpfsHash); err != nil {
		return nil, fmt.Errorf("pin %s: invalid content identifier %q: %w", kind, result.IpfsHash, err)
	}

	c.logger.Debug("Pinned content",
		zap.String("kind", kind),
		zap.String("cid", result.IpfsHash),
		zap.Int64("size", result.PinSize),
		zap.Bool("duplicate", result.IsDuplicate),
		zap.Duration("duration", time.Since(start)))

	return &result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
