package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chainsafe/nft-mint-action/pkg/action"
	apperrors "github.com/chainsafe/nft-mint-action/pkg/app/errors"
	"github.com/chainsafe/nft-mint-action/pkg/nft"
)

const serviceName = "MintService"

const (
	logFieldMaxLen     = 50
	addressDisplaySize = 14
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the mint Service.
// It logs method entry/exit, duration, errors, and shortened request data.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// NFTMetadata wraps the service method with logging
func (ls *logService) NFTMetadata(ctx context.Context, baseURL string) (resp *action.Metadata, err error) {
	defer ls.logDescriptor("NFTMetadata", baseURL, time.Now(), &err)
	return ls.svc.NFTMetadata(ctx, baseURL)
}

// CertificateMetadata wraps the service method with logging
func (ls *logService) CertificateMetadata(ctx context.Context, baseURL string) (resp *action.Metadata, err error) {
	defer ls.logDescriptor("CertificateMetadata", baseURL, time.Now(), &err)
	return ls.svc.CertificateMetadata(ctx, baseURL)
}

func (ls *logService) logDescriptor(method, baseURL string, start time.Time, errp *error) {
	if *errp != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.String("base_url", baseURL),
			zap.Duration("duration", time.Since(start)),
			zap.Error(*errp),
		)
		return
	}
	ls.logger.Debug(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("base_url", baseURL),
		zap.Duration("duration", time.Since(start)),
	)
}

// MintImage wraps the service method with logging
func (ls *logService) MintImage(
	ctx context.Context,
	req *nft.MintImageRequest,
) (resp *action.ExecutionResponse, err error) {
	start := time.Now()

	var imageName string
	var imageSize int
	if req != nil && req.Image != nil {
		imageName = req.Image.Name
		imageSize = len(req.Image.Data)
	}

	// Log method entry
	ls.logger.Info("MintImage started",
		zap.String("service", serviceName),
		zap.String("method", "MintImage"),
		zap.String("recipient", shortenAddress(recipientOf(req))),
		zap.String("name", truncateString(nameOf(req), logFieldMaxLen)),
		zap.String("image_name", truncateString(imageName, logFieldMaxLen)),
		zap.Int("image_bytes", imageSize),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Log(failureLevel(err), "MintImage failed",
				zap.String("service", serviceName),
				zap.String("method", "MintImage"),
				zap.String("recipient", shortenAddress(recipientOf(req))),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("MintImage completed",
				zap.String("service", serviceName),
				zap.String("method", "MintImage"),
				zap.String("recipient", shortenAddress(recipientOf(req))),
				zap.String("chain", resp.ChainID),
				zap.Int("tx_bytes", len(resp.SerializedTransaction)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.MintImage(ctx, req)
}

// MintCertificate wraps the service method with logging
func (ls *logService) MintCertificate(
	ctx context.Context,
	req *nft.MintCertificateRequest,
) (resp *action.ExecutionResponse, err error) {
	start := time.Now()

	var recipient, achievement string
	if req != nil {
		recipient = req.Recipient
		achievement = req.Achievement
	}

	// Log method entry
	ls.logger.Info("MintCertificate started",
		zap.String("service", serviceName),
		zap.String("method", "MintCertificate"),
		zap.String("recipient", shortenAddress(recipient)),
		zap.String("achievement", truncateString(achievement, logFieldMaxLen)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Log(failureLevel(err), "MintCertificate failed",
				zap.String("service", serviceName),
				zap.String("method", "MintCertificate"),
				zap.String("recipient", shortenAddress(recipient)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("MintCertificate completed",
				zap.String("service", serviceName),
				zap.String("method", "MintCertificate"),
				zap.String("recipient", shortenAddress(recipient)),
				zap.String("chain", resp.ChainID),
				zap.Int("tx_bytes", len(resp.SerializedTransaction)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.MintCertificate(ctx, req)
}

// failureLevel keeps client mistakes out of the error stream.
func failureLevel(err error) zapcore.Level {
	if apperrors.IsInternalError(err) {
		return zapcore.ErrorLevel
	}
	return zapcore.WarnLevel
}

func recipientOf(req *nft.MintImageRequest) string {
	if req == nil {
		return ""
	}
	return req.Recipient
}

func nameOf(req *nft.MintImageRequest) string {
	if req == nil {
		return ""
	}
	return req.Name
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// shortenAddress keeps the head and tail of an address: 0x1234...abcd
func shortenAddress(addr string) string {
	if addr == "" {
		return "<empty>"
	}
	if len(addr) <= addressDisplaySize {
		return addr
	}
	return fmt.Sprintf("%s...%s", addr[:6], addr[len(addr)-4:])
}
