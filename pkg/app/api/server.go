// Package api implements app.Runner for the mint action API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-mint-action/pkg/action"
	apphttp "github.com/chainsafe/nft-mint-action/pkg/app/http"
	"github.com/chainsafe/nft-mint-action/pkg/certificate"
	"github.com/chainsafe/nft-mint-action/pkg/config"
	"github.com/chainsafe/nft-mint-action/pkg/ethereum"
	nftservice "github.com/chainsafe/nft-mint-action/pkg/nft/service"
	"github.com/chainsafe/nft-mint-action/pkg/pinning"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting NFT mint action server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	mintService, err := s.newMintService(logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(nftservice.NewLog(mintService, logger), logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) newMintService(logger *zap.Logger) (nftservice.Service, error) {
	cfg := s.cfg

	chain, err := action.LookupChain(cfg.Chain.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve chain: %w", err)
	}

	minter, err := ethereum.NewMinter(cfg.Chain.ContractAddress, chain.ID)
	if err != nil {
		return nil, fmt.Errorf("create minter: %w", err)
	}

	pinner, err := pinning.NewClient(&cfg.Pinning, pinning.WithLogger(logger.Named("pinning")))
	if err != nil {
		return nil, fmt.Errorf("create pinning client: %w", err)
	}
	if !cfg.Pinning.HasPinningCredentials() {
		logger.Warn("Pinning credentials are not configured; mint requests will fail",
			zap.String("hint", "set PINATA_API_KEY and PINATA_API_SECRET, or PINATA_JWT"))
	}

	logger.Info("Mint target configured",
		zap.String("chain", chain.DisplayName),
		zap.Uint64("chain_id", minter.ChainID()),
		zap.String("contract", minter.Contract().Hex()),
		zap.String("pinning_url", cfg.Pinning.BaseURL),
		zap.String("certificate_format", cfg.Certificate.Format),
	)

	return nftservice.NewService(
		nftservice.Options{
			Chain:             chain,
			ProjectURL:        cfg.Action.URL,
			IconURL:           cfg.Action.Icon,
			MintedBy:          cfg.Action.MintedBy,
			Issuer:            cfg.Certificate.Issuer,
			CertificateFormat: cfg.Certificate.Format,
		},
		pinner,
		minter,
		certificate.NewRenderer(cfg.Certificate.FontPath),
		logger,
	), nil
}

func (s *Server) setupRouter(mintService nftservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	requestTimeout := s.cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apphttp.CORS)
	r.NotFound(apphttp.NotFound)
	r.MethodNotAllowed(apphttp.MethodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	// Mint action endpoints
	r.Group(func(r chi.Router) {
		r.Use(apphttp.RateLimit(s.cfg.Server.RateLimit.RequestsPerSecond, s.cfg.Server.RateLimit.Burst))
		nftservice.RegisterRoutes(r, mintService, nftservice.RouteConfig{
			BaseURL:        s.cfg.Action.BaseURL,
			MaxUploadBytes: s.cfg.Server.MaxUploadBytes,
		}, logger)
	})

	return r
}
