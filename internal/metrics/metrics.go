package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MintRequestsTotal counts mint submissions by kind (image, certificate) and status
	MintRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_mint_requests_total",
			Help: "Total number of mint submissions",
		},
		[]string{"kind", "status"},
	)

	// MintDuration tracks end-to-end submission time, pinning included
	MintDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nft_mint_duration_seconds",
			Help:    "Mint submission duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"kind"},
	)

	// DescriptorRequestsTotal counts descriptor (GET) requests by kind
	DescriptorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_descriptor_requests_total",
			Help: "Total number of action descriptor requests",
		},
		[]string{"kind", "status"},
	)

	// PinningUploadsTotal counts uploads to the pinning service by kind (file, json) and status
	PinningUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_pinning_uploads_total",
			Help: "Total number of pinning service uploads",
		},
		[]string{"kind", "status"},
	)

	// PinningUploadDuration tracks pinning service latency
	PinningUploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nft_pinning_upload_duration_seconds",
			Help:    "Pinning service upload duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// UploadedImageBytes tracks the size of images pinned for minting
	UploadedImageBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nft_uploaded_image_bytes",
			Help:    "Size of pinned NFT images in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"kind"},
	)
)
