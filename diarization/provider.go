package diarization

import (
	"context"

	"github.com/kbukum/fusionkit/provider"
)

// Provider is the interface that diarization backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Diarize sends audio for speaker diarization and returns the result.
	// Unavailability is reported with errors.DiarizationUnavailable;
	// a failure on this specific input with errors.DiarizationFailed.
	Diarize(ctx context.Context, req DiarizationRequest) (*DiarizationResponse, error)
}
