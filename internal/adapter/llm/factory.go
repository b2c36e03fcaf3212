package llm

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	// EnvPitstopMode is the environment variable name for mode selection.
	EnvPitstopMode = "PITSTOP_MODE"
	// ModeMock indicates the mock client should be used.
	ModeMock = "MOCK"
)

// NewClient creates a model client based on the PITSTOP_MODE environment
// variable. PITSTOP_MODE=MOCK returns a MockClient; anything else returns
// a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger *zap.Logger) (Client, error) {
	if os.Getenv(EnvPitstopMode) == ModeMock {
		logger.Info("PITSTOP_MODE=MOCK detected, using mock model client")
		return NewMockClient(), nil
	}
	return NewGeminiClient(ctx, apiKey, modelName, timeout)
}
