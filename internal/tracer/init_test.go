package tracer

import (
	"context"
	"testing"

	"mind-nest-be/internal/config"
	"mind-nest-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(context.Background(), config.AppConfig{OtelEnabled: false}, logger.NewNopLogger())
	assert.NoError(t, shutdown(context.Background()))
}
