package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/habitd/internal/config"
)

func TestNewDisabled(t *testing.T) {
	cfg := config.DefaultTelemetry()

	tel, err := New(context.Background(), &cfg)
	require.NoError(t, err)

	assert.False(t, tel.IsEnabled())
	assert.NotNil(t, tel.Tracer("habitd/test"), "disabled telemetry still hands out tracers")
	assert.NotNil(t, tel.Meter("habitd/test"))
	assert.True(t, tel.Health().Healthy)
	assert.False(t, tel.Health().Degraded)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.DefaultTelemetry()
	cfg.Enabled = true
	cfg.Endpoint = ""

	_, err := New(context.Background(), &cfg)
	require.Error(t, err)
}

func TestNilReceiverSafety(t *testing.T) {
	var tel *Telemetry

	assert.NotNil(t, tel.Tracer("x"))
	assert.NotNil(t, tel.Meter("x"))
	assert.Nil(t, tel.LoggerProvider())
	assert.False(t, tel.IsEnabled())
	assert.True(t, tel.Health().Degraded)
	require.NoError(t, tel.Shutdown(context.Background()))
	require.NoError(t, tel.ForceFlush(context.Background()))
}

func TestShutdownMarksUnhealthy(t *testing.T) {
	tt := NewTestTelemetry()
	require.True(t, tt.IsEnabled())

	require.NoError(t, tt.Shutdown(context.Background()))
	assert.False(t, tt.IsEnabled())
}

func TestSpanRecording(t *testing.T) {
	tt := NewTestTelemetry()

	_, span := tt.Tracer("habitd/analyzer").Start(context.Background(), "analyze")
	span.End()

	tt.AssertSpanExists(t, "analyze")
	assert.Nil(t, tt.SpanByName("missing"))
}

func TestStripScheme(t *testing.T) {
	assert.Equal(t, "collector:4318", stripScheme("https://collector:4318"))
	assert.Equal(t, "collector:4318", stripScheme("http://collector:4318"))
	assert.Equal(t, "collector:4318", stripScheme("collector:4318"))
}
