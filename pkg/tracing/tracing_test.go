package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-intake-router/pkg/log"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), log.NewNop(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_UnknownExporter(t *testing.T) {
	_, err := Init(context.Background(), log.NewNop(), Config{Enabled: true, Exporter: "zipkin"})
	assert.ErrorContains(t, err, "unknown exporter")
}

func TestInit_Stdout(t *testing.T) {
	shutdown, err := Init(context.Background(), log.NewNop(), Config{Enabled: true, Exporter: ExporterStdout, SampleRatio: 0})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.25, clampRatio(0.25))
}
