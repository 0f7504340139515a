package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// En production la salida es JSON con el campo service fijo y el nivel
// configurado filtra los eventos por debajo.
func TestLogger_NivelYCamposFijos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "warn",
		Service: "almacen-api",
		Out:     &buf,
	})

	log.Info().Msg("suprimido")
	log.Warn().Str("sector", "Depósito A").Msg("stock bajo")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "info queda por debajo del nivel warn")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "almacen-api", entry["service"])
	assert.Equal(t, "Depósito A", entry["sector"])
	assert.Equal(t, "stock bajo", entry["message"])
}

func TestLogger_NivelInvalidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "ruidoso", Out: &buf})

	log.Debug().Msg("suprimido")
	log.Info().Msg("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "visible")
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.WithComponent("http").Info().Msg("escuchando")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "http", entry["component"])
}
