package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aisrx.yaml")
	body := "host: 10.0.0.5\nport: 1235\nfreq_hz: 162000000\nstation:\n  lat: 51.9\n  lon: 4.5\nlogfile: /tmp/aisrx.log\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5", cfg.Host)
	require.Equal(t, 1235, cfg.Port)
	require.Equal(t, 51.9, cfg.Station.Lat)
	require.Equal(t, "/tmp/aisrx.log", cfg.LogFile)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	require.Error(t, err)
}

func TestDefaultHasSaneHostAndFrequency(t *testing.T) {
	cfg := Default()
	require.NotEmpty(t, cfg.Host)
	require.Equal(t, uint32(162000000), cfg.FreqHz)
}
