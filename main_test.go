package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station/scene/trace"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "station dev")
}

func TestHeadlessWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "frame.png")
	tr := filepath.Join(dir, "trace.yaml")

	_, err := run(t, "headless",
		"--width", "32", "--height", "18", "--particles", "20", "--seed", "7",
		"--log-level", "error", "--fast", "--ticks", "12",
		"--schedule", "4:contact", "--snapshot", snap, "--trace", tr, "--trace-every", "5")
	require.NoError(t, err)

	info, err := os.Stat(snap)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	got, err := trace.Load(tr)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Every)
	require.NotEmpty(t, got.Samples)
	assert.Equal(t, "contact", got.Samples[len(got.Samples)-1].Section)
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "headless", "--section", "blog", "--ticks", "1")
	assert.ErrorContains(t, err, "unknown section")

	_, err = run(t, "headless", "--schedule", "soon:home", "--ticks", "1")
	assert.Error(t, err)

	_, err = run(t, "headless", "--log-level", "loud", "--ticks", "1")
	assert.ErrorContains(t, err, "log level")
}

func TestEnvironmentError(t *testing.T) {
	t.Setenv("STATION_TPS", "many")
	_, err := run(t, "version")
	assert.ErrorContains(t, err, "parse env:")
}
