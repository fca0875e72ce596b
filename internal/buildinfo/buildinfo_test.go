package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	setBuild(t, "dev", "unknown", "unknown")
	assert.Equal(t, "dev", Short())

	setBuild(t, "dev", "abc1234", "unknown")
	assert.Equal(t, "abc1234", Short())

	setBuild(t, "v0.3.0", "abc1234", "2026-01-02")
	assert.Equal(t, "v0.3.0", Short())
	assert.Equal(t, "station v0.3.0 (commit abc1234, built 2026-01-02)", String())
	assert.Len(t, LogAttrs(), 6)
}
