package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	Version, Commit, Date = "", "", ""
	assert.Equal(t, "dev", Summary())

	Version, Commit, Date = "1.2.3", "0123456789abcdef", "2026-10-19"
	assert.Equal(t, "1.2.3 (commit=0123456, date=2026-10-19)", Summary())

	Commit = ""
	assert.Equal(t, "1.2.3 (date=2026-10-19)", Summary())
}
