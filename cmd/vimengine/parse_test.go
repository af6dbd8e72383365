package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunParse_PrintsCommandKind(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd
	cmd.SetOut(&out)

	err := runParse(cmd, []string{"%s/foo/bar/g"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "command:  substitute")
}

func TestRunParse_PrintsErrorOnBadCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd
	cmd.SetOut(&out)

	err := runParse(cmd, []string{"boguscmd"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "parse error")
}
