package pkg

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	dest := filepath.Join(t.TempDir(), "blockterm.log")
	require.NoError(t, InitLog(dest, "TEST: "))

	logger := make(chan string, 2)
	logger <- "first"
	logger <- "second"
	close(logger)

	var recent []string
	HandleLog(logger, func(msg string) { recent = append(recent, msg) })

	require.Len(t, recent, 2)
	assert.True(t, strings.HasSuffix(recent[1], " second"))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TEST: ")
	assert.Contains(t, string(data), "second")

	err = InitLog(filepath.Join(t.TempDir(), "missing", "blockterm.log"), "")
	require.Error(t, err)
}
