package nodeconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func failedValidation(t *testing.T) error {
	t.Helper()
	cfg := validConfig()
	cfg.SaveTrieChanges = Some(false)
	cfg.Consensus.HeaderSyncExpectedHeightPerSecond = 0
	err := NewValidator().WithLogger(nil).Validate(cfg)
	require.Error(t, err)
	return err
}

func TestDumpReport_TextValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, nil))
	assert.Equal(t, "ok\n", buf.String())
}

func TestDumpReport_TextInvalid(t *testing.T) {
	err := failedValidation(t)

	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, err))
	assert.Equal(t, err.Error()+"\n", buf.String())
}

func TestDumpReport_JSON(t *testing.T) {
	err := failedValidation(t)

	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, fmt.Errorf("startup: %w", err), AsJSON()))

	var got report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	require.Len(t, got.Violations, 2)
	assert.Equal(t, CategorySemantics, got.Violations[0].Category)
	assert.Equal(t, "consensus.header_sync_expected_height_per_second should not be 0", got.Violations[1].Message)
}

func TestDumpReport_JSONCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, nil, AsJSON(), WithIndent("")))
	assert.Equal(t, `{"valid":true,"violations":[]}`+"\n", buf.String())
}

func TestDumpReport_YAML(t *testing.T) {
	err := failedValidation(t)

	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, err, AsYAML()))

	var got report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, err.(*ValidationError).Violations, got.Violations)
}

func TestDumpReport_TOML(t *testing.T) {
	err := failedValidation(t)

	var buf bytes.Buffer
	require.NoError(t, DumpReport(&buf, err, AsTOML()))

	var got report
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, err.(*ValidationError).Violations, got.Violations)
}

func TestDumpReport_UnsupportedError(t *testing.T) {
	var buf bytes.Buffer
	cause := errors.New("config is nil")

	err := DumpReport(&buf, cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDumpReport_WriteError(t *testing.T) {
	err := DumpReport(failingWriter{}, nil, AsYAML())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write error: disk full")
}
