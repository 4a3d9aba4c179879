package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSweep_AccuracyBound(t *testing.T) {
	report := runSweep(1 << 12)
	assert.Equal(t, 1<<12, report.Steps)
	assert.Greater(t, report.MaxAbsError, 0.0)
	assert.Less(t, report.MaxAbsError, 2e-5,
		"bound from table resolution and first-order correction")
	assert.NotEqual(t, "0x0000000000000000", report.WorstRepr)
}

func TestSweepReport_String(t *testing.T) {
	r := SweepReport{Steps: 4096, MaxAbsError: 1.5e-5, WorstRepr: "0x0000000000000001"}
	s := r.String()
	assert.Contains(t, s, "4,096 samples")
	assert.Contains(t, s, "1.5e-05")
}

func TestSweepCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSweepCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--steps", "1024"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   SweepReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1024, resp.Data.Steps)
	assert.Less(t, resp.Data.MaxAbsError, 2e-5)
}

func TestSweepCommand_RejectsNonPositiveSteps(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSweepCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--steps", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
