package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCommand_GoldenEighth(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0.125", "rot"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "eval_eighth", buf.Bytes())
}

func TestEvalCommand_GoldenDegrees(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"30", "deg"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "eval_deg30", buf.Bytes())
}

func TestEvalCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0.25", "rot"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string     `json:"status"`
		Data   Evaluation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "0x4000000000000000", resp.Data.Repr)
	assert.Equal(t, 1.0, resp.Data.Sin, "sentinel path, no approximation error")
	assert.Equal(t, 90.0, resp.Data.Degrees)
}

func TestEvalCommand_ParseFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1", "parsec"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to parse angle")
}

func TestEvalCommand_MissingArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--stdin")
}

func TestEvalCommand_Stdin(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader("0.125 rot\n1 parsec\n"))
	cmd.SetArgs([]string{"--stdin"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "sin: 0.7071067811865475")
	assert.Contains(t, out, "cos: 0.7071067811865475")
	assert.Contains(t, out, "Error [E_PARSE]", "malformed lines report and continue")
}
