package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "--sizes", "100,1000", "--worst-sizes", "20", "--seed", "3", "-w", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "pool workers: 2, seed: 3")
	assert.Contains(t, out, "random - 1,000 samples")
	assert.Contains(t, out, "worst-case - 20 samples")
	assert.NotContains(t, out, "FAILED")
}

func TestRunJSONWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [50]\ndistributions: [uniform]\nseed: 11\n"), 0o600))

	out, err := execute(t, "run", "-c", path, "--format", "json", "--seed", "12")
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Seed uint64 `json:"seed"`
		} `json:"info"`
		Results []struct {
			Distribution string `json:"distribution"`
			Size         int    `json:"size"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint64(12), doc.Info.Seed)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "uniform", doc.Results[0].Distribution)
	assert.Equal(t, 50, doc.Results[0].Size)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml", "--sizes", "10", "-d", "random")
	assert.Error(t, err)

	_, err = execute(t, "run", "-d", "gaussian")
	assert.Error(t, err)

	_, err = execute(t, "run", "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
