// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestPrintHeader(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ul := &UserLog{log: luxlog.NewNoOpLogger(), writer: &buf}

	ul.PrintHeader("Deploying program")

	out := buf.String()
	require.Contains(out, "Deploying program")
	require.Equal(2, bytes.Count(buf.Bytes(), []byte("===================================")))
}

func TestStepTracker(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	ul := &UserLog{log: luxlog.NewNoOpLogger(), writer: &buf}
	st := NewStepTracker(ul)

	st.Start("Writing buffer")
	st.Failed("exit status 1")

	require.Contains(buf.String(), "✗")
	require.Contains(buf.String(), "Writing buffer")
	require.Contains(buf.String(), "FAILED: exit status 1")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	ul := &UserLog{log: luxlog.NewNoOpLogger(), writer: &buf}
	ul.PrintWarning("run 'anchor idl set-buffer %s'", "Prog111")
	require.Contains(t, buf.String(), "WARNING: run 'anchor idl set-buffer Prog111'")
}

func TestDefaultTable(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	table := DefaultTable(&buf, "Name", "RPC")
	require.NoError(table.Append([]string{"devnet", "https://api.devnet.solana.com"}))
	require.NoError(table.Render())
	require.Contains(buf.String(), "devnet")
	require.Contains(buf.String(), "https://api.devnet.solana.com")
}
