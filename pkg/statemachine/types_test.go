// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestTrackerHistory(t *testing.T) {
	require := require.New(t)
	tr := NewTracker(luxlog.NewNoOpLogger())
	tr.Transition(StateAlreadyDeployedCheck)
	tr.Transition(StateDeploying)
	tr.Transition(StateFailed)

	require.Equal(StateFailed, tr.Current())
	require.Equal([]StateType{StateStart, StateAlreadyDeployedCheck, StateDeploying, StateFailed}, tr.History())
}

func TestTrackerTerminalIsSticky(t *testing.T) {
	require := require.New(t)
	tr := NewTracker(luxlog.NewNoOpLogger())
	tr.Transition(StateAlreadyDeployed)
	tr.Transition(StateDeploying)

	require.Equal(StateAlreadyDeployed, tr.Current())
	require.Len(tr.History(), 2)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "BufferAuthoritySet", StateBufferAuthoritySet.String())
	require.Equal(t, "Unknown", StateType(999).String())
	require.True(t, StateDone.Terminal())
	require.False(t, StateSwitched.Terminal())
}
