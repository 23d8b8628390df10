// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// StateType represents a state in a workflow state machine
type StateType int

const (
	// StateUnknown is the unknown state
	StateUnknown StateType = iota
	StateStart
	StateAlreadyDeployedCheck
	StatePreconditionsChecked
	StateDeploying
	StateAuthoritySet
	StateIdlInitialized
	StateIdlAuthoritySet
	StateBufferWritten
	StateBufferAuthoritySet
	StateSwitched
	StateIdlUpdated
	StateArtifactsCopied
	// terminal states
	StateDone
	StateFailed
	StateAlreadyDeployed
)

func (s StateType) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateAlreadyDeployedCheck:
		return "AlreadyDeployedCheck"
	case StatePreconditionsChecked:
		return "PreconditionsChecked"
	case StateDeploying:
		return "Deploying"
	case StateAuthoritySet:
		return "AuthoritySet"
	case StateIdlInitialized:
		return "IdlInitialized"
	case StateIdlAuthoritySet:
		return "IdlAuthoritySet"
	case StateBufferWritten:
		return "BufferWritten"
	case StateBufferAuthoritySet:
		return "BufferAuthoritySet"
	case StateSwitched:
		return "Switched"
	case StateIdlUpdated:
		return "IdlUpdated"
	case StateArtifactsCopied:
		return "ArtifactsCopied"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	case StateAlreadyDeployed:
		return "AlreadyDeployed"
	}
	return "Unknown"
}

// Terminal reports whether no transition may follow s
func (s StateType) Terminal() bool {
	return s == StateDone || s == StateFailed || s == StateAlreadyDeployed
}

// Tracker records the states a workflow passes through
type Tracker struct {
	log     luxlog.Logger
	current StateType
	history []StateType
}

func NewTracker(log luxlog.Logger) *Tracker {
	return &Tracker{
		log:     log,
		current: StateStart,
		history: []StateType{StateStart},
	}
}

// Transition moves to next. Transitions out of a terminal state are ignored.
func (t *Tracker) Transition(next StateType) {
	if t.current.Terminal() {
		t.log.Warn("ignoring transition out of terminal state",
			zap.Stringer("from", t.current), zap.Stringer("to", next))
		return
	}
	t.log.Debug("state transition", zap.Stringer("from", t.current), zap.Stringer("to", next))
	t.current = next
	t.history = append(t.history, next)
}

func (t *Tracker) Current() StateType {
	return t.current
}

// History returns a copy of every state entered, starting with StateStart
func (t *Tracker) History() []StateType {
	return append([]StateType(nil), t.history...)
}
