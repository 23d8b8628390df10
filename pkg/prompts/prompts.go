// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prompts asks the operator for confirmation on the terminal.
package prompts

import (
	"fmt"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/models"
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

// runSelect is a variable for testing purposes to allow mocking select.Run()
var runSelect = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Prompter interface {
	// CaptureYesNo offers Yes first
	CaptureYesNo(promptStr string) (bool, error)
	// CaptureNoYes offers No first, so pressing enter declines
	CaptureNoYes(promptStr string) (bool, error)
}

type selectPrompter struct{}

func NewPrompter() Prompter {
	return selectPrompter{}
}

func (selectPrompter) choose(label string, items ...string) (bool, error) {
	_, answer, err := runSelect(promptui.Select{Label: label, Items: items})
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}

func (p selectPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return p.choose(promptStr, Yes, No)
}

func (p selectPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return p.choose(promptStr, No, Yes)
}

// ConfirmNetwork asks the operator before action changes a mainnet program.
// Other networks, or assumeYes, never prompt. Without a terminal the
// operator must pass assumeYes.
func ConfirmNetwork(prompter Prompter, network models.NetworkConfig, action string, assumeYes bool) error {
	if network.Kind != models.Mainnet || assumeYes {
		return nil
	}
	if !isInteractive() {
		return fmt.Errorf("%w: pass --yes to %s on %s", constants.ErrConfirmationRequired, action, network.Name)
	}
	ok, err := prompter.CaptureNoYes(fmt.Sprintf("%s on %s (%s)?", action, network.Name, network.RPCURL))
	if err != nil {
		return err
	}
	if !ok {
		return constants.ErrNotConfirmed
	}
	return nil
}
