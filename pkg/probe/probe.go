// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/models"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Prober reports whether a program account exists on a network
type Prober interface {
	ShowProgram(ctx context.Context, programID string, network models.NetworkConfig) (bool, error)
}

// ProgramStateProbe queries program state with `solana program show`
type ProgramStateProbe struct {
	runner binutils.Runner
	log    luxlog.Logger
}

func New(runner binutils.Runner, log luxlog.Logger) *ProgramStateProbe {
	return &ProgramStateProbe{runner: runner, log: log}
}

// ShowCommand is the query issued for programID on network
func ShowCommand(programID string, network models.NetworkConfig) binutils.Command {
	return binutils.Command{
		Name: constants.SolanaCmd,
		Args: []string{"program", "show", programID, "--url", network.RPCURL},
	}
}

// accountNotFound is what solana prints when the program account is missing
const accountNotFound = "Unable to find the account"

// ShowProgram runs the query, which also prints the program state for the
// operator. A non-zero exit reporting a missing account means not deployed;
// any other failure, an RPC error included, is ErrProbe.
func (p *ProgramStateProbe) ShowProgram(ctx context.Context, programID string, network models.NetworkConfig) (bool, error) {
	cmd := ShowCommand(programID, network)
	res, err := p.runner.Run(ctx, cmd)
	if err != nil {
		return false, fmt.Errorf("%w: %w", constants.ErrProbe, err)
	}
	if res.ExitCode != 0 && !strings.Contains(res.Output(), accountNotFound) {
		return false, fmt.Errorf("%w: %w", constants.ErrProbe, binutils.Check(cmd, res, nil))
	}
	exists := res.ExitCode == 0
	p.log.Debug("program state",
		zap.String("program-id", programID),
		zap.String("network", network.Name),
		zap.Bool("exists", exists))
	return exists, nil
}
