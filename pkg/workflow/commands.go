// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/workspace"
)

func solana(ws *workspace.Workspace, args ...string) binutils.Command {
	return binutils.Command{
		Name: constants.SolanaCmd,
		Args: append(args, "--url", ws.Network.RPCURL),
		Dir:  ws.Root,
	}
}

func anchor(ws *workspace.Workspace, args ...string) binutils.Command {
	return binutils.Command{
		Name: constants.AnchorCmd,
		Args: append(args, "--provider.cluster", ws.Network.Cluster(), "--provider.wallet", ws.DeployerPath),
		Dir:  ws.Root,
	}
}

func deployCmd(ws *workspace.Workspace) binutils.Command {
	return solana(ws, "program", "deploy", ws.ProgramPaths.Bin,
		"--keypair", ws.DeployerPath,
		"--program-id", ws.ProgramPaths.ID)
}

func setUpgradeAuthorityCmd(ws *workspace.Workspace) binutils.Command {
	return solana(ws, "program", "set-upgrade-authority", ws.ProgramPaths.ID,
		"--keypair", ws.DeployerPath,
		"--new-upgrade-authority", ws.Network.UpgradeAuthority)
}

func idlInitCmd(ws *workspace.Workspace) binutils.Command {
	return anchor(ws, "idl", "init", ws.ProgramKey, "--filepath", ws.ProgramPaths.IDL)
}

func idlSetAuthorityCmd(ws *workspace.Workspace) binutils.Command {
	return anchor(ws, "idl", "set-authority",
		"--program-id", ws.ProgramKey,
		"--new-authority", ws.Network.UpgradeAuthority)
}

func writeBufferCmd(ws *workspace.Workspace, bufferKeypairPath string) binutils.Command {
	return solana(ws, "program", "write-buffer", ws.ProgramPaths.Bin,
		"--keypair", ws.DeployerPath,
		"--output", "json",
		"--buffer", bufferKeypairPath)
}

func setBufferAuthorityCmd(ws *workspace.Workspace, buffer string) binutils.Command {
	return solana(ws, "program", "set-buffer-authority", buffer,
		"--keypair", ws.DeployerPath,
		"--new-buffer-authority", ws.Network.UpgradeAuthority)
}

func deployFromBufferCmd(ws *workspace.Workspace, buffer, upgradeAuthorityKeypair string) binutils.Command {
	return solana(ws, "program", "deploy",
		"--buffer", buffer,
		"--keypair", upgradeAuthorityKeypair,
		"--program-id", ws.ProgramKey)
}

func idlWriteBufferCmd(ws *workspace.Workspace) binutils.Command {
	return anchor(ws, "idl", "write-buffer", ws.ProgramKey, "--filepath", ws.ProgramPaths.IDL)
}
