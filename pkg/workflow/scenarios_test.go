// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"context"
	"testing"

	"github.com/luxfi/fleet/internal/mocks"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/statemachine"
	"github.com/luxfi/fleet/pkg/workspace"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestWorkflowScenarios(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Workflow scenarios")
}

var _ = ginkgo.Describe("[Deploy escrow to devnet]", func() {
	var (
		ws     *workspace.Workspace
		runner *mocks.Runner
	)

	ginkgo.BeforeEach(func() {
		ws = newTestWorkspace(true)
		runner = (&mocks.Runner{}).Script("solana program show", notFound)
	})

	ginkgo.It("deploys, hands over authority, publishes the IDL and archives", func() {
		d := NewDeploy(ws, newDeps(ws, runner))
		gomega.Expect(d.Run(context.Background())).Should(gomega.Succeed())
		gomega.Expect(runner.Steps()).Should(gomega.Equal([]string{
			"solana program show",
			"solana program deploy",
			"solana program set-upgrade-authority",
			"solana program show",
			"anchor idl init",
			"anchor idl set-authority",
		}))
		gomega.Expect(ws.ArtifactPaths.Exists(ws.Fs)).Should(gomega.BeTrue())
		gomega.Expect(d.State()).Should(gomega.Equal(statemachine.StateDone))
	})
})

var _ = ginkgo.Describe("[Upgrade escrow 1.2.0]", func() {
	var (
		ws     *workspace.Workspace
		runner *mocks.Runner
		opts   UpgradeOptions
	)

	ginkgo.BeforeEach(func() {
		ws = newTestWorkspace(false)
		runner = &mocks.Runner{}
		opts = UpgradeOptions{UpgradeAuthorityKeypair: upgradeAuthorityKeypair, TempDir: tempDir}
	})

	ginkgo.It("stages a buffer and switches with the upgrade authority", func() {
		u := NewUpgrade(ws, newDeps(ws, runner), opts)
		gomega.Expect(u.Run(context.Background())).Should(gomega.Succeed())
		gomega.Expect(runner.Steps()).Should(gomega.Equal([]string{
			"solana program show",
			"solana program write-buffer",
			"solana program set-buffer-authority",
			"solana program deploy",
			"solana program show",
		}))
		switchCmd, ok := runner.Find("solana program deploy --buffer")
		gomega.Expect(ok).Should(gomega.BeTrue())
		gomega.Expect(switchCmd.Args).Should(gomega.ContainElement(upgradeAuthorityKeypair))
		gomega.Expect(ws.ArtifactPaths.Exists(ws.Fs)).Should(gomega.BeTrue())
	})

	ginkgo.It("refuses a version whose artifacts already exist without running anything", func() {
		gomega.Expect(NewDeploy(ws, newDeps(ws, (&mocks.Runner{}).Script("solana program show", notFound))).
			Run(context.Background())).Should(gomega.Succeed())

		u := NewUpgrade(ws, newDeps(ws, runner), opts)
		err := u.Run(context.Background())
		gomega.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring(constants.ErrDuplicateVersion.Error())))
		gomega.Expect(runner.Calls).Should(gomega.BeEmpty())
	})

	ginkgo.It("refuses to run without an upgrade authority keypair", func() {
		opts.UpgradeAuthorityKeypair = ""
		u := NewUpgrade(ws, newDeps(ws, runner), opts)
		gomega.Expect(u.Run(context.Background())).Should(gomega.MatchError(constants.ErrMissingCredential))
		gomega.Expect(runner.Calls).Should(gomega.BeEmpty())
	})

	ginkgo.It("sends the operator to deploy when the program does not exist", func() {
		runner.Script("solana program show", notFound)
		u := NewUpgrade(ws, newDeps(ws, runner), opts)
		gomega.Expect(u.Run(context.Background())).Should(gomega.MatchError(constants.ErrProgramNotDeployed))
		gomega.Expect(runner.Count("solana program write-buffer")).Should(gomega.BeZero())
	})
})
