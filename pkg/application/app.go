// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/luxfi/fleet/pkg/artifacts"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/networks"
	"github.com/luxfi/fleet/pkg/probe"
	"github.com/luxfi/fleet/pkg/prompts"
	"github.com/luxfi/fleet/pkg/workflow"
	"github.com/luxfi/fleet/pkg/workspace"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Fleet struct {
	Log    luxlog.Logger
	Fs     afero.Fs
	Runner binutils.Runner
	Prompt prompts.Prompter
	Conf   *config.Config
	root   string
}

func New() *Fleet {
	return &Fleet{Prompt: prompts.NewPrompter()}
}

func (app *Fleet) Setup(log luxlog.Logger, fs afero.Fs, runner binutils.Runner) {
	app.Log = log
	app.Fs = fs
	app.Runner = runner
}

// LoadWorkspace finds the Fleet.toml governing dir and loads it
func (app *Fleet) LoadWorkspace(dir string) error {
	root, err := config.Discover(app.Fs, dir)
	if err != nil {
		return err
	}
	conf, err := config.Load(app.Fs, root)
	if err != nil {
		return err
	}
	app.root = root
	app.Conf = conf
	app.Log.Debug("loaded workspace config", zap.String("root", root))
	return nil
}

// GetRoot returns the workspace root, empty before LoadWorkspace
func (app *Fleet) GetRoot() string {
	return app.root
}

func (app *Fleet) GetConfigPath() string {
	return filepath.Join(app.root, constants.ConfigFileName)
}

func (app *Fleet) HasAnchor() bool {
	ok, _ := afero.Exists(app.Fs, filepath.Join(app.root, constants.AnchorManifestName))
	return ok
}

func (app *Fleet) Networks() (*networks.Registry, error) {
	return networks.NewRegistry(app.Conf.Networks)
}

func (app *Fleet) Layout() (*artifacts.Layout, error) {
	artifactRoot, err := app.Conf.ArtifactRoot(app.root)
	if err != nil {
		return nil, err
	}
	return artifacts.NewLayout(app.root, artifactRoot, app.HasAnchor()), nil
}

func (app *Fleet) NewWorkspace(opts workspace.Options) (*workspace.Workspace, error) {
	return workspace.New(app.Fs, app.root, app.Conf, opts)
}

func (app *Fleet) Probe() *probe.ProgramStateProbe {
	return probe.New(app.Runner, app.Log)
}

// WorkflowDeps wires the collaborators shared by deploy and upgrade
func (app *Fleet) WorkflowDeps() workflow.Deps {
	return workflow.Deps{
		Runner:   app.Runner,
		Probe:    app.Probe(),
		Archiver: artifacts.NewArchiver(app.Fs, app.Log),
		Log:      app.Log,
	}
}
