// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/luxfi/fleet/pkg/application"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WorkspaceRoot is the Cargo workspace root used by command tests
const WorkspaceRoot = "/ws"

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

// SetupTestApp returns an application backed by an in-memory filesystem
// with WorkspaceRoot already created.
func SetupTestApp(t *testing.T, runner binutils.Runner) (*application.Fleet, afero.Fs) {
	t.Helper()
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(WorkspaceRoot, 0o755))
	app := application.New()
	app.Setup(luxlog.NewNoOpLogger(), fs, runner)
	return app, fs
}

// WorkingDir stands in for os.Getwd in command tests
func WorkingDir() (string, error) {
	return WorkspaceRoot, nil
}
