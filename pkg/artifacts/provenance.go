// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artifacts

import (
	"github.com/go-git/go-git/v5"
)

// GitState returns the HEAD commit of the repository containing dir and
// whether its worktree has uncommitted changes. Outside a repository, or
// before the first commit, it returns an empty commit.
func GitState(dir string) (commit string, dirty bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return head.Hash().String(), false
	}
	status, err := wt.Status()
	if err != nil {
		return head.Hash().String(), false
	}
	return head.Hash().String(), !status.IsClean()
}
