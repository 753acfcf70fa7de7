// Package vcs initializes the version-control repository of a new project.
// The default backend shells out to the git binary; the go-git backend
// creates the repository in-process for machines without git on PATH.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/evel-pig/create-admin-app/internal/runtime"
)

// Initializer creates an empty repository in root.
type Initializer interface {
	Init(ctx context.Context, root string) error
}

// Exec runs "<Binary> init" in root.
type Exec struct {
	Runner runtime.Runner
	Binary string
}

// Init implements Initializer.
func (e *Exec) Init(ctx context.Context, root string) error {
	binary := e.Binary
	if binary == "" {
		binary = "git"
	}
	return runtime.RunChecked(ctx, e.Runner, root, binary, "init")
}

// GoGit creates the repository with go-git, without an external binary.
type GoGit struct{}

// Init implements Initializer. An existing repository in root is left as
// is, matching a repeated "git init".
func (GoGit) Init(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	worktree := osfs.New(root)
	dot := osfs.New(filepath.Join(root, git.GitDirName))
	storage := filesystem.NewStorage(dot, cache.NewObjectLRUDefault())
	_, err := git.Init(storage, worktree)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("git init in %s: %w", root, err)
	}
	return nil
}
