// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// RunInDir executes an external command with dir as its working
	// directory and returns the combined output.
	RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// RunInDir executes the command using os/exec.CommandContext.
func (c *RealCommander) RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
