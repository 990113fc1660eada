package chaintest

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// ChildProcess wraps a spawned chain binary whose stdout and stderr are
// piped to log files under the chain home.
type ChildProcess struct {
	cmd    *exec.Cmd
	stdout *os.File
	stderr *os.File
	logger *zap.Logger
}

// Pid returns the process id of the running chain binary.
func (p *ChildProcess) Pid() int {
	if p == nil || p.cmd == nil || p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Stop terminates the chain process, waits for it to exit, and closes the
// log files. The wait error is not surfaced: a killed process always
// reports an abnormal exit.
func (p *ChildProcess) Stop() error {
	if p == nil || p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	p.logger.Debug("stopping chain process", zap.Int("pid", p.Pid()))
	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill chain process: %w", err)
	}
	_ = p.cmd.Wait()
	if p.stdout != nil {
		_ = p.stdout.Close()
	}
	if p.stderr != nil {
		_ = p.stderr.Close()
	}
	return nil
}
