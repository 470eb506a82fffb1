package entities

import (
	"fmt"
	"strings"
)

// Invocation describes a single run of the git executable.
type Invocation struct {
	Name string            // label used in logs, e.g. "trackFilesWithLFS"
	Dir  string            // working directory
	Args []string          // arguments after the executable
	Env  map[string]string // overlay on top of the inherited environment
}

// InvocationResult holds the captured output of a successful invocation.
type InvocationResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// GitErrorCode is the structured failure code reported by the process adapter
// for a failed invocation. The zero value means the failure was not recognised.
type GitErrorCode string

const (
	GitErrorUnknown                   GitErrorCode = ""
	GitErrorHTTPSAuthenticationFailed GitErrorCode = "https-authentication-failed"
	GitErrorSSHAuthenticationFailed   GitErrorCode = "ssh-authentication-failed"
	GitErrorHTTPSRepositoryNotFound   GitErrorCode = "https-repository-not-found"
	GitErrorSSHRepositoryNotFound     GitErrorCode = "ssh-repository-not-found"
	GitErrorSSHPermissionDenied       GitErrorCode = "ssh-permission-denied"
	GitErrorRemoteDisconnection       GitErrorCode = "remote-disconnection"
	GitErrorHostDown                  GitErrorCode = "host-down"
	GitErrorNotAGitRepository         GitErrorCode = "not-a-git-repository"
	GitErrorLFSAttributeDoesNotMatch  GitErrorCode = "lfs-attribute-does-not-match"
	GitErrorToolNotFound              GitErrorCode = "tool-not-found"
)

// ProcessError is returned by the process adapter when git could not be
// started or exited with a non-zero status.
type ProcessError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Code     GitErrorCode
	Err      error
}

func (e *ProcessError) Error() string {
	message := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if e.ExitCode > 0 {
		message = fmt.Sprintf("%s (exit code %d)", message, e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf("%s: %s", message, stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", message, e.Err)
	}
	return message
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
