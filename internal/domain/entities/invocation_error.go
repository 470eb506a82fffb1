package entities

import (
	"errors"
	"fmt"
	"strings"
)

// InvocationErrorKind is the closed set of meanings a failed git invocation can have.
type InvocationErrorKind int

const (
	// KindOther is an opaque failure, surfaced with the raw message.
	KindOther InvocationErrorKind = iota
	// KindAuthenticationFailed means credentials were rejected or missing.
	KindAuthenticationFailed
	// KindRepositoryNotFound means the remote or path can no longer be resolved.
	KindRepositoryNotFound
	// KindToolNotInstalled means the git (or git-lfs) executable is unavailable.
	KindToolNotInstalled
)

func (k InvocationErrorKind) String() string {
	switch k {
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindRepositoryNotFound:
		return "repository not found"
	case KindToolNotInstalled:
		return "tool not installed"
	default:
		return "other"
	}
}

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRepositoryNotFound   = errors.New("repository not found")
	ErrToolNotInstalled     = errors.New("git lfs is not installed")
)

// AuthenticationErrors is the set of raw codes that mean the user has to re-authenticate.
// Call sites must test membership here instead of listing codes themselves.
//
//nolint:gochecknoglobals // read-only lookup table
var AuthenticationErrors = map[GitErrorCode]struct{}{
	GitErrorHTTPSAuthenticationFailed: {},
	GitErrorSSHAuthenticationFailed:   {},
}

// RepositoryNotFoundErrors is the set of raw codes that mean the repository cannot be resolved.
//
//nolint:gochecknoglobals // read-only lookup table
var RepositoryNotFoundErrors = map[GitErrorCode]struct{}{
	GitErrorHTTPSRepositoryNotFound: {},
	GitErrorSSHRepositoryNotFound:   {},
}

// IsAuthenticationError reports whether code belongs to AuthenticationErrors.
func IsAuthenticationError(code GitErrorCode) bool {
	_, ok := AuthenticationErrors[code]
	return ok
}

// ClassifyCode maps a raw code onto an InvocationErrorKind.
func ClassifyCode(code GitErrorCode) InvocationErrorKind {
	if IsAuthenticationError(code) {
		return KindAuthenticationFailed
	}
	if _, ok := RepositoryNotFoundErrors[code]; ok {
		return KindRepositoryNotFound
	}
	if code == GitErrorToolNotFound {
		return KindToolNotInstalled
	}
	return KindOther
}

// InvocationError is the typed failure returned by every coordinator operation.
type InvocationError struct {
	Kind    InvocationErrorKind
	Code    GitErrorCode
	Name    string // invocation label
	Message string // raw stderr, or the underlying error text when stderr was empty
	Err     error
}

func (e *InvocationError) Error() string {
	prefix := e.Kind.String()
	if e.Name != "" {
		prefix = fmt.Sprintf("%s: %s", e.Name, prefix)
	}
	if e.Message == "" {
		return prefix
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *InvocationError) Is(target error) bool {
	switch target {
	case ErrAuthenticationFailed:
		return e.Kind == KindAuthenticationFailed
	case ErrRepositoryNotFound:
		return e.Kind == KindRepositoryNotFound
	case ErrToolNotInstalled:
		return e.Kind == KindToolNotInstalled
	default:
		return false
	}
}

// ClassifyFailure turns any error returned by the git port into an InvocationError.
// Errors that are already classified pass through untouched; nil stays nil.
func ClassifyFailure(name string, err error) error {
	if err == nil {
		return nil
	}

	var invocationErr *InvocationError
	if errors.As(err, &invocationErr) {
		return invocationErr
	}

	classified := &InvocationError{Kind: KindOther, Name: name, Message: err.Error(), Err: err}

	var processErr *ProcessError
	if errors.As(err, &processErr) {
		classified.Code = processErr.Code
		classified.Kind = ClassifyCode(processErr.Code)
		if stderr := strings.TrimSpace(processErr.Stderr); stderr != "" {
			classified.Message = stderr
		}
	}

	return classified
}
