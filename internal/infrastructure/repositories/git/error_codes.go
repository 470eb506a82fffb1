package git

import (
	"regexp"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

type errorPattern struct {
	expression *regexp.Regexp
	code       entities.GitErrorCode
}

// errorPatterns maps git's stderr onto structured codes. Order matters: the
// first match wins, so the HTTPS authentication line comes before the generic one.
//
//nolint:gochecknoglobals // read-only lookup table
var errorPatterns = []errorPattern{
	{
		regexp.MustCompile(`fatal: Authentication failed for 'https?://`),
		entities.GitErrorHTTPSAuthenticationFailed,
	},
	{
		regexp.MustCompile(`The requested URL returned error: 40[13]`),
		entities.GitErrorHTTPSAuthenticationFailed,
	},
	{
		regexp.MustCompile(`fatal: Authentication failed`),
		entities.GitErrorSSHAuthenticationFailed,
	},
	{
		regexp.MustCompile(`(?i)Permission denied \((?:publickey|keyboard-interactive)`),
		entities.GitErrorSSHAuthenticationFailed,
	},
	{
		regexp.MustCompile(`fatal: repository '(.+)' not found`),
		entities.GitErrorHTTPSRepositoryNotFound,
	},
	{
		regexp.MustCompile(`ERROR: Repository not found`),
		entities.GitErrorSSHRepositoryNotFound,
	},
	{
		regexp.MustCompile(`ERROR: Permission to .+ denied to .+`),
		entities.GitErrorSSHPermissionDenied,
	},
	{
		regexp.MustCompile(`fatal: Could not read from remote repository\.`),
		entities.GitErrorSSHPermissionDenied,
	},
	{
		regexp.MustCompile(`fatal: [Tt]he remote end hung up unexpectedly`),
		entities.GitErrorRemoteDisconnection,
	},
	{
		regexp.MustCompile(`fatal: unable to access '(.+)': (?:Failed to connect to .+: Host is down|Could not resolve host: .+)`),
		entities.GitErrorHostDown,
	},
	{
		regexp.MustCompile(`fatal: not a git repository`),
		entities.GitErrorNotAGitRepository,
	},
	{
		regexp.MustCompile(`The .+ attribute should be .+ but is .+`),
		entities.GitErrorLFSAttributeDoesNotMatch,
	},
	{
		regexp.MustCompile(`git: 'lfs' is not a git command`),
		entities.GitErrorToolNotFound,
	},
}

// detectErrorCode returns the code of the first pattern matching stderr.
func detectErrorCode(stderr string) entities.GitErrorCode {
	for _, pattern := range errorPatterns {
		if pattern.expression.MatchString(stderr) {
			return pattern.code
		}
	}
	return entities.GitErrorUnknown
}
