package domain

// Command is an external process invocation.
type Command struct {
	// Path is the executable to run.
	Path string
	// Args are the arguments passed to the executable.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// Workspace is a loaded configuration bound to the directory it governs.
type Workspace struct {
	// Root is the directory containing sassy.yaml, or the working directory when none exists.
	Root string
	// Options is the configuration snapshot read from the workspace.
	Options Options
	// Ignore lists base-name patterns excluded from project discovery.
	Ignore []string
}

// Outcome labels the terminal state of a compile request.
type Outcome string

const (
	// OutcomeCompiled indicates the backend produced output.
	OutcomeCompiled Outcome = "compiled"
	// OutcomeFailed indicates the backend or a prerequisite failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeStale indicates the request was dropped as superseded.
	OutcomeStale Outcome = "stale"
)
