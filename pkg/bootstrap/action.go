package bootstrap

// ActionKind distinguishes the two ways the pipeline hands control to a
// child process.
type ActionKind int

const (
	// ReplaceProcess swaps the current process image for the command
	// (exec-style handoff); the bootstrap never regains control.
	ReplaceProcess ActionKind = iota

	// RunForeground runs the command synchronously with inherited stdio
	// and waits for it to exit.
	RunForeground
)

func (k ActionKind) String() string {
	if k == ReplaceProcess {
		return "replace"
	}
	return "foreground"
}

// Action is a terminal command decision. Dispatch and the forum starter
// produce Actions; a Runner executes them. Keeping the decision separate
// from the execution lets tests assert dispatch behavior without spawning
// processes.
type Action struct {
	Kind ActionKind
	Args []string // full argv; Args[0] is the command
	Dir  string   // working directory, empty to inherit
}

// Command returns the executable name (argv[0]).
func (a Action) Command() string {
	if len(a.Args) == 0 {
		return ""
	}
	return a.Args[0]
}

// Runner executes terminal actions. The production implementation is
// OSRunner; tests substitute a recorder.
type Runner interface {
	// Replace swaps the current process image for the action's command.
	// It only returns on failure.
	Replace(a Action) error

	// Foreground runs the action's command synchronously with inherited
	// stdio and returns a SubprocessError on nonzero exit.
	Foreground(a Action) error
}
