package domain

import "time"

// Operation is the phase a backend invocation performs.
type Operation int

const (
	// OpConfigure generates the native build files (CMake only).
	OpConfigure Operation = iota
	// OpBuild compiles the project.
	OpBuild
	// OpClean removes build artifacts.
	OpClean
)

// String returns the lower-case name of the operation.
func (o Operation) String() string {
	switch o {
	case OpConfigure:
		return "configure"
	case OpBuild:
		return "build"
	case OpClean:
		return "clean"
	default:
		return "unknown"
	}
}

// Invocation is a single request to the build backend.
type Invocation struct {
	Path      string
	Kind      Kind
	Tool      string
	Profile   Profile
	Operation Operation
}

// NewInvocation builds an invocation for the given project and operation.
func NewInvocation(p *Project, op Operation) Invocation {
	return Invocation{
		Path:      p.Path,
		Kind:      p.Kind,
		Tool:      p.Tool,
		Profile:   p.Profile,
		Operation: op,
	}
}

// InvocationResult is what the backend reports back.
// Only ExitStatus decides the outcome.
type InvocationResult struct {
	ExitStatus int
	Elapsed    time.Duration
}

// Succeeded reports whether the invocation exited zero.
func (r InvocationResult) Succeeded() bool {
	return r.ExitStatus == 0
}

// Command is a process to spawn.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for logs.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}
