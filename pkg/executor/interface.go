package executor

import "context"

// Executor runs external commands. Arguments are always passed as an
// array; nothing goes through a shell.
type Executor interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}
