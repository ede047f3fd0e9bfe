package ports

import "context"

type ForAsking interface {
	// For asking yes/no questions in a terminal before a mutating
	// action (or always answering based on other inputs such as
	// dry-run or force flags). Returns false for "no" and true for
	// "yes". Should support exiting the program by some mechanism as
	// well (usually simply os.Exit(0) if choosing "exit program" or
	// something). ctx should/could hold an slog.Logger set with the
	// logger adapter package.
	Ask(ctx context.Context, format string, a ...any) bool
}
