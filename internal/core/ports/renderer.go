package ports

// Renderer is the abstraction for user-facing progress output.
// It decouples the engines from presentation so tests can assert on
// rendering calls without parsing terminal output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Banner prints a stage separator, e.g. "= = = [COMPILING] = = = = = = = = = = = =".
	Banner(stage string)

	// Item prints the outcome line for one file operation.
	// index is 1-based, total is the number of items in the stage.
	// A nil err renders [OK], anything else renders [FAILED].
	Item(index, total int, msg string, err error)

	// Info prints a plain progress line.
	Info(msg string)
}
