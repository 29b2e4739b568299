package peg

// CompileError reports a programmer mistake in how a grammar was built:
// an unrecognizable rule input, a misplaced reducer, a redefined symbol,
// an out-of-range MANY minimum, or any other error that cannot be
// recovered at parse time. Compile and the combinator constructors panic
// with a *CompileError rather than returning one, since they run as plain
// Go code at grammar-construction time, not inside the matching loop.
type CompileError struct {
	Msg string
}

func (e *CompileError) Error() string { return e.Msg }

// ParseAbort is raised when an ERROR rule is entered or an undefined
// symbol is reached mid-parse. It is distinct from an ordinary parse
// failure: it aborts the entire parse immediately instead of participating
// in ordered choice, and Grammar.Parse returns it directly as the error.
type ParseAbort struct {
	Msg string
}

func (e *ParseAbort) Error() string { return e.Msg }
