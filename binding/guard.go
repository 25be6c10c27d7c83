package binding

// Guard suppresses reentrant calls: while one Run is executing, nested Runs
// are dropped.
type Guard struct {
	busy bool
}

// Run executes fn unless the guard is busy. It reports whether fn ran.
func (g *Guard) Run(fn func()) bool {
	if g.busy {
		return false
	}
	g.busy = true
	defer func() { g.busy = false }()
	fn()
	return true
}

// Busy reports whether a Run is in progress.
func (g *Guard) Busy() bool {
	return g.busy
}
