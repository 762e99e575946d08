package gemhunt

// Input yields one direction token per call, blocking until one is available.
type Input interface {
	ReadMove() (rune, error)
}

// InputFunc adapts a function to Input.
type InputFunc func() (rune, error)

// ReadMove calls f.
func (f InputFunc) ReadMove() (rune, error) {
	return f()
}

// Output receives board snapshots and status lines.
type Output interface {
	Board(s Snapshot)
	Message(text string)
}

// OutputFuncs adapts a pair of functions to Output. Nil fields are ignored.
type OutputFuncs struct {
	BoardFunc   func(Snapshot)
	MessageFunc func(string)
}

// Board calls BoardFunc.
func (o OutputFuncs) Board(s Snapshot) {
	if o.BoardFunc != nil {
		o.BoardFunc(s)
	}
}

// Message calls MessageFunc.
func (o OutputFuncs) Message(text string) {
	if o.MessageFunc != nil {
		o.MessageFunc(text)
	}
}
