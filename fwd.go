package gparsec

// Fwd is a single-assignment, late-bound parser holder: the sole supported
// mechanism for defining mutually recursive grammars without
// chicken-and-egg declaration ordering. Construct it with NewFwd, pass
// (*Fwd[S, A]).Parser() wherever the recursive reference is needed, and call
// Set once the real parser is built. Calling the result before Set is a
// programmer error, not a parse failure, and panics.
type Fwd[S, A any] struct {
	p Parser[S, A]
}

// NewFwd creates an unset forward reference.
func NewFwd[S, A any]() *Fwd[S, A] {
	return &Fwd[S, A]{}
}

// Set installs the parser this reference dispatches to. It may be called
// only once.
func (f *Fwd[S, A]) Set(p Parser[S, A]) {
	if f.p != nil {
		panic("gparsec: Fwd.Set called more than once")
	}
	f.p = p
}

// Parser returns a parser that dispatches to whatever was passed to Set.
func (f *Fwd[S, A]) Parser() Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		if f.p == nil {
			panic("gparsec: forward-referenced parser used before Set")
		}
		return f.p(in)
	}
}
