package treetest

// Parser is what the combinators below need from a parser.  BaseParser
// implements all of it, so anything embedding it can be passed along.
type Parser interface {
	// Location is where the cursor is now.  Handing it back to
	// Backtrack rewinds the parser to that point.
	Location() Location
	Backtrack(location Location)

	// NewError creates an error the combinators are allowed to
	// recover from by trying something else.
	NewError(msg string) error

	// Any consumes one rune, failing only at the end of the input
	Any() (rune, error)

	// ExpectRune and ExpectRange consume the rune under the cursor
	// if it's `r` or within `l` and `r`.  The Fn variants wrap the
	// call in a ParserFn.
	ExpectRune(r rune) (rune, error)
	ExpectRange(l, r rune) (rune, error)
	ExpectRuneFn(r rune) ParserFn[rune]
	ExpectRangeFn(l, r rune) ParserFn[rune]
}

// ParserFn matches something at the cursor and returns what it built.
// Being a function type rather than a method lets each rule pick its
// own return type while sharing the combinators.
type ParserFn[T any] func(p Parser) (T, error)

// attempt runs fn and rewinds the cursor if it fails
func attempt[T any](p Parser, fn ParserFn[T]) (T, error) {
	pos := p.Location()
	item, err := fn(p)
	if err != nil {
		p.Backtrack(pos)
	}
	return item, err
}

// ZeroOrMore collects the output of fn until it fails.  The failed
// attempt is rewound, and only errors created with Throw make it out.
func ZeroOrMore[T any](p Parser, fn ParserFn[T]) ([]T, error) {
	var items []T
	for {
		item, err := attempt(p, fn)
		switch {
		case err == nil:
			items = append(items, item)
		case isthrown(err):
			return nil, err
		default:
			return items, nil
		}
	}
}

// OneOrMore is ZeroOrMore that fails when fn doesn't match even once
func OneOrMore[T any](p Parser, fn ParserFn[T]) ([]T, error) {
	first, err := fn(p)
	if err != nil {
		return nil, err
	}
	rest, err := ZeroOrMore(p, fn)
	if err != nil {
		return nil, err
	}
	return append([]T{first}, rest...), nil
}

// Choice returns the output of the first fn that matches, rewinding
// the cursor between attempts.  A thrown error ends the search.
func Choice[T any](p Parser, fns []ParserFn[T]) (T, error) {
	var zero T
	for _, fn := range fns {
		item, err := attempt(p, fn)
		if err == nil {
			return item, nil
		}
		if isthrown(err) {
			return zero, err
		}
	}
	return zero, p.NewError("No alternative matched")
}

// ChoiceRune matches any of `runes`
func ChoiceRune(p Parser, runes []rune) (rune, error) {
	fns := make([]ParserFn[rune], len(runes))
	for i, r := range runes {
		fns[i] = p.ExpectRuneFn(r)
	}
	return Choice(p, fns)
}

// Optional returns the zero value of T instead of failing when fn
// doesn't match
func Optional[T any](p Parser, fn ParserFn[T]) (T, error) {
	var zero T
	item, err := attempt(p, fn)
	if err == nil {
		return item, nil
	}
	if isthrown(err) {
		return zero, err
	}
	return zero, nil
}

// lookahead runs fn and puts the cursor back where it was
func lookahead[T any](p Parser, fn ParserFn[T]) error {
	pos := p.Location()
	_, err := fn(p)
	p.Backtrack(pos)
	return err
}

// And matches when fn does, without consuming any input
func And[T any](p Parser, fn ParserFn[T]) (T, error) {
	var zero T
	if err := lookahead(p, fn); err != nil {
		return zero, p.NewError("Lookahead didn't match")
	}
	return zero, nil
}

// Not matches when fn doesn't, without consuming any input
func Not[T any](p Parser, fn ParserFn[T]) (T, error) {
	var zero T
	if err := lookahead(p, fn); err == nil {
		return zero, p.NewError("Negative lookahead matched")
	}
	return zero, nil
}
