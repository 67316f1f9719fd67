package gramatyka

// allocator hands out fresh nonterminal identifiers for a single conversion.
//
// Identifiers are taken downward from next. An identifier already in use is
// skipped, and running below 'A' fails rather than wrapping around.
type allocator struct {
	next Symbol
	used map[Symbol]bool
}

func newAllocator(next Symbol, used []Symbol) *allocator {
	a := &allocator{next: next, used: map[Symbol]bool{}}
	for _, s := range used {
		a.used[s] = true
	}
	return a
}

func (a *allocator) allocate() (Symbol, error) {
	for ; a.next >= 'A'; a.next-- {
		if a.used[a.next] {
			continue
		}
		s := a.next
		a.used[s] = true
		a.next--
		return s, nil
	}
	return 0, conversionErrorf(ErrIdentifierSpaceExhausted, "%d nonterminal identifiers in use", len(a.used))
}
