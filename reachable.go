package gramatyka

// reachable returns the nonterminals reachable from start by following
// nonterminal occurrences in productions, breadth first.
//
// This is a forward walk from the start symbol. It is unrelated to the
// generating-symbol check done during validation.
func reachable(start Symbol, rules map[Symbol][]Production) map[Symbol]bool {
	seen := map[Symbol]bool{start: true}
	queue := []Symbol{start}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range rules[nt] {
			for _, s := range p {
				if !s.Nonterminal() || seen[s] {
					continue
				}
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return seen
}
