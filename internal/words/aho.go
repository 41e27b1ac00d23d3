package words

import "errors"

type matcher struct {
	nodes []node
}

type node struct {
	next map[byte]int
	fail int
	out  []int
}

func newMatcher(words []string) (*matcher, error) {
	if len(words) == 0 {
		return nil, errors.New("words are required")
	}

	nodes := []node{{next: map[byte]int{}}}
	for id, word := range words {
		if word == "" {
			continue
		}
		current := 0
		for i := 0; i < len(word); i++ {
			b := word[i]
			next, ok := nodes[current].next[b]
			if !ok {
				nodes = append(nodes, node{next: map[byte]int{}})
				next = len(nodes) - 1
				nodes[current].next[b] = next
			}
			current = next
		}
		nodes[current].out = append(nodes[current].out, id)
	}

	if len(nodes) == 1 {
		return nil, errors.New("no non-empty words")
	}

	queue := make([]int, 0, len(nodes))
	for _, next := range nodes[0].next {
		queue = append(queue, next)
	}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		for b, next := range nodes[state].next {
			fail := nodes[state].fail
			for {
				if target, ok := nodes[fail].next[b]; ok {
					nodes[next].fail = target
					break
				}
				if fail == 0 {
					nodes[next].fail = 0
					break
				}
				fail = nodes[fail].fail
			}
			nodes[next].out = append(nodes[next].out, nodes[nodes[next].fail].out...)
			queue = append(queue, next)
		}
	}

	return &matcher{nodes: nodes}, nil
}

// scan calls hit for every occurrence of every word, with the end offset
// (exclusive) of the occurrence in input.
func (m *matcher) scan(input string, hit func(id, end int)) {
	state := 0
	for i := 0; i < len(input); i++ {
		b := input[i]
		for state != 0 {
			if next, ok := m.nodes[state].next[b]; ok {
				state = next
				break
			}
			state = m.nodes[state].fail
		}
		if state == 0 {
			if next, ok := m.nodes[0].next[b]; ok {
				state = next
			}
		}

		for _, id := range m.nodes[state].out {
			hit(id, i+1)
		}
	}
}
