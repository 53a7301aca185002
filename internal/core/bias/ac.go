package bias

// matcher is an Aho-Corasick automaton compiled down to a complete DFA over
// bytes: every state has a transition for every byte, so scanning never walks
// failure links. Inputs are normalized UTF-8 and byte matching is enough.
type matcher struct {
	delta [][256]int32
	emit  [][]int32 // pattern ids accepted in each state, suffix matches folded in
	lens  []int
}

// compile builds a matcher whose pattern ids are the indexes of pats.
// Empty patterns keep their id but never match
func compile(pats []string) *matcher {
	m := &matcher{lens: make([]int, len(pats))}
	m.grow()

	for id, p := range pats {
		m.lens[id] = len(p)
		if p == "" {
			continue
		}
		s := int32(0)
		for i := 0; i < len(p); i++ {
			next := m.delta[s][p[i]]
			if next < 0 {
				next = m.grow()
				m.delta[s][p[i]] = next
			}
			s = next
		}
		m.emit[s] = append(m.emit[s], int32(id))
	}

	fail := make([]int32, len(m.delta))
	queue := make([]int32, 0, len(m.delta))
	for b, s := range m.delta[0] {
		if s < 0 {
			m.delta[0][b] = 0
			continue
		}
		queue = append(queue, s)
	}
	// breadth first, so fail[r] has a complete row before r is expanded
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for b, s := range m.delta[r] {
			if s < 0 {
				m.delta[r][b] = m.delta[fail[r]][b]
				continue
			}
			fail[s] = m.delta[fail[r]][b]
			m.emit[s] = append(m.emit[s], m.emit[fail[s]]...)
			queue = append(queue, s)
		}
	}
	return m
}

func (m *matcher) grow() int32 {
	var row [256]int32
	for i := range row {
		row[i] = -1
	}
	m.delta = append(m.delta, row)
	m.emit = append(m.emit, nil)
	return int32(len(m.delta) - 1)
}

// find reports which patterns occur in text. keep, when set, vets each
// occurrence by its byte span; a pattern counts once any occurrence passes
func (m *matcher) find(text string, keep func(start, end int) bool) []bool {
	hit := make([]bool, len(m.lens))
	s := int32(0)
	for i := 0; i < len(text); i++ {
		s = m.delta[s][text[i]]
		for _, id := range m.emit[s] {
			if hit[id] {
				continue
			}
			if keep == nil || keep(i+1-m.lens[id], i+1) {
				hit[id] = true
			}
		}
	}
	return hit
}
