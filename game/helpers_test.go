package game

// scriptedRoller returns rolls in order, then repeats the last one.
type scriptedRoller struct {
	rolls []int
	next  int
}

func roll(rolls ...int) *scriptedRoller {
	return &scriptedRoller{rolls: rolls}
}

func (s *scriptedRoller) Roll() int {
	if s.next >= len(s.rolls) {
		return s.rolls[len(s.rolls)-1]
	}
	value := s.rolls[s.next]
	s.next++
	return value
}

type fixedPicker int

func (p fixedPicker) Intn(n int) int {
	return int(p) % n
}

func mustSetup(t interface{ Fatalf(string, ...any) }, entries ...Territory) *Registry {
	r, err := Setup(len(entries), entries...)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	return r
}
