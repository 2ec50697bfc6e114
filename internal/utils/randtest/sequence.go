// Package randtest содержит управляемые источники случайности для тестов.
package randtest

// Sequence выдаёт заранее заданные значения по очереди.
// Когда значения заканчиваются, возвращается Fallback.
type Sequence struct {
	Values   []float64
	Fallback float64
	calls    int
}

// New создаёт последовательность. По умолчанию после исчерпания возвращается 0.99,
// то есть ни один вероятностный бросок не срабатывает.
func New(values ...float64) *Sequence {
	return &Sequence{Values: values, Fallback: 0.99}
}

// Never возвращает источник, у которого не срабатывает ни один шанс.
func Never() *Sequence {
	return New()
}

func (s *Sequence) Float64() float64 {
	s.calls++
	if len(s.Values) == 0 {
		return s.Fallback
	}
	v := s.Values[0]
	s.Values = s.Values[1:]
	return v
}

func (s *Sequence) Intn(n int) int {
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Calls: сколько бросков было сделано.
func (s *Sequence) Calls() int {
	return s.calls
}
