package sequence

type Kind uint8

const (
	Empty Kind = iota
	One
	Many
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "unknown"
	}
}

// Slot holds nothing, a single index, or the indices that collided into it in
// arrival order. The zero value is Empty.
type Slot struct {
	kind Kind
	one  uint32
	many []uint32
}

func (s *Slot) Kind() Kind { return s.kind }

// Single is the stored index of a One slot.
func (s *Slot) Single() uint32 { return s.one }

// List is the stored indices of a Many slot.
func (s *Slot) List() []uint32 { return s.many }

func (s *Slot) Add(v uint32) {
	switch s.kind {
	case Empty:
		s.kind, s.one = One, v
	case One:
		s.kind, s.many = Many, []uint32{s.one, v}
		s.one = 0
	case Many:
		s.many = append(s.many, v)
	}
}

func (s *Slot) Reset() {
	*s = Slot{}
}
