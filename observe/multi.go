package observe

import "github.com/on-the-ground/memo_ive_go/pure"

type multi []pure.Observer

// Multi forwards every event to each observer in order. Nil observers are skipped.
func Multi(observers ...pure.Observer) pure.Observer {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) Hit(e pure.Event) {
	for _, o := range m {
		o.Hit(e)
	}
}

func (m multi) Computed(e pure.Event) {
	for _, o := range m {
		o.Computed(e)
	}
}

func (m multi) Failed(e pure.Event) {
	for _, o := range m {
		o.Failed(e)
	}
}
