package combat

// Party is an ordered roster. Order matters: it is the order actors decide
// in within a tick.
type Party struct {
	Specs  []ActorSpec
	Actors []*Actor
}

func NewParty(specs []ActorSpec) *Party {
	p := &Party{Specs: append([]ActorSpec(nil), specs...)}
	p.Actors = p.Fresh()
	return p
}

// Fresh builds a new set of actors from the roster specs, with empty event
// lists. Batch runs use it so goroutines never share an Actor.
func (p *Party) Fresh() []*Actor {
	out := make([]*Actor, len(p.Specs))
	for i, spec := range p.Specs {
		out[i] = NewActor(spec)
	}
	return out
}

func (p *Party) Find(name string) *Actor {
	for _, a := range p.Actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (p *Party) Names() []string {
	names := make([]string, len(p.Actors))
	for i, a := range p.Actors {
		names[i] = a.Name
	}
	return names
}
