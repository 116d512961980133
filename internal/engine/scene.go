package engine

// Scene owns the flat list of root entities (building roots, ground plane,
// previews). Children live inside their parent and are reached by walking.
type Scene struct {
	Name     string
	Entities []*Entity
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Entities: make([]*Entity, 0),
	}
}

func (s *Scene) Add(e *Entity) {
	s.Entities = append(s.Entities, e)
}

// Remove detaches a root entity from the scene. The entity's subtree goes
// with it; disposal is the owner's job.
func (s *Scene) Remove(e *Entity) {
	for i, x := range s.Entities {
		if x == e {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			return
		}
	}
}

func (s *Scene) FindByName(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Walk visits every entity in the scene depth-first, parents before
// children. Render and pick passes are both built on this.
func (s *Scene) Walk(fn func(*Entity)) {
	for _, e := range s.Entities {
		walk(e, fn)
	}
}

func walk(e *Entity, fn func(*Entity)) {
	fn(e)
	for _, c := range e.Children {
		walk(c, fn)
	}
}
