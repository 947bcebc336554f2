package engine

import "viewmark/internal/pose"

type Scene struct {
	Name        string
	GameObjects []*GameObject

	// Frame counts Update calls that were not paused. Components use it to
	// consume per-frame input exactly once.
	Frame   uint64
	Context pose.ExecutionContext
	Paused  bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update advances the frame counter and updates every object. A paused scene
// still updates its objects so components can see Paused and skip work.
func (s *Scene) Update(deltaTime float32) {
	if !s.Paused {
		s.Frame++
	}
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
