package engine

type Scene struct {
	Name     string
	Entities []*Entity

	// Root is the top of the render-node hierarchy. Entity node subtrees
	// are attached under it when entities join the scene.
	Root *Node

	// Surface is the render surface. It may not be ready at scene creation;
	// listeners that need it subscribe via Surface.OnReady.
	Surface *Surface

	// Lifecycle events. Entering immersive mode pauses the scene, exiting
	// resumes it.
	OnPause   Event
	OnResume  Event
	OnEnterVR Event
	OnExitVR  Event

	uidIndex  map[uint64]*Entity
	paused    bool
	immersive bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Entities: make([]*Entity, 0),
		Root:     &Node{Type: NodeScene, Visible: true},
		Surface:  NewSurface(),
		uidIndex: make(map[uint64]*Entity),
	}
}

func (s *Scene) AddEntity(e *Entity) {
	e.Scene = s
	s.Entities = append(s.Entities, e)
	s.uidIndex[e.UID] = e
	s.Root.AddChild(e.Node())
}

func (s *Scene) RemoveEntity(e *Entity) {
	for i, obj := range s.Entities {
		if obj == e {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			s.Root.RemoveChild(e.Node())
			delete(s.uidIndex, e.UID)
			e.Scene = nil
			return
		}
	}
}

// FindByUID is an O(1) lookup by entity UID.
func (s *Scene) FindByUID(uid uint64) *Entity {
	return s.uidIndex[uid]
}

func (s *Scene) FindByName(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*Entity {
	var result []*Entity
	for _, e := range s.Entities {
		if e.HasTag(tag) {
			result = append(result, e)
		}
	}
	return result
}

// MainCamera returns the camera flagged IsMain, falling back to the first
// camera found. Nil when the scene has no camera.
func (s *Scene) MainCamera() *Camera {
	var fallback *Camera
	for _, e := range s.Entities {
		if cam := findCamera(e); cam != nil {
			if cam.IsMain {
				return cam
			}
			if fallback == nil {
				fallback = cam
			}
		}
	}
	return fallback
}

func findCamera(e *Entity) *Camera {
	if cam := GetComponent[*Camera](e); cam != nil {
		return cam
	}
	for _, child := range e.Children {
		if cam := findCamera(child); cam != nil {
			return cam
		}
	}
	return nil
}

func (s *Scene) Start() {
	for _, e := range s.Entities {
		e.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	if s.paused {
		return
	}
	for _, e := range s.Entities {
		e.Update(deltaTime)
	}
}

func (s *Scene) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.OnPause.Invoke()
}

func (s *Scene) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.OnResume.Invoke()
}

func (s *Scene) Paused() bool {
	return s.paused
}

// EnterImmersive switches to stereo presentation. The scene pauses; flat
// interaction layers are expected to stand down until ExitImmersive.
func (s *Scene) EnterImmersive() {
	if s.immersive {
		return
	}
	s.immersive = true
	s.OnEnterVR.Invoke()
	s.Pause()
}

func (s *Scene) ExitImmersive() {
	if !s.immersive {
		return
	}
	s.immersive = false
	s.OnExitVR.Invoke()
	s.Resume()
}

func (s *Scene) Immersive() bool {
	return s.immersive
}
