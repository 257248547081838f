package engine

// EntityRef is a serializable reference to an Entity by UID.
// Components hold one of these instead of a raw pointer when the reference
// has to survive scene save/load.
type EntityRef struct {
	UID uint64 // UID of the referenced Entity (0 = none)
}

// Get resolves the reference to the actual Entity.
// Returns nil if the reference is empty (UID = 0) or if the Entity doesn't exist.
func (r EntityRef) Get(scene *Scene) *Entity {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the Entity actually exists in the scene.
func (r EntityRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given Entity.
// Pass nil to clear the reference.
func (r *EntityRef) Set(e *Entity) {
	if e == nil {
		r.UID = 0
	} else {
		r.UID = e.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *EntityRef) Clear() {
	r.UID = 0
}
