package cursor

// mode gates the whole pipeline. active follows scene pause/resume; since
// entering immersive mode pauses the scene, the cursor stands down for the
// entire stereo session and wakes on exit. stereo is tracked separately so
// callers can distinguish "paused" from "presenting".
type mode struct {
	mobile bool // fixed at construction
	stereo bool
	active bool
}

// gate reports whether handlers may do any work at all.
func (m *mode) gate() bool {
	return m.active
}
