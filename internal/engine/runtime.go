package engine

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CheckRuntime verifies the rendering runtime is up. The hosting application
// calls this once after creating the window and before building scenes;
// a failure here means the 3D framework is absent and nothing else will work.
func CheckRuntime() error {
	if !rl.IsWindowReady() {
		return errors.New("engine: raylib window not initialized")
	}
	return nil
}
