package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the player's controls for the current frame.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// TogglePressed is true on the frame the light/dark toggle was pressed.
	TogglePressed bool
	// RestartPressed is true on the frame restart was pressed.
	RestartPressed bool
	// PausePressed is true on the frame pause was pressed.
	PausePressed bool
	// DebugPressed is true on the frame the debug overlay key was pressed.
	DebugPressed bool
	// QuitPressed is true on the frame the quit key was pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls keyboard and the first gamepad.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	toggle := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		toggle = toggle || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		restart = restart || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.MoveX = moveX
	i.TogglePressed = toggle
	i.RestartPressed = restart
	i.PausePressed = pause
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
