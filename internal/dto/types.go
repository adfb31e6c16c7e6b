package dto

import (
	"github.com/ghanshyammann/seawar/internal/model"
)

// ParseOrientation converts a wire orientation string into a model.Orientation.
func ParseOrientation(s string) (model.Orientation, bool) {
	return orientationFromWire(s)
}

// ParseMode converts a wire mode string into a model.Mode.
func ParseMode(s string) (model.Mode, bool) {
	switch s {
	case "single_player":
		return model.ModeSinglePlayer, true
	case "multiplayer":
		return model.ModeMultiplayer, true
	default:
		return 0, false
	}
}
