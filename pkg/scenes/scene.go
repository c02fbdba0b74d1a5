package scenes

import (
	"github.com/gonewx/folio/pkg/game"
)

// Scene is a type alias for game.Scene so scenes can be referenced from this package.
type Scene = game.Scene
