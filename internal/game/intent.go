package game

// IntentKind classifies what a requested move actually resolves to once
// the destination tile has been inspected.
type IntentKind int

const (
	// DoNothing covers out-of-bounds requests and blocked destinations.
	DoNothing IntentKind = iota
	// MoveTo steps the player by the requested delta.
	MoveTo
	// OpenDoor reinterprets a move into a closed or locked door: the
	// player spends the turn on the door instead of stepping onto it.
	OpenDoor
)

// Intent is the resolved outcome of one movement request.
type Intent struct {
	Kind IntentKind

	// Delta for MoveTo.
	DX, DY int

	// Tile index for OpenDoor.
	Door int
}
