// ABOUTME: Game-state query contract consumed by the overlay's sampling loop
// ABOUTME: Every query may report "unavailable"; that is a normal transient condition

package gamestate

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// IsOrigin reports whether v is exactly (0,0,0), the position the game reports
// before the player has spawned.
func (v Vec3) IsOrigin() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// API exposes the player state of one running game instance.
// Implementations must return immediately; they read already-resident state.
type API interface {
	// SetProcessID binds subsequent queries to pid. Zero unbinds.
	SetProcessID(pid int)

	PlayerCoordinates() (Vec3, bool)
	PlayerFacingAngle() (float64, bool)
	PlayerCurrentZone() (string, bool)

	IsPlayerInAnyInterior() bool
	IsPlayerInEscapeMenu() bool
	IsPlayerInAnyVehicle() bool
}
