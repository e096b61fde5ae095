// ABOUTME: Visibility gate deciding whether the overlay may be shown this tick
// ABOUTME: Also holds the not-ready guards applied to position and angle samples

package hud

import (
	"fmt"
	"math"
)

// Facing angle reported while the player sits on the server login screen.
const (
	SentinelAngle     = -98.0
	SentinelTolerance = 1e-4
)

// ShouldShow reports whether the overlay should be visible.
func ShouldShow(enabled, vehicleOnly, inInterior, inEscapeMenu, inVehicle bool) bool {
	if !enabled || inInterior || inEscapeMenu {
		return false
	}
	if vehicleOnly && !inVehicle {
		return false
	}
	return true
}

// IsSentinelAngle reports whether angle is the login-screen placeholder.
func IsSentinelAngle(angle float64) bool {
	return math.Abs(angle-SentinelAngle) < SentinelTolerance
}

// FormatText renders the overlay line, e.g. "|S| Rodeo".
func FormatText(dir Direction, zone string) string {
	return fmt.Sprintf("|%s| %s", dir, zone)
}
