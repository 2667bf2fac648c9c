package sim

import (
	"log"

	"github.com/jakecoffman/cp"
)

// Lane is an ordered path of waypoints between the two team bases. Waypoint
// index 0 is the blue-side origin and the last index is the red-side origin.
// Lanes are configured once and read-only during simulation, so they are
// safely shared by every champion assigned to them.
type Lane struct {
	Name      string
	Team      Team
	Waypoints []cp.Vector

	// Anchor is the fallback position returned for out-of-range waypoint
	// lookups. Defaults to the first waypoint when unset.
	Anchor cp.Vector
}

// NewLane creates a lane with its anchor defaulted to the first waypoint.
func NewLane(name string, team Team, waypoints []cp.Vector) *Lane {
	l := &Lane{Name: name, Team: team, Waypoints: waypoints}
	if len(waypoints) > 0 {
		l.Anchor = waypoints[0]
	}
	return l
}

// WaypointCount returns the number of waypoints on the lane.
func (l *Lane) WaypointCount() int {
	if l == nil {
		return 0
	}
	return len(l.Waypoints)
}

// WaypointPosition returns the waypoint at index. Out-of-range indexes log a
// warning and return the lane anchor instead of panicking.
func (l *Lane) WaypointPosition(index int) cp.Vector {
	if l == nil {
		return cp.Vector{}
	}
	if index < 0 || index >= len(l.Waypoints) {
		log.Printf("sim: lane %q waypoint index %d out of range (count %d)", l.Name, index, len(l.Waypoints))
		return l.Anchor
	}
	return l.Waypoints[index]
}

// ClosestWaypointIndex returns the index of the waypoint nearest to pos.
// Ties resolve to the lowest index. Returns -1 for an empty lane.
func (l *Lane) ClosestWaypointIndex(pos cp.Vector) int {
	if l == nil || len(l.Waypoints) == 0 {
		return -1
	}
	best := 0
	bestDist := l.Waypoints[0].Distance(pos)
	for i := 1; i < len(l.Waypoints); i++ {
		if d := l.Waypoints[i].Distance(pos); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// StartWaypointIndex returns the index a champion of the given team starts
// from: 0 for blue, the last index otherwise.
func (l *Lane) StartWaypointIndex(team Team) int {
	if l == nil || len(l.Waypoints) == 0 {
		return 0
	}
	if team == TeamBlue {
		return 0
	}
	return len(l.Waypoints) - 1
}

// EndWaypointIndex returns the index a champion of the given team travels
// toward, the complement of StartWaypointIndex.
func (l *Lane) EndWaypointIndex(team Team) int {
	if l == nil || len(l.Waypoints) == 0 {
		return 0
	}
	if team == TeamBlue {
		return len(l.Waypoints) - 1
	}
	return 0
}

// ClampIndex clamps a waypoint index into the valid range for this lane.
func (l *Lane) ClampIndex(index int) int {
	if l == nil || len(l.Waypoints) == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= len(l.Waypoints) {
		return len(l.Waypoints) - 1
	}
	return index
}
