package sim

import "fmt"

// Team identifies lane and champion ownership. Neutral lanes are shared by
// both teams and traversed in opposite directions.
type Team int

const (
	TeamNeutral Team = iota
	TeamBlue
	TeamRed
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	default:
		return "neutral"
	}
}

// ParseTeam converts a config string into a Team.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "blue":
		return TeamBlue, nil
	case "red":
		return TeamRed, nil
	case "neutral", "":
		return TeamNeutral, nil
	}
	return TeamNeutral, fmt.Errorf("sim: unknown team %q", s)
}

// LaneType selects which registered lane a champion requests.
type LaneType int

const (
	LaneNone LaneType = iota
	LaneTop
	LaneMid
	LaneBottom
)

func (t LaneType) String() string {
	switch t {
	case LaneTop:
		return "top"
	case LaneMid:
		return "mid"
	case LaneBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseLaneType converts a config string into a LaneType.
func ParseLaneType(s string) (LaneType, error) {
	switch s {
	case "top":
		return LaneTop, nil
	case "mid", "middle":
		return LaneMid, nil
	case "bottom", "bot":
		return LaneBottom, nil
	case "none", "":
		return LaneNone, nil
	}
	return LaneNone, fmt.Errorf("sim: unknown lane type %q", s)
}
