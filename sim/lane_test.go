package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func testLane() *Lane {
	return NewLane("Mid Lane", TeamNeutral, []cp.Vector{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 20, Y: 0},
	})
}

func TestLaneWaypointPosition(t *testing.T) {
	lane := testLane()

	cases := []struct {
		name  string
		index int
		want  cp.Vector
	}{
		{"first", 0, cp.Vector{X: 0, Y: 0}},
		{"middle", 1, cp.Vector{X: 10, Y: 0}},
		{"last", 2, cp.Vector{X: 20, Y: 0}},
		{"negative_falls_back_to_anchor", -1, lane.Anchor},
		{"past_end_falls_back_to_anchor", 3, lane.Anchor},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := lane.WaypointPosition(c.index)
			if got != c.want {
				t.Fatalf("WaypointPosition(%d) = %v, want %v", c.index, got, c.want)
			}
		})
	}
}

func TestLaneClosestWaypointIndex(t *testing.T) {
	lane := testLane()

	cases := []struct {
		name string
		pos  cp.Vector
		want int
	}{
		{"at_first", cp.Vector{X: 0, Y: 0}, 0},
		{"near_middle", cp.Vector{X: 11, Y: 3}, 1},
		{"far_right", cp.Vector{X: 100, Y: 0}, 2},
		{"tie_prefers_lowest_index", cp.Vector{X: 5, Y: 0}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lane.ClosestWaypointIndex(c.pos); got != c.want {
				t.Fatalf("ClosestWaypointIndex(%v) = %d, want %d", c.pos, got, c.want)
			}
		})
	}

	t.Run("empty_lane", func(t *testing.T) {
		empty := NewLane("empty", TeamNeutral, nil)
		if got := empty.ClosestWaypointIndex(cp.Vector{}); got != -1 {
			t.Fatalf("expected -1 for empty lane, got %d", got)
		}
	})
}

func TestLaneStartEndIndexes(t *testing.T) {
	lane := testLane()

	cases := []struct {
		name      string
		team      Team
		wantStart int
		wantEnd   int
	}{
		{"blue", TeamBlue, 0, 2},
		{"red", TeamRed, 2, 0},
		{"neutral", TeamNeutral, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lane.StartWaypointIndex(c.team); got != c.wantStart {
				t.Fatalf("StartWaypointIndex(%v) = %d, want %d", c.team, got, c.wantStart)
			}
			if got := lane.EndWaypointIndex(c.team); got != c.wantEnd {
				t.Fatalf("EndWaypointIndex(%v) = %d, want %d", c.team, got, c.wantEnd)
			}
		})
	}
}

func TestLaneClampIndex(t *testing.T) {
	lane := testLane()

	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{99, 2},
	}

	for _, c := range cases {
		if got := lane.ClampIndex(c.in); got != c.want {
			t.Fatalf("ClampIndex(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
