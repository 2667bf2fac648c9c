package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func twoPointLane(name string) *Lane {
	return NewLane(name, TeamNeutral, []cp.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}})
}

func TestLaneManagerLookup(t *testing.T) {
	top := twoPointLane("Top Lane")
	mid := twoPointLane("Mid Lane")
	bottom := twoPointLane("Bottom Lane")

	cases := []struct {
		name     string
		register map[LaneType]*Lane
		request  LaneType
		want     *Lane
	}{
		{
			name:     "exact_match",
			register: map[LaneType]*Lane{LaneTop: top, LaneMid: mid, LaneBottom: bottom},
			request:  LaneMid,
			want:     mid,
		},
		{
			name:     "none_falls_back_to_top_first",
			register: map[LaneType]*Lane{LaneTop: top, LaneMid: mid},
			request:  LaneNone,
			want:     top,
		},
		{
			name:     "missing_type_falls_back_in_priority_order",
			register: map[LaneType]*Lane{LaneMid: mid, LaneBottom: bottom},
			request:  LaneTop,
			want:     mid,
		},
		{
			name:     "only_bottom_registered",
			register: map[LaneType]*Lane{LaneBottom: bottom},
			request:  LaneNone,
			want:     bottom,
		},
		{
			name:     "empty_registry",
			register: nil,
			request:  LaneMid,
			want:     nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewLaneManager()
			for lt, l := range c.register {
				m.Register(lt, l)
			}
			if got := m.Lane(c.request); got != c.want {
				t.Fatalf("Lane(%v) = %v, want %v", c.request, got, c.want)
			}
		})
	}
}

func TestLaneManagerLaneByName(t *testing.T) {
	m := NewLaneManager()
	top := twoPointLane("Top Lane")
	mid := twoPointLane("Mid Lane")
	m.Register(LaneTop, top)
	m.Register(LaneMid, mid)

	cases := []struct {
		name  string
		query string
		want  *Lane
	}{
		{"exact", "Mid Lane", mid},
		{"substring", "mid", mid},
		{"case_insensitive", "TOP", top},
		{"no_match", "jungle", nil},
		{"empty_query", "", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.LaneByName(c.query); got != c.want {
				t.Fatalf("LaneByName(%q) = %v, want %v", c.query, got, c.want)
			}
		})
	}
}
