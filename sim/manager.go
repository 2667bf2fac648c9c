package sim

import "strings"

// laneLookupOrder is the deterministic fallback order for lane requests that
// cannot be matched exactly.
var laneLookupOrder = []LaneType{LaneTop, LaneMid, LaneBottom}

// LaneManager resolves a LaneType to a concrete Lane. It holds at most one
// lane per type and never mutates simulation state.
type LaneManager struct {
	lanes map[LaneType]*Lane
}

// NewLaneManager creates an empty lane registry.
func NewLaneManager() *LaneManager {
	return &LaneManager{lanes: make(map[LaneType]*Lane)}
}

// Register binds a lane to a lane type, replacing any previous binding.
func (m *LaneManager) Register(t LaneType, l *Lane) {
	if m == nil || t == LaneNone || l == nil {
		return
	}
	if m.lanes == nil {
		m.lanes = make(map[LaneType]*Lane)
	}
	m.lanes[t] = l
}

// Lane returns the lane registered for t. When t is LaneNone or has no
// registration, the first registered lane in top/mid/bottom order is returned
// instead. Returns nil only when the registry is empty.
func (m *LaneManager) Lane(t LaneType) *Lane {
	if m == nil || len(m.lanes) == 0 {
		return nil
	}
	if t != LaneNone {
		if l, ok := m.lanes[t]; ok && l != nil {
			return l
		}
	}
	for _, fallback := range laneLookupOrder {
		if l, ok := m.lanes[fallback]; ok && l != nil {
			return l
		}
	}
	return nil
}

// LaneByName returns the first lane whose name contains s, case-insensitive.
// Tooling convenience only; the simulation hot path resolves by LaneType.
func (m *LaneManager) LaneByName(s string) *Lane {
	if m == nil || s == "" {
		return nil
	}
	needle := strings.ToLower(s)
	for _, t := range laneLookupOrder {
		l, ok := m.lanes[t]
		if !ok || l == nil {
			continue
		}
		if strings.Contains(strings.ToLower(l.Name), needle) {
			return l
		}
	}
	return nil
}

// Lanes returns the registered lanes in top/mid/bottom order.
func (m *LaneManager) Lanes() []*Lane {
	if m == nil {
		return nil
	}
	out := make([]*Lane, 0, len(m.lanes))
	for _, t := range laneLookupOrder {
		if l, ok := m.lanes[t]; ok && l != nil {
			out = append(out, l)
		}
	}
	return out
}
