package stategraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Kind selects which state graph a Model builds.
type Kind uint8

const (
	// KindOriented builds an *Oriented graph (heading matters, turns cost).
	KindOriented Kind = iota
	// KindFree builds a *Free graph (no heading, uniform moves).
	KindFree
)

// String returns "oriented" or "free".
func (k Kind) String() string {
	switch k {
	case KindOriented:
		return "oriented"
	case KindFree:
		return "free"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts "oriented" or "free", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oriented":
		return KindOriented, nil
	case "free":
		return KindFree, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadKind, s)
}

// Model is an edge-cost model: which graph to build over a view, with which
// costs, and which heading a search starts with.
type Model struct {
	Kind         Kind
	Costs        CostModel
	StartHeading Heading // ignored by KindFree
}

// DefaultModel is the turn-penalty maze model: oriented, move 1, turn 1000,
// starting east.
func DefaultModel() Model {
	return Model{Kind: KindOriented, Costs: DefaultCostModel(), StartHeading: East}
}

// FreeModel is the race-track model: headingless unit moves.
func FreeModel() Model {
	return Model{Kind: KindFree, Costs: CostModel{Move: 1}, StartHeading: NoHeading}
}

// Build constructs the graph for v.
func (m Model) Build(v gridgraph.View) (Graph, error) {
	switch m.Kind {
	case KindOriented:
		if !m.StartHeading.Valid() {
			return nil, fmt.Errorf("%w: oriented model needs a compass start heading, got %s", ErrBadHeading, m.StartHeading)
		}
		g, err := NewOriented(v, m.Costs)
		if err != nil {
			return nil, err
		}
		return g, nil
	case KindFree:
		g, err := NewFree(v, m.Costs)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrBadKind, m.Kind)
}

// Start returns the initial search state at p.
func (m Model) Start(p gridgraph.Point) State {
	if m.Kind == KindFree {
		return State{Pos: p, Heading: NoHeading}
	}

	return State{Pos: p, Heading: m.StartHeading}
}
