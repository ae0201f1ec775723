package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/machine"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid state diagram from a transition table.
// Each rule becomes an edge labelled "read/write,move". States without any outgoing
// rule are drawn as final states, since the machine always halts there.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid[S, A comparable](initial S, rules []machine.Rule[S, A], overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	states := []string{fmt.Sprint(initial)}
	seen := map[string]bool{states[0]: true}
	outgoing := make(map[string]bool)
	for _, r := range rules {
		from, to := fmt.Sprint(r.State), fmt.Sprint(r.Next)
		outgoing[from] = true
		for _, s := range []string{from, to} {
			if !seen[s] {
				seen[s] = true
				states = append(states, s)
			}
		}
	}

	for _, s := range states {
		safeID := sanitizeMermaidID(s)
		if safeID != s {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", escapeLabel(s), safeID))
		}
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(states[0])))

	for _, r := range rules {
		label := fmt.Sprintf("%v/%v,%v", r.Read, r.Write, r.Move)
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n",
			sanitizeMermaidID(fmt.Sprint(r.State)),
			sanitizeMermaidID(fmt.Sprint(r.Next)),
			escapeLabel(label),
		))
	}

	for _, s := range states {
		if !outgoing[s] {
			sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeMermaidID(s)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" && seen[id] {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID turns a state name into an identifier Mermaid accepts.
// Names starting with a digit get an "s_" prefix.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	s := sb.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "s_" + s
	}
	return s
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, ":", "#58;")
}
