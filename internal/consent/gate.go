package consent

// GateState is the consent gate's position in its lifecycle.
type GateState string

const (
	// GateUnknown is the initial state, before the session load settles.
	GateUnknown GateState = "unknown"
	// GateNotRequired means no prompt is owed: anonymous viewer, an
	// already-accepted record, or gating disabled.
	GateNotRequired GateState = "notRequired"
	// GateRequired means a session exists without an accepted record; the
	// prompt overlay blocks page interaction.
	GateRequired GateState = "required"
	// GateSatisfied is terminal, reached only from GateRequired by an
	// explicit acceptance.
	GateSatisfied GateState = "satisfied"
)

// Gate decides whether the consent prompt overlays page content. It is a
// one-shot-per-mount machine: the load outcome resolves it exactly once,
// and Satisfied never re-queries the record.
type Gate struct {
	state          GateState
	gatingEnabled  bool
	sessionPresent bool
}

// NewGate returns a gate in GateUnknown. With gating disabled every load
// outcome resolves to GateNotRequired.
func NewGate(gatingEnabled bool) *Gate {
	return &Gate{state: GateUnknown, gatingEnabled: gatingEnabled}
}

// State returns the current gate state.
func (g *Gate) State() GateState {
	return g.state
}

// ResolveAnonymous settles the gate for an anonymous session. Only the
// initial state transitions; later calls are ignored.
func (g *Gate) ResolveAnonymous() {
	if g.state != GateUnknown {
		return
	}
	g.sessionPresent = false
	g.state = GateNotRequired
}

// ResolveRecord settles the gate for a real session. A nil record or an
// unaccepted one requires consent; failed lookups arrive here as nil, so
// both route to prompting.
func (g *Gate) ResolveRecord(rec *Record) {
	if g.state != GateUnknown {
		return
	}
	g.sessionPresent = true
	if !g.gatingEnabled {
		g.state = GateNotRequired
		return
	}
	if rec != nil && rec.PolicyAccepted {
		g.state = GateNotRequired
		return
	}
	g.state = GateRequired
}

// Accept moves GateRequired to GateSatisfied. It reports whether the
// transition happened; acceptance in any other state is ignored.
func (g *Gate) Accept() bool {
	if g.state != GateRequired {
		return false
	}
	g.state = GateSatisfied
	return true
}

// PromptVisible reports whether the consent overlay should be mounted:
// only while consent is required, and never without a session.
func (g *Gate) PromptVisible() bool {
	return g.state == GateRequired && g.sessionPresent
}
