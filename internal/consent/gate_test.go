package consent

import "testing"

func TestGateAnonymousNeverPrompts(t *testing.T) {
	g := NewGate(true)
	if g.State() != GateUnknown {
		t.Fatalf("initial state = %q, want %q", g.State(), GateUnknown)
	}
	g.ResolveAnonymous()
	if g.State() != GateNotRequired {
		t.Fatalf("state = %q, want %q", g.State(), GateNotRequired)
	}
	if g.PromptVisible() {
		t.Fatal("prompt must never be visible for anonymous sessions")
	}
}

func TestGateMissingRecordRequiresConsent(t *testing.T) {
	g := NewGate(true)
	g.ResolveRecord(nil)
	if g.State() != GateRequired {
		t.Fatalf("state = %q, want %q", g.State(), GateRequired)
	}
	if !g.PromptVisible() {
		t.Fatal("prompt should be visible while consent is required")
	}
}

func TestGateUnacceptedRecordRequiresConsent(t *testing.T) {
	g := NewGate(true)
	g.ResolveRecord(&Record{Email: "a@x.com", PolicyAccepted: false})
	if g.State() != GateRequired {
		t.Fatalf("state = %q, want %q", g.State(), GateRequired)
	}
}

func TestGateAcceptedRecordNeverPrompts(t *testing.T) {
	g := NewGate(true)
	g.ResolveRecord(&Record{Email: "a@x.com", PolicyAccepted: true})
	if g.State() != GateNotRequired {
		t.Fatalf("state = %q, want %q", g.State(), GateNotRequired)
	}
	if g.PromptVisible() {
		t.Fatal("prompt must not be visible for an accepted record")
	}
}

func TestGateAcceptanceFlow(t *testing.T) {
	g := NewGate(true)
	g.ResolveRecord(nil)
	if !g.Accept() {
		t.Fatal("Accept() from GateRequired should transition")
	}
	if g.State() != GateSatisfied {
		t.Fatalf("state = %q, want %q", g.State(), GateSatisfied)
	}
	if g.PromptVisible() {
		t.Fatal("prompt must unmount once satisfied")
	}
	if g.Accept() {
		t.Fatal("Accept() is one-shot")
	}
}

func TestGateAcceptIgnoredOutsideRequired(t *testing.T) {
	g := NewGate(true)
	if g.Accept() {
		t.Fatal("Accept() before resolution should be ignored")
	}
	g.ResolveAnonymous()
	if g.Accept() {
		t.Fatal("Accept() in NotRequired should be ignored")
	}
}

func TestGateResolvesOnlyOnce(t *testing.T) {
	g := NewGate(true)
	g.ResolveRecord(nil)
	g.ResolveRecord(&Record{PolicyAccepted: true})
	if g.State() != GateRequired {
		t.Fatalf("second resolution must not apply, state = %q", g.State())
	}
	g.ResolveAnonymous()
	if g.State() != GateRequired {
		t.Fatalf("resolution after settling must not apply, state = %q", g.State())
	}
}

func TestGateDisabledAlwaysNotRequired(t *testing.T) {
	g := NewGate(false)
	g.ResolveRecord(nil)
	if g.State() != GateNotRequired {
		t.Fatalf("state = %q, want %q with gating disabled", g.State(), GateNotRequired)
	}
	if g.PromptVisible() {
		t.Fatal("prompt must not be visible with gating disabled")
	}
}
