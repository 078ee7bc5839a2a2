package beam

import (
	"context"

	"missile-engine/internal/fault"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Path is the flight-path collaborator. Fire walks the beam from its
// origin, calling Affect on every creature it reaches, and sets Landing.
type Path interface {
	Fire(ctx context.Context, b *Beam, env *Env)
}

// Decider vets a shot after seeing what the tracer found.
type Decider interface {
	Decide(ctx context.Context, b *Beam, stats TraceStats) bool
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, b *Beam, stats TraceStats) bool

func (f DeciderFunc) Decide(ctx context.Context, b *Beam, stats TraceStats) bool {
	return f(ctx, b, stats)
}

// Always accepts every shot.
var Always Decider = DeciderFunc(func(context.Context, *Beam, TraceStats) bool { return true })

// AllyPrompt only consults ask when the tracer found friends in the line
// of fire.
func AllyPrompt(ask func(ctx context.Context, b *Beam, stats TraceStats) bool) Decider {
	return DeciderFunc(func(ctx context.Context, b *Beam, stats TraceStats) bool {
		if stats.FriendCount == 0 {
			return true
		}
		return ask(ctx, b, stats)
	})
}

// Phase is a step of the tracer/commit state machine.
type Phase uint8

const (
	Idle Phase = iota
	TracerRun
	Accepted
	Cancelled
	RealRun
	Resolved
)

var phaseNames = [...]string{"idle", "tracer_run", "accepted", "cancelled", "real_run", "resolved"}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Simulator runs one attack: a tracer pass through a shadow world, the
// decision, and at most one real pass. A Simulator is single use.
type Simulator struct {
	Spans trace.Tracer
	phase Phase
}

// Phase returns the current step.
func (s *Simulator) Phase() Phase { return s.phase }

func (s *Simulator) spans() trace.Tracer {
	if s.Spans == nil {
		return noop.NewTracerProvider().Tracer("")
	}
	return s.Spans
}

func (s *Simulator) enter(from, to Phase) {
	if s.phase != from {
		panic(fault.Internalf("beam: simulator in phase %v cannot enter %v", s.phase, to))
	}
	s.phase = to
}

// Run performs the tracer pass, asks decider, and on acceptance fires b
// for real. A declined shot returns a Declined rejection and leaves the
// world untouched. b.Stats holds the tracer's statistics afterwards.
func (s *Simulator) Run(ctx context.Context, b *Beam, env *Env, path Path, decider Decider) error {
	s.enter(Idle, TracerRun)
	stats := s.trace(ctx, b.tracerCopy(), env, path)

	if decider != nil && !decider.Decide(ctx, b, stats) {
		s.enter(TracerRun, Cancelled)
		return fault.New(fault.Declined, "Ok, then.")
	}
	s.enter(TracerRun, Accepted)

	s.enter(Accepted, RealRun)
	ctx, span := s.spans().Start(ctx, "throw.real")
	b.Tracer = false
	b.Stats = stats
	path.Fire(ctx, b, env)
	hits := 0
	for _, imp := range b.Impacts {
		if imp.Hit {
			hits++
		}
	}
	span.SetAttributes(attribute.Int("impacts", len(b.Impacts)), attribute.Int("hits", hits))
	span.End()
	s.enter(RealRun, Resolved)
	return nil
}

// Trace runs the same tracer pass Run shows its decider: every creature
// on the line counts, whatever b's accuracy. It does not advance the state
// machine.
func (s *Simulator) Trace(ctx context.Context, b *Beam, env *Env, path Path) TraceStats {
	return s.trace(ctx, b.tracerCopy(), env, path)
}

// Estimate runs a tracer pass with b's true accuracy and damage, for
// automated shooters that weigh a shot before taking it. It does not
// advance the state machine.
func (s *Simulator) Estimate(ctx context.Context, b *Beam, env *Env, path Path) TraceStats {
	t := *b
	t.Tracer = true
	t.Stats = TraceStats{}
	t.Impacts = nil
	return s.trace(ctx, &t, env, path)
}

func (s *Simulator) trace(ctx context.Context, t *Beam, env *Env, path Path) TraceStats {
	ctx, span := s.spans().Start(ctx, "throw.tracer")
	defer span.End()
	path.Fire(ctx, t, env.Shadow())
	span.SetAttributes(
		attribute.Int("friend_count", t.Stats.FriendCount),
		attribute.Int("friend_power", t.Stats.FriendPower),
		attribute.Int("foe_count", t.Stats.FoeCount),
		attribute.Int("foe_power", t.Stats.FoePower),
	)
	return t.Stats
}
