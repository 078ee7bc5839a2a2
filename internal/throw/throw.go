// Package throw runs one ranged attack from start to finish: it vets the
// request, builds the beam, runs the tracer and the real shot, and then
// settles what happens to the projectile.
//
// Players and monsters share the same entry point. Only the Decider
// differs: players are asked before hitting friends, monsters weigh the
// tracer numbers themselves.
package throw

import (
	"context"
	"fmt"
	"log/slog"

	"missile-engine/internal/actor"
	"missile-engine/internal/ai"
	"missile-engine/internal/ballistics"
	"missile-engine/internal/beam"
	"missile-engine/internal/brand"
	"missile-engine/internal/component"
	"missile-engine/internal/event"
	"missile-engine/internal/fate"
	"missile-engine/internal/fault"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/hook"
	"missile-engine/internal/item"
	"missile-engine/internal/rng"
	"missile-engine/internal/system"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// PreviewSeed seeds the private source Preview rolls on.
const PreviewSeed = 1

// ConfusionSpread is how far a confused shooter's aim can wander on
// each axis.
const ConfusionSpread = 6

// Request is one attempt to throw or fire the item in Slot at Target.
type Request struct {
	Attacker actor.Attacker
	Slot     int
	Target   gamemap.Point
	// AccBonus is a one-off accuracy bonus, e.g. from a spell.
	AccBonus int
}

// Outcome is what an attack did.
type Outcome struct {
	ID          uuid.UUID
	Mode        item.Mode
	Impacts     []beam.Impact
	Landing     gamemap.Point
	Disposition fate.Disposition
	Stats       beam.TraceStats
	Messages    []string
}

// Hits counts the impacts that connected.
func (o Outcome) Hits() int {
	n := 0
	for _, imp := range o.Impacts {
		if imp.Hit {
			n++
		}
	}
	return n
}

// Engine resolves attacks. The zero value is not usable; Path is required.
type Engine struct {
	Path   beam.Path
	Logger *slog.Logger
	Tracer trace.Tracer
}

// New returns an Engine flying beams along path.
func New(path beam.Path, logger *slog.Logger, tracer trace.Tracer) *Engine {
	return &Engine{Path: path, Logger: logger, Tracer: tracer}
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Engine) tracer() trace.Tracer {
	if e.Tracer == nil {
		return noop.NewTracerProvider().Tracer("")
	}
	return e.Tracer
}

// shot is a vetted request with its beam built.
type shot struct {
	req        Request
	it         item.Item // the stack the projectile comes from
	proj       item.Item
	launcher   item.Item
	mode       item.Mode
	resolution brand.Resolution
	beam       *beam.Beam
	wielded    bool // the stack was in hand when thrown
}

// Throw performs req. It returns a rejection (see fault.IsRejection) when
// the attack cannot be made or decider declines it; the world is then
// unchanged and no messages are published.
func (e *Engine) Throw(ctx context.Context, env *beam.Env, req Request, decider beam.Decider) (Outcome, error) {
	ctx, span := e.tracer().Start(ctx, "throw")
	defer span.End()
	log := e.logger()

	s, err := e.prepare(env, req, true)
	if err != nil {
		log.Info("throw rejected", "attacker", req.Attacker.Name(), "code", fault.CodeOf(err).String(), "reason", fault.Message(err))
		span.SetStatus(codes.Error, fault.Message(err))
		return Outcome{}, fmt.Errorf("throw: %w", err)
	}
	b := s.beam
	a := req.Attacker
	span.SetAttributes(
		attribute.String("attack.id", b.ID.String()),
		attribute.String("attacker", a.Name()),
		attribute.String("mode", s.mode.String()),
		attribute.String("item", s.proj.Name()),
	)

	rec := &event.Recorder{}
	live := *env
	live.Publisher = event.Fanout(
		event.WithFields(env.Publisher, map[string]any{"attacker": a.Name(), "mode": s.mode.String()}),
		rec,
	)

	// The launch message goes out once the shot is committed. The stack is
	// checked again because a prompt may have given the world time to move.
	gone := false
	commit := beam.DeciderFunc(func(ctx context.Context, b *beam.Beam, stats beam.TraceStats) bool {
		if decider != nil && !decider.Decide(ctx, b, stats) {
			return false
		}
		if _, ok := system.ItemAt(env.World, a.ID(), req.Slot); !ok {
			gone = true
			return false
		}
		if live.Visible(b.Origin) {
			live.Say(ctx, b, launchMessage(a, s.mode, b.Name))
		}
		return true
	})

	sim := &beam.Simulator{Spans: e.tracer()}
	if err := sim.Run(ctx, b, &live, e.Path, commit); err != nil {
		if gone {
			err = fault.Reject(fault.ItemGone, "You no longer have the %s.", s.it.Name())
		}
		log.Info("throw declined", "attack", b.ID, "attacker", a.Name(), "reason", fault.Message(err))
		span.SetStatus(codes.Error, fault.Message(err))
		return Outcome{}, fmt.Errorf("throw: %w", err)
	}

	s.wielded = wielded(env, a, req.Slot)
	system.TakeOne(env.World, a.ID(), req.Slot)
	disp := e.settle(ctx, &live, s)
	e.noise(ctx, &live, s)

	out := Outcome{
		ID:          b.ID,
		Mode:        s.mode,
		Impacts:     b.Impacts,
		Landing:     b.Landing,
		Disposition: disp,
		Stats:       b.Stats,
		Messages:    rec.Messages(),
	}
	span.SetAttributes(
		attribute.Int("friend_power", b.Stats.FriendPower),
		attribute.Int("foe_power", b.Stats.FoePower),
		attribute.Int("hits", out.Hits()),
		attribute.String("disposition", disp.String()),
	)
	log.Debug("throw resolved",
		"attack", b.ID,
		"attacker", a.Name(),
		"item", s.proj.Name(),
		"mode", s.mode.String(),
		"hits", out.Hits(),
		"disposition", disp.String(),
	)
	return out, nil
}

// MonsterFire is Throw with the automatic decider.
func (e *Engine) MonsterFire(ctx context.Context, env *beam.Env, req Request) (Outcome, error) {
	return e.Throw(ctx, env, req, ai.Decider())
}

// Fire lets the engine drive monsters through ai.ProcessArchers.
func (e *Engine) Fire(ctx context.Context, env *beam.Env, shot ai.Shot) error {
	_, err := e.MonsterFire(ctx, env, Request{Attacker: shot.Attacker, Slot: shot.Slot, Target: shot.Target})
	return err
}

// Preview reports what the tracer would find for req without committing
// to it: the same exposure counts the decider of a real Throw sees. It
// rolls on a private source seeded with PreviewSeed, so previews never
// disturb env.RNG and nothing in the world changes. A confused shooter is
// previewed as if aiming true.
func (e *Engine) Preview(ctx context.Context, env *beam.Env, req Request) (beam.TraceStats, error) {
	scratch := *env
	scratch.RNG = rng.New(PreviewSeed)
	s, err := e.prepare(&scratch, req, false)
	if err != nil {
		return beam.TraceStats{}, err
	}
	sim := &beam.Simulator{Spans: e.tracer()}
	return sim.Trace(ctx, s.beam, &scratch, e.Path), nil
}

// prepare vets req and builds its beam.
func (e *Engine) prepare(env *beam.Env, req Request, confuse bool) (*shot, error) {
	a := req.Attacker
	st := a.Status()
	if st.Berserk {
		return nil, fault.Reject(fault.Berserk, "You are too berserk!")
	}
	if st.CannotThrow {
		return nil, fault.Reject(fault.Form, "You can't handle that in your current form.")
	}

	it, ok := system.ItemAt(env.World, a.ID(), req.Slot)
	if !ok {
		return nil, fault.Reject(fault.NoItem, "You have nothing there to throw.")
	}
	if it.Worn {
		return nil, fault.Reject(fault.ItemEquipped, "You are wearing that object!")
	}
	launcher, hasLauncher := a.Launcher()
	if it.Cursed && wielded(env, a, req.Slot) {
		return nil, fault.Reject(fault.ItemEquipped, "The %s is stuck to your hand!", it.Name())
	}

	proj := it.Copy()
	var lp *item.Item
	if hasLauncher {
		lp = &launcher
	}
	mode := item.Classify(lp, proj)
	if st.Held && mode != item.Launched {
		return nil, fault.Reject(fault.Held, "You cannot throw anything while held.")
	}

	origin := a.Pos()
	target := req.Target
	if target == origin || !env.Map.InBounds(target.X, target.Y) {
		return nil, fault.Reject(fault.InvalidTarget, "That's not a valid target.")
	}
	if confuse && st.Confused {
		target = origin.Add(
			rng.RandomRange(env.RNG, -ConfusionSpread, ConfusionSpread),
			rng.RandomRange(env.RNG, -ConfusionSpread, ConfusionSpread),
		)
		if target == origin {
			return nil, fault.Reject(fault.Confused, "You are confused and cannot control your aim.")
		}
	}

	lb, ab := brandSides(mode, launcher, proj)
	res := brand.Resolve(lb, ab, brand.Options{
		Mode:          mode,
		FixedLauncher: a.Traits().FixedLauncherBrand,
		AmmoKnown:     proj.BrandKnown,
		BaseName:      proj.Name(),
	})

	in := ballistics.FromAttacker(a, proj, lp, mode, res, req.AccBonus)
	out := ballistics.Compute(env.RNG, in)
	damages, hits, ranges := hook.Build(res, proj)

	enchant := proj.Plus
	if mode == item.Launched {
		enchant += launcher.Plus
	}
	b := &beam.Beam{
		ID:            uuid.New(),
		Agent:         a.ID(),
		AgentIsPlayer: a.IsPlayer(),
		Origin:        origin,
		Target:        target,
		Range:         out.Range,
		Flavour:       res.Flavour,
		ToHit:         out.ToHit,
		Damage:        out.Dice,
		AutoHit:       out.AutoHit,
		Damages:       damages,
		Hits:          hits,
		Ranges:        ranges,
		Name:          res.Name,
		HitVerb:       res.HitVerb,
		Mode:          mode,
		Power:         hook.NeedlePower(in.Skill, enchant),
		Skill:         in.Skill,
		Enchant:       enchant,
	}
	if res.Set.Has(item.BrandExploding) {
		name := res.Flavour.String()
		if res.Flavour == brand.FlavourPlain {
			name = "fragments"
		}
		b.Explosion = &beam.Explosion{Dice: rng.Dice{Num: 2, Size: 5}, Radius: 1, Name: name}
	}
	return &shot{req: req, it: it, proj: proj, launcher: launcher, mode: mode, resolution: res, beam: b}, nil
}

func wielded(env *beam.Env, a actor.Attacker, slot int) bool {
	c := env.World.Get(a.ID(), component.CInventory)
	return c != nil && c.(component.Inventory).Wielded == slot
}

// brandSides splits the brands into launcher and ammunition sides. A
// weapon thrown by hand carries its own brand on the launcher side.
func brandSides(mode item.Mode, launcher, proj item.Item) (lb, ab item.Brand) {
	switch {
	case mode == item.Launched:
		return launcher.Brand, proj.Brand
	case proj.Class == item.ClassWeapon:
		return proj.Brand, item.BrandNormal
	}
	return item.BrandNormal, proj.Brand
}

func launchMessage(a actor.Attacker, mode item.Mode, name string) string {
	verb := "throw"
	if mode == item.Launched {
		verb = "shoot"
	}
	if a.IsPlayer() {
		return "You " + verb + " " + item.Article(name) + "."
	}
	return actor.Capitalize(a.Name()) + " " + verb + "s " + item.Article(name) + "."
}

// settle decides the projectile's fate and moves it where it ends up.
func (e *Engine) settle(ctx context.Context, env *beam.Env, s *shot) fate.Disposition {
	a := s.req.Attacker
	b := s.beam
	owner := "your pack"
	if !a.IsPlayer() {
		owner = a.Name()
	}
	res := fate.Resolve(env.RNG, fate.Input{
		Item:        s.proj,
		Mode:        s.mode,
		Resolution:  s.resolution,
		ReturnSkill: a.Skill(item.SkillThrowing),
		Owner:       owner,
		Landing:     b.Landing,
		Tile:        *env.Map.At(b.Landing.X, b.Landing.Y),
		Seen:        env.Visible(b.Landing),
	})
	for _, msg := range res.Messages {
		env.Say(ctx, b, msg)
	}

	proj := s.proj
	if res.Identified {
		proj.BrandKnown = true
	}
	switch res.Disposition {
	case fate.DispReturned:
		if !env.World.Alive(a.ID()) || !system.Restore(env.World, a.ID(), s.req.Slot, proj, s.wielded) {
			system.DropAt(env.World, b.Origin, proj)
		}
	case fate.DispDropped:
		system.DropAt(env.World, b.Landing, proj)
	}
	return res.Disposition
}

// noise publishes the sound of the shot and alerts monsters in earshot.
func (e *Engine) noise(ctx context.Context, env *beam.Env, s *shot) {
	level, text := fate.Noise(s.mode, s.launcher, s.proj)
	if level <= 0 {
		return
	}
	b := s.beam
	if env.Visible(b.Origin) {
		text = ""
	}
	env.Publisher.Publish(ctx, event.Noise(b.ID, b.Agent, b.Origin, level, text))
	if n := system.Alert(env.World, b.Origin, level); n > 0 {
		e.logger().Debug("shot alerted monsters", "attack", b.ID, "count", n)
	}
}
