package beam

import (
	"context"
	"math/rand"
	"testing"

	"missile-engine/internal/brand"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/event"
	"missile-engine/internal/fault"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/hook"
	"missile-engine/internal/rng"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// listPath affects a fixed list of creatures in order.
type listPath struct {
	victims []ecs.EntityID
	fired   []bool // Tracer flag of each Fire call
}

func (p *listPath) Fire(ctx context.Context, b *Beam, env *Env) {
	p.fired = append(p.fired, b.Tracer)
	for _, id := range p.victims {
		if imp, ok := Affect(ctx, env, b, id); ok && imp.Hit && !b.Tracer && !b.Penetrates() {
			break
		}
	}
}

type fixture struct {
	env     *Env
	rec     *event.Recorder
	shooter ecs.EntityID
}

func newFixture(seed int64) *fixture {
	w := ecs.NewWorld()
	gmap := gamemap.New(10, 10)
	gmap.Carve(gamemap.Rect{X1: 1, Y1: 1, X2: 8, Y2: 8}, gamemap.MakeFloor())
	rec := &event.Recorder{}
	shooter := w.CreateEntity()
	w.Add(shooter, component.TagPlayer{})
	w.Add(shooter, component.Position{X: 1, Y: 1})
	w.Add(shooter, component.Creature{Name: "you"})
	return &fixture{
		env:     &Env{World: w, Map: gmap, RNG: rand.New(rand.NewSource(seed)), Publisher: rec},
		rec:     rec,
		shooter: shooter,
	}
}

func (f *fixture) monster(c component.Creature, hp int) ecs.EntityID {
	id := f.env.World.CreateEntity()
	f.env.World.Add(id, component.Position{X: 5, Y: 1})
	f.env.World.Add(id, c)
	f.env.World.Add(id, component.Health{Current: hp, Max: hp})
	return id
}

func (f *fixture) beam() *Beam {
	return &Beam{Agent: f.shooter, Name: "bolt", HitVerb: "hits", AutoHit: true, Damage: rng.Dice{Num: 1, Size: 1}}
}

func health(w *ecs.World, id ecs.EntityID) int {
	return w.Get(id, component.CHealth).(component.Health).Current
}

func TestMissVerb(t *testing.T) {
	cases := []struct {
		margin int
		want   string
	}{
		{1, "barely misses"},
		{2, "barely misses"},
		{4, "closely misses"},
		{9, "misses"},
		{15, "completely misses"},
	}
	for _, c := range cases {
		if got := MissVerb(c.margin); got != c.want {
			t.Errorf("MissVerb(%d) = %q; want %q", c.margin, got, c.want)
		}
	}
}

func TestAffectSkipsAgent(t *testing.T) {
	f := newFixture(1)
	if _, ok := Affect(context.Background(), f.env, f.beam(), f.shooter); ok {
		t.Error("a shooter is never hit by its own shot")
	}
}

func TestAffectMiss(t *testing.T) {
	f := newFixture(1)
	id := f.monster(component.Creature{Name: "bat", Evasion: 50}, 10)
	b := f.beam()
	b.AutoHit = false
	b.ToHit = 5
	imp, _ := Affect(context.Background(), f.env, b, id)
	if imp.Hit || health(f.env.World, id) != 10 {
		t.Error("a to-hit of 5 cannot beat evasion 50")
	}
	if msgs := f.rec.Messages(); len(msgs) != 1 || msgs[0] != "The bolt completely misses the bat." {
		t.Errorf("messages = %v", msgs)
	}
}

func TestAffectFlavourAndKill(t *testing.T) {
	f := newFixture(1)
	id := f.monster(component.Creature{Name: "fire elemental"}, 3)
	f.env.World.Add(id, component.Resists{Cold: -1})
	b := f.beam()
	b.Flavour = brand.FlavourCold
	b.Damage = rng.Dice{Num: 1, Size: 1}
	b.Damages = []hook.DamageEffect{{Kind: hook.DamageHoly}}
	imp, _ := Affect(context.Background(), f.env, b, id)

	// 1 damage, vulnerable to cold: 1*3/2 = 1; holy does nothing to natural.
	if !imp.Hit || imp.Damage != 1 || len(imp.Effects) != 0 {
		t.Errorf("impact = %+v", imp)
	}
	b.Damage = rng.Dice{Num: 2, Size: 1}
	imp, _ = Affect(context.Background(), f.env, b, id)
	if !imp.Killed || f.env.World.Alive(id) {
		t.Errorf("the elemental should die: %+v", imp)
	}
	msgs := f.rec.Messages()
	if msgs[len(msgs)-1] != "The fire elemental is killed!" {
		t.Errorf("last message = %q", msgs[len(msgs)-1])
	}
}

func TestDischargeKillEndsHitEffects(t *testing.T) {
	kills := 0
	for seed := int64(0); seed < 300; seed++ {
		f := newFixture(seed)
		id := f.monster(component.Creature{Name: "orc", Level: 3}, 5)
		f.env.Map.Set(5, 1, gamemap.MakeShallowWater())
		b := f.beam()
		b.Hits = []hook.HitEffect{{Kind: hook.HitElectricWater}, {Kind: hook.HitDispersal}}
		imp, _ := Affect(context.Background(), f.env, b, id)

		if f.env.World.Alive(id) {
			if imp.Killed {
				t.Fatalf("seed %d: survivor reported killed", seed)
			}
			continue
		}
		kills++
		if !imp.Killed {
			t.Fatalf("seed %d: discharge killed the orc but the impact says otherwise: %+v", seed, imp)
		}
		if f.env.World.Has(id, component.CPosition) {
			t.Fatalf("seed %d: dead orc was given a position", seed)
		}
		if f.env.Map.At(5, 1).Cloud != gamemap.CloudNone {
			t.Fatalf("seed %d: dispersal ran on a corpse", seed)
		}
		for _, m := range f.rec.Messages() {
			if m == "The orc blinks!" || m == "The orc vanishes!" {
				t.Fatalf("seed %d: %q after the kill", seed, m)
			}
		}
	}
	if kills == 0 {
		t.Fatal("no discharge ever killed the orc")
	}
}

func TestShadowIsIndependent(t *testing.T) {
	f := newFixture(1)
	id := f.monster(component.Creature{Name: "orc"}, 10)
	shadow := f.env.Shadow()
	shadow.World.Add(id, component.Health{Current: 1, Max: 10})
	shadow.Map.Set(2, 2, gamemap.MakeWall())
	shadow.Publisher.Publish(context.Background(), event.Message(f.beam().ID, 0, "x"))

	if health(f.env.World, id) != 10 || !f.env.Map.IsWalkable(2, 2) || len(f.rec.Events()) != 0 {
		t.Error("shadow changes leaked into the real environment")
	}
	if !shadow.Tracer {
		t.Error("shadow should be marked as a tracer environment")
	}
}

func TestRunCommitsExactlyOnce(t *testing.T) {
	f := newFixture(3)
	id := f.monster(component.Creature{Name: "orc"}, 50)
	p := &listPath{victims: []ecs.EntityID{id}}
	b := f.beam()
	b.Damage = rng.Dice{Num: 1, Size: 4}

	rec := tracetest.NewSpanRecorder()
	sim := &Simulator{Spans: trace.NewTracerProvider(trace.WithSpanProcessor(rec)).Tracer("test")}
	if err := sim.Run(context.Background(), b, f.env, p, Always); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.fired) != 2 || !p.fired[0] || p.fired[1] {
		t.Fatalf("Fire calls (tracer flags) = %v; want [true false]", p.fired)
	}
	if b.Stats.FoeCount != 1 || b.Tracer {
		t.Errorf("beam after run: tracer=%v stats=%+v", b.Tracer, b.Stats)
	}
	if got := health(f.env.World, id); got >= 50 || got < 46 {
		t.Errorf("hp = %d; want one real hit of 1d4", got)
	}
	if sim.Phase() != Resolved {
		t.Errorf("phase = %v", sim.Phase())
	}
	names := map[string]bool{}
	for _, s := range rec.Ended() {
		names[s.Name()] = true
	}
	if !names["throw.tracer"] || !names["throw.real"] {
		t.Errorf("spans = %v", names)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("a second Run should panic")
		} else if e, ok := r.(*fault.Error); !ok || e.Code != fault.Internal {
			t.Errorf("panic value %v", r)
		}
	}()
	sim.Run(context.Background(), b, f.env, p, Always)
}

func TestRunDeclined(t *testing.T) {
	f := newFixture(3)
	id := f.monster(component.Creature{Name: "orc"}, 50)
	p := &listPath{victims: []ecs.EntityID{id}}
	err := (&Simulator{}).Run(context.Background(), f.beam(), f.env, p,
		DeciderFunc(func(context.Context, *Beam, TraceStats) bool { return false }))
	if !fault.IsRejection(err) || fault.CodeOf(err) != fault.Declined {
		t.Fatalf("err = %v; want a declined rejection", err)
	}
	if len(p.fired) != 1 || health(f.env.World, id) != 50 {
		t.Error("a declined shot must not fire for real")
	}
}

func TestAllyPrompt(t *testing.T) {
	asked := 0
	d := AllyPrompt(func(context.Context, *Beam, TraceStats) bool {
		asked++
		return false
	})
	ctx := context.Background()
	if !d.Decide(ctx, nil, TraceStats{FoeCount: 2}) || asked != 0 {
		t.Error("no friends exposed: fire without asking")
	}
	if d.Decide(ctx, nil, TraceStats{FriendCount: 1, FoeCount: 1}) || asked != 1 {
		t.Error("friends exposed: ask and respect the answer")
	}
}

func TestTracerCopy(t *testing.T) {
	b := &Beam{ToHit: 3, Damage: rng.Dice{Num: 1, Size: 2}, Impacts: []Impact{{}}}
	c := b.tracerCopy()
	if !c.Tracer || !c.AutoHit || c.Damage != (rng.Dice{Num: 10, Size: 10}) || c.Impacts != nil {
		t.Errorf("tracer copy = %+v", c)
	}
	if b.Tracer || b.AutoHit || len(b.Impacts) != 1 {
		t.Error("tracerCopy changed the original")
	}
}
