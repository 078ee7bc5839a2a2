// Package game runs the interactive shooting range: the player picks a
// kit, walks the firing line and trades shots with the targets while
// allies wander into the line of fire.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"missile-engine/assets"
	"missile-engine/internal/actor"
	"missile-engine/internal/ai"
	"missile-engine/internal/beam"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/event"
	"missile-engine/internal/factory"
	"missile-engine/internal/fault"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/generate"
	"missile-engine/internal/item"
	"missile-engine/internal/logging"
	"missile-engine/internal/rng"
	"missile-engine/internal/system"
	"missile-engine/internal/throw"
	"missile-engine/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateCleared
)

// maxMessages bounds the message log.
const maxMessages = 50

// Options configure a session.
type Options struct {
	Seed        int64  // zero picks a random seed
	Class       string // kit id; empty shows the kit selection screen
	Difficulty  int
	AutoConfirm bool // never ask before shooting past allies
	DataHome    string
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *ui.Renderer
	console  *ui.Console
	engine   *throw.Engine
	logger   *slog.Logger
	opts     Options

	world    *ecs.World
	gmap     *gamemap.GameMap
	env      *beam.Env
	playerID ecs.EntityID
	rng      *rand.Rand
	class    assets.ClassDef
	state    GameState
	messages []string
	targets  []ecs.EntityID
	selected int // index into targets, -1 for none
	slot     int // inventory slot the player fires from
	preview  string
	seen     map[string]bool // creature names whose lore was shown
	runLog   RunLog
}

// New creates a Game drawing on screen and resolving shots with engine.
// The range itself is built when Run starts.
func New(screen tcell.Screen, engine *throw.Engine, logger *slog.Logger, opts Options) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Seed == 0 {
		opts.Seed = rng.NewSeed()
	}
	opts.Difficulty = min(max(opts.Difficulty, 1), MaxDifficulty)
	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		console:  ui.NewConsole(screen),
		engine:   engine,
		logger:   logger,
		opts:     opts,
		rng:      rng.New(opts.Seed),
	}
	g.resetForRun()
	return g
}

// resetForRun clears all per-session state in preparation for a fresh start.
func (g *Game) resetForRun() {
	g.state = StatePlaying
	g.messages = nil
	g.world = nil
	g.gmap = nil
	g.env = nil
	g.targets = nil
	g.selected = -1
	g.preview = ""
	g.seen = make(map[string]bool)
	g.runLog = newRunLog()
	g.runLog.Difficulty = g.opts.Difficulty
	g.runLog.Seed = g.opts.Seed
}

// loadRange generates and populates a fresh range.
func (g *Game) loadRange(ctx context.Context) {
	cfg := rangeConfig(g.opts.Difficulty, g.rng)
	gmap, lay := generate.Generate(cfg)
	pop := generate.Populate(gmap, lay, cfg)

	w := ecs.NewWorld()
	player := factory.NewPlayer(w, lay.Spawn, g.class)
	if skipped := factory.Populate(w, pop); len(skipped) > 0 {
		g.logger.Warn("unknown species in spawn table", "species", skipped)
	}
	g.attach(w, gmap, player)
	g.runLog.Class = g.class.Name

	g.addMessage(g.class.Lore)
	if lore := assets.RangeLore[g.opts.Difficulty]; len(lore) > 0 {
		g.addMessage(lore[g.rng.Intn(len(lore))])
	}
	g.logger.Info("range loaded",
		"seed", g.opts.Seed,
		"difficulty", g.opts.Difficulty,
		"class", g.class.ID,
		"enemies", len(pop.Enemies),
		"allies", len(pop.Allies))
	g.refresh(ctx)
}

// attach makes w and gmap the live range with player as the shooter.
func (g *Game) attach(w *ecs.World, gmap *gamemap.GameMap, player ecs.EntityID) {
	g.world, g.gmap, g.playerID = w, gmap, player
	g.env = &beam.Env{
		World:     w,
		Map:       gmap,
		RNG:       g.rng,
		Publisher: event.PublisherFunc(g.publish),
		Observer:  player,
	}
	g.slot = -1
	g.ensureAmmo()
}

// publish feeds engine events into the message log.
func (g *Game) publish(_ context.Context, e event.Event) {
	switch e.Kind {
	case event.KindMessage:
		g.addMessage(e.Text)
	case event.KindNoise:
		if e.Text != "" {
			g.addMessage(e.Text)
		}
	}
	g.logger.Debug("event", "kind", e.Kind.String(), "attack", e.AttackID.String(), "text", e.Text)
}

// Run is the main game loop. Supports multiple consecutive sessions via
// Try Again.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	for {
		g.resetForRun()
		if !g.chooseClass() {
			return
		}
		g.loadRange(ctx)
		g.addMessage("hjkl to move, Tab or 1-9 to target, [ ] to choose ammo, f to fire.")

		for g.state == StatePlaying {
			if ctx.Err() != nil {
				g.finish()
				return
			}
			g.draw()
			ev := g.screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				g.finish()
				return
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					g.finish()
					return
				}
				g.processAction(ctx, action)
			}
		}

		g.finish()
		if !g.showEndScreen() {
			return
		}
	}
}

// chooseClass uses the configured kit when there is one and otherwise
// asks.
func (g *Game) chooseClass() bool {
	if g.opts.Class != "" {
		if c, ok := assets.ClassByID(g.opts.Class); ok {
			g.class = c
			return true
		}
		g.logger.Warn("unknown kit, asking instead", "class", g.opts.Class)
		g.opts.Class = ""
	}
	return g.runClassSelect()
}

// finish records the session.
func (g *Game) finish() {
	g.runLog.Cleared = g.state == StateCleared
	g.logger.Info("session over",
		"class", g.runLog.Class,
		"turns", g.runLog.TurnsPlayed,
		"shots", g.runLog.Shots,
		"hits", g.runLog.Hits,
		"cleared", g.runLog.Cleared)
	saveRunLog(g.opts.DataHome, g.runLog, g.logger)
}

func (g *Game) draw() {
	g.renderer.CenterOn(g.playerPosition())
	g.renderer.DrawFrame(g.world, g.gmap, g.playerID)
	g.renderer.DrawHUD(g.hud())
}

// hud gathers what the HUD shows this frame.
func (g *Game) hud() ui.HUD {
	h := ui.HUD{Selected: g.selected, Preview: g.preview, Messages: g.messages}
	hp := g.world.Get(g.playerID, component.CHealth).(component.Health)
	h.Status = fmt.Sprintf("%s %s  HP %d/%d  Turn %d", g.class.Emoji, g.class.Name, hp.Current, hp.Max, g.runLog.TurnsPlayed)
	if st := g.statusWords(); st != "" {
		h.Status += "  " + st
	}
	if it, ok := system.ItemAt(g.world, g.playerID, g.slot); ok {
		h.Ammo = "Firing: " + stackName(it)
		if launcher, armed := actor.For(g.world, g.playerID).Launcher(); armed && it.LaunchedBy(launcher) {
			h.Ammo += " (" + launcher.Name() + ")"
		}
	}
	from := g.playerPosition()
	for _, id := range g.targets {
		p, _ := system.PositionOf(g.world, id)
		glyph := ""
		if c := g.world.Get(id, component.CRenderable); c != nil {
			glyph = c.(component.Renderable).Glyph
		}
		h.Targets = append(h.Targets, ui.Target{Glyph: glyph, Name: actor.Victim(g.world, id).Name(), Dist: gamemap.Distance(from, p)})
	}
	return h
}

// statusWords lists the player's active conditions.
func (g *Game) statusWords() string {
	names := []struct {
		kind component.EffectKind
		word string
	}{
		{component.EffectPoison, "Poisoned"},
		{component.EffectParalysis, "Paralysed"},
		{component.EffectSleep, "Asleep"},
		{component.EffectConfusion, "Confused"},
		{component.EffectSlow, "Slow"},
		{component.EffectFrenzy, "Berserk"},
		{component.EffectHeld, "Held"},
	}
	var out []string
	for _, n := range names {
		if system.HasEffect(g.world, g.playerID, n.kind) {
			out = append(out, n.word)
		}
	}
	return strings.Join(out, " ")
}

// processAction handles one player action and, when it took a turn,
// lets the monsters shoot back.
func (g *Game) processAction(ctx context.Context, action Action) {
	turnUsed := false

	if ai.Incapacitated(g.world, g.playerID) && acts(action) {
		g.addMessage("You are unable to act.")
		g.endTurn(ctx)
		g.refresh(ctx)
		return
	}

	switch action {
	case ActionWait:
		turnUsed = true
		g.addMessage("You wait.")

	case ActionPickup:
		turnUsed = g.tryPickup()

	case ActionFire:
		turnUsed = g.fire(ctx)

	case ActionNextTarget:
		g.cycleTarget(1)

	case ActionPrevTarget:
		g.cycleTarget(-1)

	case ActionNextAmmo:
		g.cycleAmmo(1)

	case ActionPrevAmmo:
		g.cycleAmmo(-1)

	case ActionWield:
		turnUsed = g.wield()

	default:
		if action >= ActionTarget1 && action <= ActionTarget9 {
			g.selectTarget(int(action - ActionTarget1))
			break
		}
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			result, other := system.TryMove(g.world, g.gmap, g.playerID, dx, dy)
			switch result {
			case system.MoveOK:
				turnUsed = true
			case system.MoveOccupied:
				g.addMessage(fmt.Sprintf("%s is in your way.", actor.Victim(g.world, other).Subject()))
			case system.MoveBlocked:
				// no message for walking into walls
			}
		}
	}

	if turnUsed {
		g.endTurn(ctx)
	}
	g.refresh(ctx)
}

// acts reports whether a takes game time rather than just changing what
// the player is looking at.
func acts(a Action) bool {
	switch a {
	case ActionNextTarget, ActionPrevTarget, ActionNextAmmo, ActionPrevAmmo, ActionNone, ActionQuit:
		return false
	}
	return a < ActionTarget1 || a > ActionTarget9
}

// fire shoots the quivered item at the selected target.
func (g *Game) fire(ctx context.Context) bool {
	target, ok := g.selectedTarget()
	if !ok {
		g.addMessage("No target selected.")
		return false
	}
	pos, _ := system.PositionOf(g.world, target)
	req := throw.Request{Attacker: actor.For(g.world, g.playerID), Slot: g.slot, Target: pos}
	out, err := g.engine.Throw(ctx, g.env, req, g.decider())
	if err != nil {
		if fault.IsRejection(err) {
			if fault.CodeOf(err) == fault.Declined {
				g.runLog.Declined++
			}
			g.addMessage(fault.Message(err))
			return false
		}
		g.logger.Error("throw failed", "err", err)
		g.addMessage("Something went wrong with that shot.")
		return false
	}
	g.record(out)
	return true
}

func (g *Game) decider() beam.Decider {
	if g.opts.AutoConfirm {
		return beam.Always
	}
	return g.console.AllyDecider()
}

// record folds a resolved shot into the run log.
func (g *Game) record(out throw.Outcome) {
	g.runLog.Shots++
	g.runLog.Hits += out.Hits()
	g.runLog.Missiles[out.Disposition.String()]++
	for _, imp := range out.Impacts {
		if imp.Killed && imp.Victim != g.playerID {
			g.runLog.Kills[imp.Name]++
		}
		if imp.Hit && !imp.Killed && imp.Victim != g.playerID && g.world.Alive(imp.Victim) &&
			actor.SameSide(g.world, g.playerID, imp.Victim) {
			g.runLog.AlliesHit++
		}
	}
}

// endTurn advances effects and clouds, then gives the monsters their shots.
func (g *Game) endTurn(ctx context.Context) {
	g.runLog.TurnsPlayed++
	before := g.playerHP()
	if dmg := system.GetPoisonDamage(g.world, g.playerID); dmg > 0 {
		g.addMessage(fmt.Sprintf("Poison burns through you! (%d damage)", dmg))
		g.runLog.CauseOfDeath = "poison"
	}
	system.TickEffects(g.world)
	g.gmap.TickClouds()
	g.reapDead()

	mid := g.playerHP()
	for _, r := range ai.ProcessArchers(ctx, g.engine, g.env, []ecs.EntityID{g.playerID}) {
		switch {
		case r.Err != nil && !fault.IsRejection(r.Err):
			g.logger.Error("monster shot failed", "monster", uint64(r.Monster), "err", r.Err)
		case r.Fired && g.playerHP() < mid:
			if g.world.Alive(r.Monster) {
				g.runLog.CauseOfDeath = actor.For(g.world, r.Monster).Name()
			}
			mid = g.playerHP()
		}
	}
	if taken := before - g.playerHP(); taken > 0 {
		g.runLog.DamageTaken += taken
	}
	g.checkPlayerDead()
	g.checkCleared()
}

// reapDead removes monsters that effects finished off.
func (g *Game) reapDead() {
	for _, id := range g.world.Query(component.CCreature, component.CHealth) {
		if id == g.playerID {
			continue
		}
		if g.world.Get(id, component.CHealth).(component.Health).Current > 0 {
			continue
		}
		v := actor.Victim(g.world, id)
		g.addMessage(v.Subject() + " " + v.Verb("die") + ".")
		if v.Side() == component.SideHostile {
			g.runLog.Kills[v.Info().Name]++
		}
		g.world.DestroyEntity(id)
	}
}

func (g *Game) playerHP() int {
	c := g.world.Get(g.playerID, component.CHealth)
	if c == nil {
		return 0
	}
	return c.(component.Health).Current
}

func (g *Game) checkPlayerDead() {
	if !g.world.Alive(g.playerID) || g.playerHP() <= 0 {
		if g.state != StateDead {
			g.addMessage("You die...")
		}
		g.state = StateDead
	}
}

func (g *Game) checkCleared() {
	if g.state != StatePlaying {
		return
	}
	for _, id := range g.world.Query(component.CCreature) {
		if id != g.playerID && actor.Victim(g.world, id).Side() == component.SideHostile {
			return
		}
	}
	g.state = StateCleared
	g.addMessage("The range is clear!")
}

// refresh recomputes everything derived from the world after a change.
func (g *Game) refresh(ctx context.Context) {
	if g.world == nil || !g.world.Alive(g.playerID) {
		return
	}
	g.refreshTargets()
	g.ensureAmmo()
	g.updatePreview(ctx)
}

// refreshTargets lists visible hostiles nearest first, keeping the current
// selection when it is still in sight. First sightings print lore.
func (g *Game) refreshTargets() {
	prev := ecs.NilEntity
	if t, ok := g.selectedTarget(); ok {
		prev = t
	}
	from := g.playerPosition()
	var list []ecs.EntityID
	for _, id := range g.world.Query(component.CCreature, component.CPosition) {
		if id == g.playerID {
			continue
		}
		p, _ := system.PositionOf(g.world, id)
		if !system.CanSee(g.world, g.gmap, g.playerID, p) {
			continue
		}
		v := actor.Victim(g.world, id)
		if name := v.Info().Name; !g.seen[name] {
			g.seen[name] = true
			if lore, ok := assets.SpeciesLore[name]; ok {
				g.addMessage(lore)
			}
		}
		if v.Side() == component.SideHostile {
			list = append(list, id)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		pi, _ := system.PositionOf(g.world, list[i])
		pj, _ := system.PositionOf(g.world, list[j])
		return gamemap.Distance(from, pi) < gamemap.Distance(from, pj)
	})
	if len(list) > 9 {
		list = list[:9]
	}
	g.targets = list
	g.selected = -1
	for i, id := range list {
		if id == prev {
			g.selected = i
		}
	}
	if g.selected < 0 && len(list) > 0 {
		g.selected = 0
	}
}

func (g *Game) selectedTarget() (ecs.EntityID, bool) {
	if g.selected < 0 || g.selected >= len(g.targets) || !g.world.Alive(g.targets[g.selected]) {
		return ecs.NilEntity, false
	}
	return g.targets[g.selected], true
}

func (g *Game) selectTarget(i int) {
	if i < len(g.targets) {
		g.selected = i
	}
}

func (g *Game) cycleTarget(step int) {
	if len(g.targets) == 0 {
		return
	}
	g.selected = (g.selected + step + len(g.targets)) % len(g.targets)
}

// updatePreview shows what the tracer would find for the current aim.
func (g *Game) updatePreview(ctx context.Context) {
	target, ok := g.selectedTarget()
	if !ok {
		g.preview = ""
		return
	}
	pos, _ := system.PositionOf(g.world, target)
	req := throw.Request{Attacker: actor.For(g.world, g.playerID), Slot: g.slot, Target: pos}
	stats, err := g.engine.Preview(ctx, g.env, req)
	if err != nil {
		g.preview = fault.Message(err)
		return
	}
	g.preview = "Line of fire: " + plural(stats.FoeCount, "foe", "foes")
	if stats.FriendCount > 0 {
		g.preview += ", " + plural(stats.FriendCount, "ally", "allies") + " in the way!"
	}
}

// ammoSlots lists the slots the player can fire from: everything carried
// except the wielded item.
func (g *Game) ammoSlots() []int {
	c := g.world.Get(g.playerID, component.CInventory)
	if c == nil {
		return nil
	}
	inv := c.(component.Inventory)
	var out []int
	for i, it := range inv.Items {
		if !it.IsEmpty() && i != inv.Wielded {
			out = append(out, i)
		}
	}
	return out
}

// ensureAmmo keeps the quiver pointing at something that can be fired,
// preferring ammunition for the wielded launcher.
func (g *Game) ensureAmmo() {
	slots := g.ammoSlots()
	for _, s := range slots {
		if s == g.slot {
			return
		}
	}
	if s, _, ok := ai.PickMissile(g.world, actor.For(g.world, g.playerID)); ok {
		g.slot = s
		return
	}
	g.slot = -1
	if len(slots) > 0 {
		g.slot = slots[0]
	}
}

func (g *Game) cycleAmmo(step int) {
	slots := g.ammoSlots()
	if len(slots) == 0 {
		g.addMessage("You have nothing to fire.")
		return
	}
	at := 0
	for i, s := range slots {
		if s == g.slot {
			at = i
		}
	}
	g.slot = slots[(at+step+len(slots))%len(slots)]
	it, _ := system.ItemAt(g.world, g.playerID, g.slot)
	g.addMessage("Firing " + stackName(it) + ".")
}

// wield swaps the quivered weapon into the player's hands.
func (g *Game) wield() bool {
	it, ok := system.ItemAt(g.world, g.playerID, g.slot)
	if !ok || it.Class != item.ClassWeapon {
		g.addMessage("You can only wield a weapon.")
		return false
	}
	inv := g.world.Get(g.playerID, component.CInventory).(component.Inventory)
	if cur, armed := inv.Weapon(); armed && cur.Cursed {
		g.addMessage(fmt.Sprintf("The %s is stuck to your hand!", cur.Name()))
		return false
	}
	inv = inv.CloneComponent().(component.Inventory)
	inv.Wielded = g.slot
	g.world.Add(g.playerID, inv)
	g.addMessage("You wield " + item.Article(it.Name()) + ".")
	g.slot = -1
	g.ensureAmmo()
	return true
}

// tryPickup stows every stack on the player's tile.
func (g *Game) tryPickup() bool {
	ids := system.FloorItemsAt(g.world, g.playerPosition())
	if len(ids) == 0 {
		g.addMessage("There is nothing here to pick up.")
		return false
	}
	took := false
	for _, id := range ids {
		fi := g.world.Get(id, component.CFloorItem).(component.FloorItem)
		if !system.Stow(g.world, g.playerID, fi.Item) {
			g.addMessage("Your pack is full.")
			break
		}
		g.world.DestroyEntity(id)
		g.addMessage("You pick up " + stackName(fi.Item) + ".")
		took = true
	}
	return took
}

func (g *Game) playerPosition() gamemap.Point {
	p, _ := system.PositionOf(g.world, g.playerID)
	return p
}

func (g *Game) addMessage(msg string) {
	if msg == "" {
		return
	}
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// stackName describes a stack: "an arrow", "8 darts", "12 darts of poison".
func stackName(it item.Item) string {
	name := it.Name()
	if it.Quantity == 1 {
		return item.Article(name)
	}
	noun, brand, branded := strings.Cut(name, " of ")
	if branded {
		return fmt.Sprintf("%d %ss of %s", it.Quantity, noun, brand)
	}
	return fmt.Sprintf("%d %ss", it.Quantity, noun)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
