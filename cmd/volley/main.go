// volley fires the same shot many times on an empty lane and reports how
// often it hits, kills and comes back. Build:
//
//	go build -o volley ./cmd/volley
//
// Usage:
//
//	./volley [--trials 1000] [--seed 42] [--scenario returning-javelin]
//
// Defaults come from the MISSILE_* environment; flags win. Each run's
// summary is appended to volleys.jsonl in the data directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"missile-engine/assets"
	"missile-engine/internal/actor"
	"missile-engine/internal/beam"
	"missile-engine/internal/component"
	"missile-engine/internal/config"
	"missile-engine/internal/ecs"
	"missile-engine/internal/event"
	"missile-engine/internal/factory"
	"missile-engine/internal/fault"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/logging"
	"missile-engine/internal/path"
	"missile-engine/internal/rng"
	"missile-engine/internal/telemetry"
	"missile-engine/internal/throw"

	"github.com/google/uuid"
)

// RecordFile is where run summaries accumulate.
const RecordFile = "volleys.jsonl"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	trials := flag.Int("trials", cfg.Trials, "shots per scenario")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 picks one)")
	only := flag.String("scenario", "", "run only the named scenario")
	flag.Parse()

	if *trials < 1 {
		config.Exitf("--trials must be positive, got %d", *trials)
	}
	todo := scenarios
	if *only != "" {
		sc, ok := scenarioByName(*only)
		if !ok {
			config.Exitf("unknown scenario %q", *only)
		}
		todo = []scenario{sc}
	}
	if *seed == 0 {
		*seed = rng.NewSeed()
	}

	logger := logging.New(os.Stderr, cfg.Level())
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.Settings{Enabled: cfg.OTelEnabled, Endpoint: cfg.OTelEndpoint})
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	engine := throw.New(path.Grid{}, logger, telemetry.Tracer())
	run := Run{ID: uuid.New(), Seed: *seed, Trials: *trials}
	r := rng.New(*seed)
	for _, sc := range todo {
		tally, err := simulate(ctx, engine, r, sc, *trials)
		if err != nil {
			config.Exitf("%s: %v", sc.Name, err)
		}
		run.Results = append(run.Results, tally)
	}
	if err := report(os.Stdout, run); err != nil {
		config.Exitf("report: %v", err)
	}
	logging.AppendRecord(cfg.DataHome, RecordFile, run, logger)
}

// scenario is one repeated shot: a kit, the slot to fire from and the
// species standing Dist tiles down the lane.
type scenario struct {
	Name   string
	Class  string
	Slot   int
	Target string
	Dist   int
}

var scenarios = []scenario{
	{Name: "longbow", Class: "ranger", Slot: 1, Target: "orc archer", Dist: 5},
	{Name: "flame-arrows", Class: "ranger", Slot: 2, Target: "frost giant", Dist: 6},
	{Name: "returning-spear", Class: "ranger", Slot: 3, Target: "goblin", Dist: 4},
	{Name: "sling-stones", Class: "slinger", Slot: 1, Target: "hill giant", Dist: 6},
	{Name: "poison-darts", Class: "skirmisher", Slot: 1, Target: "kobold", Dist: 3},
	{Name: "net", Class: "skirmisher", Slot: 2, Target: "centaur", Dist: 3},
	{Name: "returning-javelin", Class: "skirmisher", Slot: 3, Target: "goblin", Dist: 4},
}

func scenarioByName(name string) (scenario, bool) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return scenario{}, false
}

// Tally is what one scenario did over all its trials.
type Tally struct {
	Scenario    string         `json:"scenario"`
	Trials      int            `json:"trials"`
	Hits        int            `json:"hits"`
	Kills       int            `json:"kills"`
	Damage      int            `json:"damage"`
	Rejected    int            `json:"rejected"`
	Disposition map[string]int `json:"disposition"`
}

// Rate is n as a share of the trials.
func (t Tally) Rate(n int) float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(n) / float64(t.Trials)
}

// Run is one invocation's record.
type Run struct {
	ID      uuid.UUID `json:"id"`
	Seed    int64     `json:"seed"`
	Trials  int       `json:"trials"`
	Results []Tally   `json:"results"`
}

// lane builds a fresh world for one trial: the shooter at (2,2) and the
// target Dist tiles east of it.
func lane(sc scenario, r rng.Source) (*beam.Env, ecs.EntityID, gamemap.Point, error) {
	class, ok := assets.ClassByID(sc.Class)
	if !ok {
		return nil, ecs.NilEntity, gamemap.Point{}, fmt.Errorf("unknown kit %q", sc.Class)
	}
	def, ok := assets.Species[sc.Target]
	if !ok {
		return nil, ecs.NilEntity, gamemap.Point{}, fmt.Errorf("unknown species %q", sc.Target)
	}
	w := ecs.NewWorld()
	gmap := gamemap.New(sc.Dist+8, 5)
	gmap.Carve(gamemap.Rect{X1: 1, Y1: 1, X2: sc.Dist + 6, Y2: 3}, gamemap.MakeFloor())
	shooter := factory.NewPlayer(w, gamemap.Point{X: 2, Y: 2}, class)
	target := gamemap.Point{X: 2 + sc.Dist, Y: 2}
	factory.NewMonster(w, def, target, component.SideHostile)
	env := &beam.Env{World: w, Map: gmap, RNG: r, Publisher: event.NopPublisher(), Observer: shooter}
	return env, shooter, target, nil
}

// simulate fires sc trials times, each on a fresh lane.
func simulate(ctx context.Context, engine *throw.Engine, r rng.Source, sc scenario, trials int) (Tally, error) {
	t := Tally{Scenario: sc.Name, Trials: trials, Disposition: map[string]int{}}
	for range trials {
		env, shooter, target, err := lane(sc, r)
		if err != nil {
			return t, err
		}
		req := throw.Request{Attacker: actor.For(env.World, shooter), Slot: sc.Slot, Target: target}
		out, err := engine.Throw(ctx, env, req, beam.Always)
		if err != nil {
			if fault.IsRejection(err) {
				t.Rejected++
				continue
			}
			return t, err
		}
		t.Hits += out.Hits()
		for _, imp := range out.Impacts {
			t.Damage += imp.Damage
			if imp.Killed {
				t.Kills++
			}
		}
		t.Disposition[out.Disposition.String()]++
	}
	return t, nil
}

func report(w io.Writer, run Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "seed %d, %d shots each\n", run.Seed, run.Trials)
	fmt.Fprintln(tw, "scenario\thit\tkill\tavg dmg\treturned\tdestroyed\trejected")
	for _, t := range run.Results {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%.2f\t%.1f%%\t%.1f%%\t%d\n",
			t.Scenario,
			100*t.Rate(t.Hits),
			100*t.Rate(t.Kills),
			t.Rate(t.Damage),
			100*t.Rate(t.Disposition["returned"]),
			100*t.Rate(t.Disposition["destroyed"]),
			t.Rejected)
	}
	return tw.Flush()
}
