package octigrid

import (
	"time"

	"github.com/google/uuid"

	"github.com/octiline/octigrid/basegraph"
	"github.com/octiline/octigrid/combgraph"
	"github.com/octiline/octigrid/config"
	"github.com/octiline/octigrid/decode"
	"github.com/octiline/octigrid/ilp"
	"github.com/octiline/octigrid/obslog"
	"github.com/octiline/octigrid/octierr"
	"github.com/octiline/octigrid/solver"
	"github.com/octiline/octigrid/solver/badgercache"
	"github.com/octiline/octigrid/warmstart"
)

// Optimize builds and (unless cfg.NoSolve is set) solves the
// octilinear grid-embedding MILP for cg over bg, writing the decoded
// drawing back into cg's comb edges/nodes and returning the run's
// {score, cols, rows, time, optimal} statistics (spec.md §6).
//
// prior, if non-nil, is a heuristic drawing used to seed the solver's
// warm start (spec.md §4.D); it may be nil.
func Optimize(cfg config.Config, bg *basegraph.BaseGrid, cg *combgraph.Graph, prior *warmstart.Drawing, log *obslog.Logger) (Stats, error) {
	if log == nil {
		log = obslog.NewNop()
	}
	runID := uuid.NewString()
	log = log.With("runID", runID)

	if err := cfg.Validate(); err != nil {
		return Stats{RunID: runID}, err
	}
	if v := firstStarvedNode(cg); v != nil {
		return Stats{RunID: runID}, octierr.NewInfeasible(
			"comb node "+v.ID+" has zero candidate sinks under the configured cutoff",
			octierr.ErrNoCandidates)
	}

	fac, err := solver.Open(cfg.SolverStr)
	if err != nil {
		return Stats{RunID: runID}, err
	}

	var starter map[string]float64
	if prior != nil {
		starter, err = seedFromPrior(bg, cg, *prior)
		if err != nil {
			return Stats{RunID: runID}, err
		}
	}

	log.Phase("model build starting", "solver", cfg.SolverStr)
	if err := ilp.Build(fac, bg, cg, cfg.GeoPensMap, log); err != nil {
		return Stats{}, err
	}

	if starter == nil && cfg.CacheDir != "" {
		starter, err = seedFromCache(fac, cfg)
		if err != nil {
			return Stats{}, err
		}
	}
	if len(starter) > 0 {
		if err := fac.SetStarter(starter); err != nil {
			return Stats{}, err
		}
	}

	fac.SetTimeLim(cfg.TimeLimSeconds)
	fac.SetCacheDir(cfg.CacheDir)
	fac.SetCacheThreshold(cfg.CacheThreshold)
	fac.SetNumThreads(cfg.NumThreads)

	if cfg.Path != "" {
		if err := fac.WriteMPS(cfg.Path + ".mps"); err != nil {
			return Stats{}, octierr.NewSolverIO(cfg.Path+".mps", err)
		}
		if len(starter) > 0 {
			if err := fac.WriteMST(cfg.Path+".mst", starter); err != nil {
				return Stats{}, octierr.NewSolverIO(cfg.Path+".mst", err)
			}
		}
	}

	if cfg.NoSolve {
		log.Phase("solve skipped", "noSolve", true, "cols", fac.NumCols(), "rows", fac.NumRows())

		return Stats{RunID: runID, Cols: fac.NumCols(), Rows: fac.NumRows()}, nil
	}

	start := time.Now()
	status, err := fac.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return Stats{}, err
	}
	log.Timed("solve finished", start, "status", status)

	if status == solver.Infeasible {
		return Stats{}, octierr.NewInfeasible("solver returned infeasible", octierr.ErrInfeasible)
	}

	if err := decode.Decode(fac, bg, cg, log); err != nil {
		return Stats{}, err
	}

	score, err := fac.GetObjVal()
	if err != nil {
		return Stats{}, err
	}

	if cfg.CacheDir != "" {
		if err := storeSolvedStarter(fac, cfg, score); err != nil {
			log.Error("cache store failed", err)
		}
	}

	return Stats{
		RunID:   runID,
		Score:   score,
		Cols:    fac.NumCols(),
		Rows:    fac.NumRows(),
		Time:    elapsed,
		Optimal: status == solver.Optimal,
	}, nil
}

// firstStarvedNode returns the first positive-degree comb node with no
// candidate sinks, the precondition failure spec.md §7 treats as
// Infeasible before the solver ever runs (the "unique station"
// constraint would otherwise silently become 0 = 1).
func firstStarvedNode(cg *combgraph.Graph) *combgraph.CombNode {
	for _, v := range cg.Nodes() {
		if v.Degree() > 0 && len(v.CandidateSinks()) == 0 {
			return v
		}
	}

	return nil
}

// seedFromPrior derives the starter map from a warm-start drawing
// (spec.md §4.D). It settles the drawing's routed paths onto bg so
// Extract can see which crossing partners the heuristic's diagonal
// choices rule out, then resets the grid before the ILP model is built
// from it (spec 3 Lifecycle: the grid is reset between the warm-start
// pass and the ILP build).
func seedFromPrior(bg *basegraph.BaseGrid, cg *combgraph.Graph, prior warmstart.Drawing) (map[string]float64, error) {
	hints := warmstart.Extract(bg, cg.Nodes(), prior)
	bg.Reset()

	return ilp.Starter(cg, hints), nil
}

// seedFromCache derives the starter map from whatever the on-disk cache
// has for this exact model shape, once the model has been built and its
// column/row names are known.
func seedFromCache(fac solver.Facade, cfg config.Config) (map[string]float64, error) {
	cache, err := badgercache.Open(cfg.CacheDir, cfg.CacheThreshold)
	if err != nil {
		return nil, octierr.NewSolverIO(cfg.CacheDir, err)
	}
	defer cache.Close()

	key := solver.CacheKey(fac.ColNames(), fac.RowNames())
	starter, ok := cache.Load(key)
	if !ok {
		return nil, nil
	}

	return starter, nil
}

// storeSolvedStarter snapshots every column's solved value and offers
// it to the cache under this model's shape-derived key.
func storeSolvedStarter(fac solver.Facade, cfg config.Config, score float64) error {
	cache, err := badgercache.Open(cfg.CacheDir, cfg.CacheThreshold)
	if err != nil {
		return err
	}
	defer cache.Close()

	names := fac.ColNames()
	values := make(map[string]float64, len(names))
	for _, name := range names {
		col, ok := fac.GetVarByName(name)
		if !ok {
			continue
		}
		v, err := fac.GetVarVal(col)
		if err != nil {
			return err
		}
		values[name] = v
	}

	key := solver.CacheKey(fac.ColNames(), fac.RowNames())

	return cache.Store(key, values, score)
}
