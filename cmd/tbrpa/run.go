// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tbrpa/matrix"
	"github.com/katalvlaran/tbrpa/rpa"
	"github.com/katalvlaran/tbrpa/store"
)

func (a *app) runCmd() *cobra.Command {
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the susceptibility sweep of a run file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, showMetrics)
		},
	}
	cmd.Flags().Int("threads", 0, "worker count (0 reads engine.threads_file)")
	cmd.Flags().String("store", "", "pebble directory for results (overrides store_dir)")
	cmd.Flags().Float64("rescale", 0, "rescale target in (0,1); 0 keeps the run file value")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print engine counters when done")
	_ = a.v.BindPFlag("engine.threads", cmd.Flags().Lookup("threads"))
	_ = a.v.BindPFlag("store_dir", cmd.Flags().Lookup("store"))
	_ = a.v.BindPFlag("engine.rescale", cmd.Flags().Lookup("rescale"))

	return cmd
}

func (a *app) run(ctx context.Context, showMetrics bool) error {
	f, err := a.load()
	if err != nil {
		return err
	}
	log := a.logger(f)
	reg := prometheus.NewRegistry()
	if err := rpa.RegisterMetrics(reg); err != nil {
		return err
	}

	model, err := f.BuildModel(f.Engine.EigenOptions()...)
	if err != nil {
		return err
	}
	sweep, err := f.BuildSweep()
	if err != nil {
		return err
	}
	threads, err := f.Threads()
	if err != nil {
		return err
	}
	opts, err := f.Options(threads, log)
	if err != nil {
		return err
	}

	started := time.Now()
	eng := rpa.NewEngine(opts...)
	results, err := eng.Run(ctx, model, sweep)
	if err != nil {
		return err
	}

	if f.StoreDir != "" {
		db, err := store.Open(f.StoreDir)
		if err != nil {
			return err
		}
		meta := store.RunMeta{
			Model:    model.Name,
			Orbitals: model.NOrbitals(),
			Tuples:   len(results),
			Threads:  threads,
			Rescaled: f.Engine.Rescale > 0,
			Started:  started.UTC(),
			Finished: time.Now().UTC(),
		}
		if err := db.PutAll(eng.RunID(), results); err != nil {
			_ = db.Close()
			return err
		}
		if err := db.PutRun(eng.RunID(), meta); err != nil {
			_ = db.Close()
			return err
		}
		if err := db.Close(); err != nil {
			return err
		}
		log.Info("results stored", "run_id", eng.RunID(), "dir", f.StoreDir)
	}

	n := model.NOrbitals()
	fmt.Fprintf(a.out, "run %s: %d tuples, %d orbitals\n", eng.RunID(), len(results), n)
	fmt.Fprintf(a.out, "%10s %9s %9s  %-22s %14s %14s %14s\n", "T", "mu", "omega", "q", "chi0", "chi_s", "chi_c")
	for _, p := range results {
		fmt.Fprintf(a.out, "%10.2f %9.4f %9.4f  %-22s %14.6g %14.6g %14.6g\n",
			p.Temperature, p.ChemicalPotential, p.Frequency, fmt.Sprintf("(%.3f,%.3f,%.3f)", p.Q[0], p.Q[1], p.Q[2]),
			real(physical(p.X0, n)), real(physical(p.Xs, n)), real(physical(p.Xc, n)))
	}
	if showMetrics {
		return printMetrics(a, reg)
	}

	return nil
}

// physical contracts χ[(l1,l1),(l3,l3)] over l1 and l3.
func physical(m *matrix.Dense, n int) complex128 {
	var sum complex128
	for l1 := 0; l1 < n; l1++ {
		for l3 := 0; l3 < n; l3++ {
			sum += m.Get(rpa.GetIndex(l1, l1, n), rpa.GetIndex(l3, l3, n))
		}
	}

	return sum
}

func printMetrics(a *app, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				label += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s%s %g", fam.GetName(), label, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s_count%s %d", fam.GetName(), label, h.GetSampleCount()))
				lines = append(lines, fmt.Sprintf("%s_sum%s %g", fam.GetName(), label, h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}

	return nil
}
