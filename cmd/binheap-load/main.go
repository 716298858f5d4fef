package main

import (
	"os"

	"github.com/contribsys/binheap/cli"
	"github.com/contribsys/binheap/util"
	"github.com/contribsys/binheap/workload"
)

func main() {
	opts := cli.ParseArguments()
	util.InitLogger(opts.LogLevel)

	cfg := workload.DefaultConfig()
	if opts.ProfilePath != "" {
		ok, err := util.FileExists(opts.ProfilePath)
		if err != nil || !ok {
			util.Fatalf("Cannot read workload profile %s", opts.ProfilePath)
		}
		cfg, err = workload.LoadConfig(opts.ProfilePath)
		if err != nil {
			util.Fatalf("%v", err)
		}
	}
	if opts.Ops > 0 {
		cfg.Ops = opts.Ops
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	runner := workload.NewRunner(cfg)
	go cli.HandleSignals(runner.Stop)

	report, err := runner.Run()
	if err != nil {
		util.Errorf("Workload failed: %v", err)
		os.Exit(1)
	}

	util.With("run", report.RunID).Infof(
		"Processed %d ops in %.2f seconds, rate: %.0f ops/s",
		report.Ops, report.Duration.Seconds(), report.Rate)
	util.Infof("Final heap: %d elements in %d trees, memory: %s",
		report.FinalSize, report.Trees, report.Memory)
	for name, count := range runner.Stats() {
		util.Debugf("%s: %d", name, count)
	}
}
