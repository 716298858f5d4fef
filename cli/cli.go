package cli

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/contribsys/binheap"
	"github.com/contribsys/binheap/util"
)

type CmdOptions struct {
	LogLevel    string
	ProfilePath string
	Ops         int64
	Seed        int64
}

func ParseArguments() CmdOptions {
	defaults := CmdOptions{"info", "", 0, 0}

	log.SetFlags(0)
	log.Println(binheap.Name, binheap.Version)
	log.Println(binheap.Licensing)

	flag.Usage = help
	flag.StringVar(&defaults.LogLevel, "l", "info", "Logging level (warn, info, debug)")
	flag.StringVar(&defaults.ProfilePath, "c", "", "Workload profile (TOML)")
	flag.Int64Var(&defaults.Ops, "n", 0, "Override the profile's operation count")
	flag.Int64Var(&defaults.Seed, "seed", 0, "Override the profile's RNG seed")
	helpPtr := flag.Bool("help", false, "You're looking at it")
	help2Ptr := flag.Bool("h", false, "You're looking at it")
	versionPtr := flag.Bool("v", false, "Show version")
	flag.Parse()

	if *helpPtr || *help2Ptr {
		help()
		os.Exit(0)
	}

	if *versionPtr {
		os.Exit(0)
	}

	return defaults
}

func help() {
	log.Println("-c [file]\tWorkload profile in TOML format")
	log.Println("-n [ops]\tOverride the profile's operation count")
	log.Println("-seed [n]\tOverride the profile's RNG seed")
	log.Println("-l [level]\tSet logging level (warn, info, debug), default: info")
	log.Println("-v\t\tShow version")
	log.Println("-h\t\tThis help screen")
}

// HandleSignals blocks on process signals. SIGTERM and SIGINT invoke stop;
// SIGTTIN dumps all goroutine stacks and keeps running.
func HandleSignals(stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, os.Interrupt, syscall.SIGTTIN)

	for {
		sig := <-signals
		util.Debugf("Received signal %v", sig)
		if sig == syscall.SIGTTIN {
			util.DumpProcessTrace()
			continue
		}
		stop()
		return
	}
}
