package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"

	"github.com/rawbytedev/nonempty"
)

// Options controls the profiling workload.
type Options struct {
	Iterations int
	Elements   int
	MemProfile string
	PprofAddr  string
	Linger     time.Duration
}

func parseOptions() Options {
	var o Options
	flag.IntVar(&o.Iterations, "n", 10000, "workload iterations")
	flag.IntVar(&o.Elements, "elems", 6, "elements pushed per iteration (inline capacity is 8)")
	flag.StringVar(&o.MemProfile, "memprofile", "mem.prof", "heap profile output path, empty to skip")
	flag.StringVar(&o.PprofAddr, "pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.DurationVar(&o.Linger, "linger", 0, "keep the pprof server up this long after the run")
	flag.Parse()
	return o
}

func main() {
	opts := parseOptions()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	nonempty.SetLogger(log.Named("nonempty"))

	if opts.PprofAddr != "" {
		go func() {
			log.Info("pprof server stopped", zap.Error(http.ListenAndServe(opts.PprofAddr, nil)))
		}()
	}
	runtime.MemProfileRate = 1

	start := time.Now()
	var total int
	for i := 0; i < opts.Iterations; i++ {
		total += workload(opts.Elements)
	}
	log.Info("workload done",
		zap.Int("iterations", opts.Iterations),
		zap.Int("elements", opts.Elements),
		zap.Int("checksum", total),
		zap.Duration("elapsed", time.Since(start)))

	// one refused pop so the debug log shows up in the output
	single := nonempty.New(0)
	single.TryPop()

	if opts.MemProfile != "" {
		f, err := os.Create(opts.MemProfile)
		if err != nil {
			log.Fatal("create heap profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("write heap profile", zap.Error(err))
		}
	}
	time.Sleep(opts.Linger)
}

// workload pushes n elements into a Vec and a SmallVec, then pops them back
// down to one element through the views.
func workload(n int) int {
	v := nonempty.WithCapacity(0, n+1)
	sv := nonempty.NewSmallVec[int, [8]int](0)
	for j := 1; j <= n; j++ {
		v.Push(j)
		sv.Push(j)
	}
	sum := v.Full().Last() + sv.Full().Last()
	if tail, err := v.From(1); err == nil {
		sum += tail.First()
	}
	for v.TryPop().IsSome() {
	}
	for sv.TryPop().IsSome() {
	}
	return sum + v.First() + sv.First()
}
