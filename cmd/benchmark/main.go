package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/turnsignal/tr"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}

	iters   = flag.Int("iters", 100, "writes to time per graph shape")
	profile = flag.String("cpuprofile", "default.pgo", "write a CPU profile to this file, empty to disable")
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)
	benchmarkPropagate(true)
	benchmarkFanOut(true)
}

func addOne(oldValue int) int {
	return oldValue + 1
}

// benchmarkPropagate times a write to one source feeding w chains of h
// derived cells, each chain ending in an observer.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("tr: propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			src := tr.New(1)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = tr.Compute1(addOne)(last)
				}
				last.Observe(func(int) {})
			}

			for i := 0; i < *iters; i++ {
				start := time.Now()
				src.Update(addOne)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
			src.Dispose()
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkFanOut times a write to a source with w listeners bound to it.
func benchmarkFanOut(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("tr: fan out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: *iters})

		src := tr.New(0)
		received := 0
		for i := 0; i < w; i++ {
			src.Bind(tr.Listen(func(int) { received++ }))
		}

		for i := 0; i < *iters; i++ {
			start := time.Now()
			src.Update(addOne)
			tach.AddTime(time.Since(start))
		}
		if expected := w * (*iters + 1); received != expected {
			log.Fatalf("fan out %d: expected %d notifications, got %d", w, expected, received)
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("listeners: %d", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
