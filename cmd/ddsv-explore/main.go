// Command ddsv-explore builds each bundled model, renders its per-process
// control-flow graphs, composes the joint state space, analyzes deadlocks,
// renders the composite LTS, and writes a summary report — all under a
// res/ directory, mirroring the original DDSV driver's per-model main().
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/comalice/ddsv"
	"github.com/comalice/ddsv/models"
)

func main() {
	outDir := "res"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	run("cas", func() {
		processes, initLocs, init := models.BuildCAS()
		explore(outDir, "cas", processes, initLocs, init)
	})
	run("inc2", func() {
		processes, initLocs, init := models.BuildInc2()
		explore(outDir, "inc2", processes, initLocs, init)
	})
	run("mutex2", func() {
		processes, initLocs, init := models.BuildMutex2()
		explore(outDir, "mutex2", processes, initLocs, init)
	})
	run("lonewriter", func() {
		processes, initLocs, init := models.BuildLoneWriter()
		explore(outDir, "lonewriter", processes, initLocs, init)
	})
	run("empty", func() {
		processes, initLocs, init := models.BuildEmpty()
		explore(outDir, "empty", processes, initLocs, init)
	})
	run("selfloop", func() {
		processes, initLocs, init := models.BuildSelfLoop()
		explore(outDir, "selfloop", processes, initLocs, init)
	})

	fmt.Println("Exploration complete; results written under", outDir)
}

func run(name string, f func()) {
	fmt.Printf("\n--- Model %q ---\n", name)
	f()
}

// explore is generic over the model's shared-variable type so a single
// driver body serves every bundled model.
func explore[T ddsv.Shared](outDir, name string, processes []*ddsv.Process[T], initLocs []ddsv.Location, init T) {
	for _, p := range processes {
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.dot", name, p.Label))
		if err := p.Visualize(path); err != nil {
			panic(err)
		}
	}

	lts, err := ddsv.Compose(processes, initLocs, init)
	if lts == nil {
		panic(fmt.Errorf("compose %q: %w", name, err))
	}
	if err != nil {
		fmt.Printf("compose %q: %v (partial result kept)\n", name, err)
	}

	ltsPath := filepath.Join(outDir, name+".dot")
	if err := lts.Visualize(ltsPath, processes); err != nil {
		panic(err)
	}

	fmt.Printf("states=%d transitions=%d deadlocks=%d truncated=%v\n",
		lts.NumStates(), len(lts.Transitions()), len(lts.Deadlocks()), lts.Truncated())

	persister, err := ddsv.NewYAMLPersister(outDir)
	if err != nil {
		panic(err)
	}
	report := ddsv.NewReport(name, lts, time.Now())
	if err := persister.Save(name, report); err != nil {
		panic(err)
	}
}
