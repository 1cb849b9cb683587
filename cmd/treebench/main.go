// treebench builds, traverses and tears down a fixed-shape tree under two
// allocation strategies and reports timings and allocator traffic side by
// side:
//
//  1. Owned: ordinary per-node ownership, reclaimed by the garbage
//     collector node by node.
//  2. Region: every node and children sequence carved from a single
//     region, released in one step.
//
// Both strategies must produce identical node counts and traversal
// checksums; a mismatch is a fatal internal error. Go has no
// deterministic destruction, so the release phase drops the tree and runs
// an explicit GC cycle for both strategies to make teardown comparable.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pkeresztes/region"
	"github.com/pkeresztes/region/internal/logging"
	"github.com/pkeresztes/region/tree"
)

type report struct {
	build    time.Duration
	traverse time.Duration
	release  time.Duration
	checksum int
	nodes    int
	stats    region.Stats
}

func (r report) total() time.Duration {
	return r.build + r.traverse + r.release
}

func runRegion(children, depth int) report {
	var st region.Stats
	rg := region.NewRegion(region.WithStats(&st))

	t0 := time.Now()
	builder := tree.NewBuilder(rg)
	root, err := builder.Build(children, depth)
	if err != nil {
		// Build only issues small-block requests; this cannot happen for
		// a sane shape and there is no degraded mode.
		rg.Release()
		panic(err)
	}
	build := time.Since(t0)

	t1 := time.Now()
	checksum := tree.Checksum(root)
	traverse := time.Since(t1)

	nodes := builder.NodeCount()

	t2 := time.Now()
	root = nil
	_ = root
	rg.Release()
	runtime.GC()
	release := time.Since(t2)

	return report{
		build:    build,
		traverse: traverse,
		release:  release,
		checksum: checksum,
		nodes:    nodes,
		stats:    st,
	}
}

func runOwned(children, depth int) report {
	var st region.Stats

	t0 := time.Now()
	builder := tree.NewOwnedBuilder(&st)
	root := builder.Build(children, depth)
	build := time.Since(t0)

	t1 := time.Now()
	checksum := tree.Checksum(root)
	traverse := time.Since(t1)

	nodes := builder.NodeCount()

	t2 := time.Now()
	root = nil
	_ = root
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	runtime.GC()
	runtime.ReadMemStats(&after)
	st.Frees = int64(after.Frees - before.Frees)
	release := time.Since(t2)

	return report{
		build:    build,
		traverse: traverse,
		release:  release,
		checksum: checksum,
		nodes:    nodes,
		stats:    st,
	}
}

func percent(a, base time.Duration) float64 {
	if base <= 0 {
		return 0
	}
	return 100 * float64(a) / float64(base)
}

func printComparison(owned, regionRep report, children, depth int) {
	fmt.Printf("Tree node count: %d (%d levels, %d children/node)\n\n",
		regionRep.nodes, depth, children)
	fmt.Printf("                              Owned     |    Region\n")
	fmt.Printf("                     -------------------|------------------\n")
	row := func(name string, o, r time.Duration) {
		fmt.Printf("%20s: %8.3fs (%4.0f%%) | %8.3fs (100%%)\n",
			name, o.Seconds(), percent(o, r), r.Seconds())
	}
	row("Build time", owned.build, regionRep.build)
	row("Traversal time", owned.traverse, regionRep.traverse)
	row("Release time", owned.release, regionRep.release)
	row("Total time", owned.total(), regionRep.total())
	fmt.Printf("%20s: %15d   | %15d\n", "Heap allocations", owned.stats.Allocs, regionRep.stats.Allocs)
	fmt.Printf("%20s: %15d   | %15d\n", "Heap deallocations", owned.stats.Frees, regionRep.stats.Frees)
	fmt.Printf("%20s: %15s   | %15s\n", "Bytes allocated",
		humanize.Bytes(uint64(owned.stats.Bytes)), humanize.Bytes(uint64(regionRep.stats.Bytes)))
}

func printSingle(name string, rep report) {
	fmt.Printf("Strategy: %s\n", name)
	fmt.Printf("Tree node count: %d, checksum: %d\n", rep.nodes, rep.checksum)
	fmt.Printf("     Build time: %8.3fs\n", rep.build.Seconds())
	fmt.Printf(" Traversal time: %8.3fs\n", rep.traverse.Seconds())
	fmt.Printf("   Release time: %8.3fs\n", rep.release.Seconds())
	fmt.Printf("     Total time: %8.3fs\n", rep.total().Seconds())
	fmt.Printf("    Allocations: %d (%s)\n", rep.stats.Allocs, humanize.Bytes(uint64(rep.stats.Bytes)))
}

func newRootCmd() *cobra.Command {
	var (
		children int
		depth    int
		strategy string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "treebench",
		Short:        "Compare region allocation against per-node ownership on a fixed-shape tree",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if children < 1 {
				return fmt.Errorf("--children must be at least 1, got %d", children)
			}
			if depth < 0 {
				return fmt.Errorf("--depth must not be negative, got %d", depth)
			}

			if logLevel == "" {
				logLevel = os.Getenv("LOG_LEVEL")
			}
			if logLevel == "" {
				logLevel = "info"
			}
			logger, err := logging.New(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			defer logger.Sync()

			logger.Info("benchmarking tree build, traversal and release",
				zap.Int("children", children),
				zap.Int("depth", depth),
				zap.String("strategy", strategy),
			)

			switch strategy {
			case "region":
				printSingle("region", runRegion(children, depth))
			case "owned":
				printSingle("owned", runOwned(children, depth))
			case "both":
				regionRep := runRegion(children, depth)
				logger.Debug("region run complete",
					zap.Int("nodes", regionRep.nodes),
					zap.Int("checksum", regionRep.checksum),
					zap.Int64("pages", regionRep.stats.Allocs),
				)

				ownedRep := runOwned(children, depth)
				logger.Debug("owned run complete",
					zap.Int("nodes", ownedRep.nodes),
					zap.Int("checksum", ownedRep.checksum),
				)

				if regionRep.nodes != ownedRep.nodes || regionRep.checksum != ownedRep.checksum {
					logger.Error("strategies diverged",
						zap.Int("region_nodes", regionRep.nodes),
						zap.Int("owned_nodes", ownedRep.nodes),
						zap.Int("region_checksum", regionRep.checksum),
						zap.Int("owned_checksum", ownedRep.checksum),
					)
					return fmt.Errorf("internal error: different checksum or node count between strategies")
				}
				printComparison(ownedRep, regionRep, children, depth)
			default:
				return fmt.Errorf("unknown --strategy %q (want region, owned or both)", strategy)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&children, "children", 3, "children per non-leaf node")
	cmd.Flags().IntVar(&depth, "depth", 15, "levels of children below the root")
	cmd.Flags().StringVar(&strategy, "strategy", "both", "allocation strategy: region, owned or both")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (defaults to $LOG_LEVEL or info)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
