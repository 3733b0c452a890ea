package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axion-project/orac-benchmark/internal/benchmarks"
	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered benchmarks",
	Long: `Prints the registered benchmarks with their concurrency eligibility and
dependencies. Any name shown here is a valid value for 'run --mode'.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := benchmarks.NewRegistry(benchmarks.DefaultConfig())
	if err != nil {
		return suiteerrors.NewRegistryDefinitionError("Benchmark registry failed validation", err)
	}

	table := utils.NewTableFormatter("Name", "Parallel", "Depends On", "Description")
	for _, b := range reg.All() {
		parallel := "no"
		if b.ParallelSafe {
			parallel = "yes"
		}
		deps := "-"
		if len(b.DependsOn) > 0 {
			deps = strings.Join(b.DependsOn, ", ")
		}
		table.AddRow(b.Name, parallel, deps, b.Description)
	}

	fmt.Print(table.String())
	fmt.Printf("%d benchmark(s) registered. Run all of them with 'orac-bench run'.\n", reg.Len())
	return nil
}
