// Command moead runs the optimizer against one of the built-in benchmark
// problems, configured through flags and an optional YAML file.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/decompopt/moead/apis/config"
	"github.com/decompopt/moead/pkg/moead/algorithms"
	"github.com/decompopt/moead/pkg/moead/benchmarks"
	"github.com/decompopt/moead/pkg/moead/framework"
	"github.com/decompopt/moead/pkg/moead/util"
)

func main() {
	var (
		configPath string
		benchmark  string
		preset     string
		seed       int64
		maxIter    int
		plot       bool
	)
	flag.StringVar(&configPath, "config", "", "path to a YAML run configuration")
	flag.StringVar(&benchmark, "benchmark", "zdt1", "benchmark problem: zdt1, zdt2, zdt3, dtlz1, dtlz2, bnh")
	flag.StringVar(&preset, "preset", "original", "configuration preset: original, de")
	flag.Int64Var(&seed, "seed", 0, "random seed; 0 derives one from the clock")
	flag.IntVar(&maxIter, "max-iter", 0, "override the maximum iteration count")
	flag.BoolVar(&plot, "plot", false, "write an HTML plot of the final front")
	klog.InitFlags(nil)
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	logger := klog.Background()
	ctx := klog.NewContext(context.Background(), logger)

	if err := run(ctx, configPath, benchmark, preset, seed, maxIter, plot); err != nil {
		logger.Error(err, "run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, benchmark, preset string, seed int64, maxIter int, plot bool) error {
	problem, err := resolveProblem(benchmark)
	if err != nil {
		return err
	}

	var cfg *config.MOEADConfig
	switch preset {
	case "original":
		cfg = config.PresetOriginal()
	case "de":
		cfg = config.PresetDE()
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return err
		}
		var user config.MOEADConfig
		if err := yaml.UnmarshalStrict(raw, &user); err != nil {
			return fmt.Errorf("parsing %s: %w", configPath, err)
		}
		cfg = config.Merge(cfg, &user)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if maxIter > 0 {
		cfg.Stop = []config.StopConfig{{Name: "maxiter", MaxIter: maxIter}}
	}

	m, err := algorithms.New(ctx, cfg, problem)
	if err != nil {
		return err
	}
	res, err := m.Run()
	if err != nil {
		return err
	}

	printSummary(res)
	if plot {
		if err := util.PlotResults(res.ParetoFront(), problem, algorithms.Name); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	return nil
}

func resolveProblem(name string) (framework.Problem, error) {
	switch strings.ToLower(name) {
	case "zdt1":
		return benchmarks.NewZDT1(30), nil
	case "zdt2":
		return benchmarks.NewZDT2(30), nil
	case "zdt3":
		return benchmarks.NewZDT3(30), nil
	case "dtlz1":
		return benchmarks.NewDTLZ1(6, 2), nil
	case "dtlz2":
		return benchmarks.NewDTLZ2(11, 2), nil
	case "bnh":
		return benchmarks.NewBNH(), nil
	default:
		return nil, fmt.Errorf("unknown benchmark %q", name)
	}
}

func printSummary(res *framework.Result) {
	fmt.Printf("iterations: %d  evaluations: %d  elapsed: %v  seed: %d\n",
		res.Iterations, res.NFE, res.Elapsed.Round(1e6), res.Seed)
	fmt.Printf("front size: %d\n", len(res.ParetoFront()))
	for k, name := range res.ObjectiveNames {
		fmt.Printf("%s: ideal=%.6f nadir=%.6f\n", name, res.Ideal[k], res.Nadir[k])
	}
	if res.Archive != nil {
		fmt.Printf("archive size: %d\n", len(res.Archive.Y))
	}
}
