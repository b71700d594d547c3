package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/okampfer/lifesim/internal/scenario"
	"github.com/okampfer/lifesim/internal/sim"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validateDir := validateCmd.String("dir", "", "directory containing scenario YAML files")

	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	runFile := runCmd.String("file", "", "scenario YAML file to simulate")
	runOut := runCmd.String("out", "", "write the full result record as JSON to this path")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if *validateDir == "" {
			fmt.Fprintln(os.Stderr, "Error: --dir flag is required")
			validateCmd.Usage()
			os.Exit(1)
		}
		os.Exit(runValidate(*validateDir))
	case "run":
		runCmd.Parse(os.Args[2:])
		if *runFile == "" {
			fmt.Fprintln(os.Stderr, "Error: --file flag is required")
			runCmd.Usage()
			os.Exit(1)
		}
		os.Exit(runSimulate(*runFile, *runOut))
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lifesim <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate --dir <path>           Validate scenario YAML files in a directory")
	fmt.Println("  run --file <path> [--out <path>]  Simulate one scenario and print the summary")
	fmt.Println()
}

func runValidate(dirPath string) int {
	schemaPath := findSchemaFile()
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Error: could not find schemas/scenario_v1.json")
		return 1
	}

	validator, err := scenario.NewValidator(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize validator: %v\n", err)
		return 1
	}

	errors := validator.ValidateDirectory(dirPath)

	if len(errors) == 0 {
		fmt.Println("✓ All scenario files are valid")
		return 0
	}

	// Group errors by file
	errorsByFile := make(map[string][]scenario.ValidationError)
	for _, err := range errors {
		errorsByFile[err.File] = append(errorsByFile[err.File], err)
	}

	var files []string
	for file := range errorsByFile {
		files = append(files, file)
	}
	sort.Strings(files)

	fmt.Fprintf(os.Stderr, "✗ Validation failed with %d error(s):\n\n", len(errors))
	for _, file := range files {
		for _, err := range errorsByFile[file] {
			if err.Path != "" {
				fmt.Fprintf(os.Stderr, "%s: %s: %s\n", filepath.Base(err.File), err.Path, err.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %s\n", filepath.Base(err.File), err.Message)
			}
		}
	}

	return 1
}

func runSimulate(filePath, outPath string) int {
	sc, err := scenario.LoadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load scenario: %v\n", err)
		return 1
	}

	if schemaPath := findSchemaFile(); schemaPath != "" {
		validator, err := scenario.NewValidator(schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize validator: %v\n", err)
			return 1
		}
		if errs := validator.ValidateScenario(filePath, sc); len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "✗ Scenario is invalid:\n")
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %s\n", e.Error())
			}
			return 1
		}
	}

	result, err := sim.Simulate(sc.Spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: simulation failed: %v\n", err)
		return 1
	}

	printSummary(sc, result)

	if outPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to encode result: %v\n", err)
			return 1
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write result: %v\n", err)
			return 1
		}
		fmt.Printf("\nFull result written to %s\n", outPath)
	}

	return 0
}

var strategyLabels = map[sim.Strategy]string{
	sim.StrategyNoFix:     "No fix",
	sim.StrategyFixInPlan: "Fix in plan",
	sim.StrategyFixOnFail: "Fix on fail",
	sim.StrategyFixOnRisk: "Fix on risk",
}

func printSummary(sc *scenario.Scenario, result *sim.Result) {
	fmt.Printf("Scenario: %s (%s)\n", sc.Metadata.ID, sc.Metadata.Asset)
	fmt.Printf("Lifespan %g years, %d samples, risk threshold $%.2f\n\n",
		sc.Spec.LifespanYears, sc.Spec.Points, result.ThresholdDollar)

	fmt.Printf("%-12s  %16s  %16s\n", "Strategy", "Total cost", "Average risk")
	for _, s := range sim.Strategies {
		fmt.Printf("%-12s  %16.2f  %16.2f\n", strategyLabels[s], result.TotalCost[s], result.AverageRisk[s])
	}
}

// findSchemaFile looks for the schema file in common locations
func findSchemaFile() string {
	candidates := []string{
		"schemas/scenario_v1.json",
		"../schemas/scenario_v1.json",
		"../../schemas/scenario_v1.json",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
