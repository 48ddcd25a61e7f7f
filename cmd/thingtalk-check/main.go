// Command thingtalk-check is a demo CLI over package analyzer, grounded
// on aiseeq-glint/cmd/glint/main.go's cobra root + subcommand shape
// (SPEC_FULL.md §3.4).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thingpedia/tt-semcheck/analyzer"
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/cmd/thingtalk-check/fixture"
	"github.com/thingpedia/tt-semcheck/cmd/thingtalk-check/wire"
	"github.com/thingpedia/tt-semcheck/config"
)

var (
	flagFixture  string
	flagConfig   string
	flagPolicy   bool
	flagNoColor  bool
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thingtalk-check",
	Short: "Static semantic checker for ThingTalk programs",
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Type-check a JSON-encoded program or policy",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect schemas in a fixture file",
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <kind> <channel>",
	Short: "Dump a resolved function schema",
	Args:  cobra.ExactArgs(2),
	RunE:  runSchemaShow,
}

var schemaShowPrimitiveKind string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFixture, "fixture", "", "path to the schema fixture YAML (required)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to thingtalk-check.yaml (optional)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug-level logging")

	checkCmd.Flags().BoolVar(&flagPolicy, "policy", false, "the input file is a Policy, not a Program")
	schemaShowCmd.Flags().StringVar(&schemaShowPrimitiveKind, "primitive-kind", "query", "query | action | trigger")

	schemaCmd.AddCommand(schemaShowCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(schemaCmd)
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if flagDebug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func loadOptions() (*config.Options, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		color.NoColor = true
	}
	if flagFixture == "" {
		return fmt.Errorf("thingtalk-check: --fixture is required")
	}

	oracle, err := fixture.Load(flagFixture)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("thingtalk-check: reading %s: %w", args[0], err)
	}

	logger := newLogger()
	checker := analyzer.New(oracle, opts.UseMeta, opts.StrictConflicts, logger)

	if flagPolicy {
		policy, err := wire.DecodePolicy(data)
		if err != nil {
			return err
		}
		return reportResult(cmd, checker.TypeCheckPermissionRule(context.Background(), policy))
	}

	program, err := wire.DecodeProgram(data)
	if err != nil {
		return err
	}
	mergeConfigClasses(program, opts)
	return reportResult(cmd, checker.TypeCheckProgram(context.Background(), program))
}

// mergeConfigClasses overlays the config-level class aliases from
// thingtalk-check.yaml (§3.3) under whatever classes the program itself
// declares — a program-level alias of the same name wins, since it is
// more specific to this one check.
func mergeConfigClasses(program *ast.Program, opts *config.Options) {
	fromConfig := opts.ClassesMap()
	if len(fromConfig) == 0 {
		return
	}
	merged := make(map[string]ast.ClassDef, len(fromConfig)+len(program.Classes))
	for kind, cd := range fromConfig {
		merged[kind] = cd
	}
	for kind, cd := range program.Classes {
		merged[kind] = cd
	}
	program.Classes = merged
}

func reportResult(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()
	if err == nil {
		green := color.New(color.FgGreen, color.Bold)
		green.Fprintln(out, "PASS")
		return nil
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintln(out, "FAIL")
	fmt.Fprintf(out, "  %s\n", err)
	os.Exit(1)
	return nil
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		color.NoColor = true
	}
	if flagFixture == "" {
		return fmt.Errorf("thingtalk-check: --fixture is required")
	}

	oracle, err := fixture.Load(flagFixture)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	var pk ast.PrimitiveKind
	switch schemaShowPrimitiveKind {
	case "query":
		pk = ast.KindQuery
	case "action":
		pk = ast.KindAction
	case "trigger":
		pk = ast.KindTrigger
	default:
		return fmt.Errorf("thingtalk-check: unrecognized --primitive-kind %q", schemaShowPrimitiveKind)
	}

	sch, err := oracle.SchemaForSelector(context.Background(), args[0], args[1], pk, opts.UseMeta, opts.ClassesMap())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(out, "%s.%s\n", args[0], args[1])
	for _, name := range sch.Args {
		t := sch.Types[sch.Index[name]]
		slot := "out"
		if _, ok := sch.InReq[name]; ok {
			slot = "in req"
		} else if _, ok := sch.InOpt[name]; ok {
			slot = "in opt"
		}
		fmt.Fprintf(out, "  %-20s %-10s %s\n", name, slot, t.String())
	}
	return nil
}
