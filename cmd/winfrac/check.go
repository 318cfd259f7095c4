package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/winfrac-dev/winfrac"
	"github.com/winfrac-dev/winfrac/internal/feasibility"
)

var checkCmd = &cobra.Command{
	Use:   "check <input>",
	Short: "Run the feasibility analysis without enumerating anything",
	Long: `Runs the cheap structural checks that gate enumeration and prints each
answer. A graph passes when its outcome can actually depend on how vertices
are assigned; anything else would waste a full batch on a constant answer.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Int("energy-limit", feasibility.DefaultEnergyLimit, "Energy ceiling for the feasibility searches")
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := gameKind(cmd)
	if err != nil {
		return err
	}
	energyLimit, _ := cmd.Flags().GetInt("energy-limit")

	est, err := winfrac.Load(args[0], kind,
		winfrac.WithLogger(newLogger(cmd)),
		winfrac.WithEnergyLimit(energyLimit),
	)
	if err != nil {
		return err
	}

	report := est.Check()
	p := termenv.ColorProfile()
	for _, check := range report.Checks {
		fmt.Printf("%s: %v\n", check.Name, check.Result)
	}
	if report.Proceed {
		verdict := termenv.String("feasible").Foreground(p.Color("#22c55e")).Bold()
		fmt.Printf("%s: enumeration would proceed\n", verdict)
		return nil
	}
	verdict := termenv.String("infeasible").Foreground(p.Color("#ef4444")).Bold()
	fmt.Printf("%s: %s\n", verdict, report.Reason)
	return nil
}
