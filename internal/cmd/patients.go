package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"intake-insights-go/internal/dataset"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/patients"
)

var patientsFile string

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List the patient directory",
	Long: `List the built-in patient directory, merged with the records of an
xlsx workbook when --file is given.`,
	Args: cobra.NoArgs,
	RunE: runPatients,
}

func init() {
	rootCmd.AddCommand(patientsCmd)

	patientsCmd.Flags().StringVarP(&patientsFile, "file", "f", "", "Patient workbook (.xlsx) to merge into the directory")
}

func runPatients(cmd *cobra.Command, args []string) error {
	dir := patients.Default()
	if patientsFile != "" {
		records, err := dataset.LoadPatients(patientsFile, logger.NewWithOutput("local", "warn", cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("failed to load patients: %w", err)
		}
		dir.Upsert(records...)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tALLERGIES")
	for _, p := range dir.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Phone, strings.Join(p.Allergies, ", "))
	}
	return tw.Flush()
}
