package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/creational/internal/person"
)

var (
	personStreet   string
	personPostcode string
	personCity     string
	personCompany  string
	personPosition string
	personIncome   int
	personJSON     bool
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Build a person with the fluent builder",
	Long: `Build a person record through the address and employment builders.
Only the flags you pass are set; everything else keeps its zero value.

Example:
  creational person --street "123 London Road" --city London \
    --postcode SW12BC --company Fabrikam --position Engineer --income 123000`,
	Args: cobra.NoArgs,
	RunE: runPerson,
}

func init() {
	personCmd.Flags().StringVar(&personStreet, "street", "", "street address")
	personCmd.Flags().StringVar(&personPostcode, "postcode", "", "postcode")
	personCmd.Flags().StringVar(&personCity, "city", "", "city")
	personCmd.Flags().StringVar(&personCompany, "company", "", "company name")
	personCmd.Flags().StringVar(&personPosition, "position", "", "position")
	personCmd.Flags().IntVar(&personIncome, "income", 0, "annual income")
	personCmd.Flags().BoolVar(&personJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(personCmd)
}

func runPerson(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	b := person.New()

	address := b.Lives()
	if flags.Changed("street") {
		address.At(personStreet)
	}
	if flags.Changed("postcode") {
		address.WithPostcode(personPostcode)
	}
	if flags.Changed("city") {
		address.In(personCity)
	}

	job := address.Works()
	if flags.Changed("company") {
		job.At(personCompany)
	}
	if flags.Changed("position") {
		job.AsA(personPosition)
	}
	if flags.Changed("income") {
		job.Earning(personIncome)
	}

	p := job.Build()

	if jsonOutput(personJSON) {
		return printJSON(cmd, p)
	}
	cmd.Println(p.String())
	return nil
}
