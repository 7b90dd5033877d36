// Package output renders a household summary for the CLI.
package output

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
)

// ReportGenerator renders summaries in the supported formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport writes the summary in the requested format.
func GenerateReport(w io.Writer, summary *domain.HouseholdSummary, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(w, summary)
	case "json":
		return generator.GenerateJSONReport(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateJSONReport writes the summary as indented JSON.
func (rg *ReportGenerator) GenerateJSONReport(w io.Writer, summary *domain.HouseholdSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// GenerateConsoleReport writes a plain-text breakdown.
func (rg *ReportGenerator) GenerateConsoleReport(w io.Writer, summary *domain.HouseholdSummary) error {
	line := func(label string, amount decimal.Decimal) {
		fmt.Fprintf(w, "  %-38s %14s\n", label, amount.StringFixed(2))
	}

	fmt.Fprintf(w, "DISPOSABLE INCOME %d\n", summary.Year)
	fmt.Fprintf(w, "%s\n", divider)
	line("Gross household income", summary.GrossIncome)

	fmt.Fprintf(w, "\nContributions\n")
	line("Pension plan (QPP)", summary.PrimaryContributions.QPP)
	line("Employment insurance", summary.PrimaryContributions.EI)
	line("Parental insurance (QPIP)", summary.PrimaryContributions.QPIP)
	if sc := summary.SpouseContributions; sc != nil {
		line("Pension plan (QPP), spouse", sc.QPP)
		line("Employment insurance, spouse", sc.EI)
		line("Parental insurance (QPIP), spouse", sc.QPIP)
	}
	line("Total contributions", summary.TotalContributions)

	fmt.Fprintf(w, "\nQuébec income tax\n")
	line("Gross tax", summary.Quebec.Primary.GrossTax)
	line("Non-refundable credits", summary.Quebec.Primary.Credits)
	if sp := summary.Quebec.Spouse; sp != nil {
		line("Gross tax, spouse", sp.GrossTax)
		line("Non-refundable credits, spouse", sp.Credits)
	}
	line("Net tax (combined)", summary.Quebec.CombinedNetTax)
	line("Family net income", summary.Quebec.CombinedNetIncome)

	fmt.Fprintf(w, "\nFederal income tax\n")
	line("Gross tax", summary.Federal.Primary.GrossTax)
	line("Non-refundable credits", summary.Federal.Primary.Credits)
	if sp := summary.Federal.Spouse; sp != nil {
		line("Gross tax, spouse", sp.GrossTax)
		line("Non-refundable credits, spouse", sp.Credits)
	}
	line("Net tax (combined)", summary.Federal.CombinedNetTax)

	fmt.Fprintf(w, "\nBenefits and refundable credits\n")
	printBenefit(line, "Solidarity tax credit", summary.Benefits.SolidarityCredit)
	printBenefit(line, "Work premium", summary.Benefits.WorkPremium)
	printBenefit(line, "Family allowance", summary.Benefits.FamilyAllowance)
	printBenefit(line, "Canada child benefit", summary.Benefits.ChildBenefit)
	printBenefit(line, "GST credit", summary.Benefits.GSTCredit)
	printBenefit(line, "Old age security", summary.Benefits.OldAgeSecurity)
	printBenefit(line, "Guaranteed income supplement", summary.Benefits.GuaranteedIncomeSupp)
	printBenefit(line, "Senior assistance amount", summary.Benefits.SeniorAssistanceAmount)
	printBenefit(line, "Social assistance", summary.Benefits.SocialAssistance)
	line("Total benefits", summary.TotalBenefits)

	fmt.Fprintf(w, "%s\n", divider)
	line("DISPOSABLE INCOME", summary.DisposableIncome)
	if summary.ApproximateMeansTest {
		fmt.Fprintf(w, "  note: a benefit used a gross-income approximation for its means test\n")
	}
	return nil
}

const divider = "======================================================="

// printBenefit skips zero lines to keep the console report readable.
func printBenefit(line func(string, decimal.Decimal), label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	line(label, amount)
}
