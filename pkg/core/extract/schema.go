// Package extract turns normalized filing Markdown into typed records
// using an LLM in JSON mode, with a lenient repair pipeline on the way
// back and zero-value defaults whenever anything goes wrong.
package extract

import (
	"fmt"
	"strings"
)

// Field declares one extraction target sent to the model as part of
// the response schema description.
type Field struct {
	Name        string
	Type        string
	Description string
}

// FinancialFields are the figures requested from a 10-K. Prior-period
// fields beyond these are filled with zeros rather than extracted;
// older filings in the window cover them poorly.
var FinancialFields = []Field{
	{"revenue_current", "number", "Total revenue for the most recent fiscal year, in USD"},
	{"revenue_prior_1", "number", "Total revenue for the prior fiscal year, in USD"},
	{"operating_income", "number", "Operating income for the most recent fiscal year, in USD"},
	{"net_income_current", "number", "Net income for the most recent fiscal year, in USD"},
	{"total_assets", "number", "Total assets at fiscal year end, in USD"},
	{"total_liabilities", "number", "Total liabilities at fiscal year end, in USD"},
	{"shareholders_equity", "number", "Total shareholders equity at fiscal year end, in USD"},
	{"cash_equivalents", "number", "Cash and cash equivalents at fiscal year end, in USD"},
	{"total_debt", "number", "Total debt (short plus long term) at fiscal year end, in USD"},
	{"shares_outstanding", "number", "Common shares outstanding"},
}

// GovernanceFields are the compensation and board figures requested
// from a DEF 14A proxy statement.
var GovernanceFields = []Field{
	{"ceo_total_comp", "number", "CEO total compensation for the most recent fiscal year, in USD"},
	{"ceo_base_salary", "number", "CEO base salary for the most recent fiscal year, in USD"},
	{"say_on_pay_approval_pct", "number", "Say-on-pay approval percentage from the most recent vote"},
	{"board_size", "integer", "Total number of directors on the board"},
	{"independent_directors", "integer", "Number of independent directors"},
	{"board_members", "array", "Array of board members, each with name (string), independent (boolean), tenure_years (number)"},
}

// DescribeFields renders a field list as the schema block embedded in
// the extraction prompt.
func DescribeFields(fields []Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", f.Name, f.Type, f.Description))
	}
	return sb.String()
}
