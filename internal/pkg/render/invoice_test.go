package render

import (
	"strings"
	"testing"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID:        "inv-1",
		ScopeKind: invoice.ScopePartner,
		ScopeKey:  "Globex Ltd",
		Period:    invoice.Period{Year: 2025, Month: 6},
		LineItems: []invoice.LineItem{
			{
				JobID:          "job-a",
				CandidateName:  "Asha Rao",
				BillingCompany: "Globex Ltd",
				PresentDays:    20,
				TotalHours:     decimal.RequireFromString("171"),
				BilledAmount:   decimal.RequireFromString("3384.38"),
				SalaryAmount:   decimal.RequireFromString("2256.25"),
			},
		},
		TotalBillingAmount: decimal.RequireFromString("3384.38"),
		TotalSalaryAmount:  decimal.RequireFromString("2256.25"),
		TotalCommission:    decimal.RequireFromString("338.44"),
		NetProfit:          decimal.RequireFromString("789.69"),
	}
}

func TestTextRendererRender(t *testing.T) {
	out, err := NewTextRenderer().Render(sampleInvoice())
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "Invoice for Partner Globex Ltd")
	assert.Contains(t, body, "Period: 6/2025")
	assert.Contains(t, body, "Job: job-a | Candidate: Asha Rao | Company: Globex Ltd")
	assert.Contains(t, body, "Present Days: 20, Total Hours: 171.00, Amount: 3384.38")
	assert.Contains(t, body, "Total Billing: 3384.38")
	assert.Contains(t, body, "Total Salary: 2256.25")
	assert.Contains(t, body, "Total Commission: 338.44")
	assert.Contains(t, body, "Net Profit: 789.69")
}

func TestTextRendererFilename(t *testing.T) {
	name := NewTextRenderer().Filename(sampleInvoice())

	assert.Equal(t, "invoice_Globex_Ltd_2025_6_inv-1.txt", name)
	assert.False(t, strings.Contains(name, " "))
}

func TestTextRendererFilenameFallsBackToScopeKind(t *testing.T) {
	inv := sampleInvoice()
	inv.ScopeKind = invoice.ScopeJobIDs
	inv.ScopeKey = ""

	assert.Equal(t, "invoice_job_ids_2025_6_inv-1.txt", NewTextRenderer().Filename(inv))
}
