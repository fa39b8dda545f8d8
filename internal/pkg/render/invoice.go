package render

import (
	"fmt"
	"strings"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/invoice"
)

// InvoiceRenderer produces the document body stored next to a committed
// invoice. Rendering happens strictly after commit; a failure here
// leaves the invoice valid with an empty storage locator.
type InvoiceRenderer interface {
	Render(inv invoice.Invoice) ([]byte, error)
	ContentType() string
	Filename(inv invoice.Invoice) string
}

// TextRenderer writes the invoice as a plain-text statement. The layout
// follows a fixed contract: header with scope and period, one block per
// line item, then footer totals.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (t *TextRenderer) Render(inv invoice.Invoice) ([]byte, error) {
	var b strings.Builder

	scope := invoice.Scope{Kind: inv.ScopeKind, JobID: inv.ScopeKey, PartnerCompany: inv.ScopeKey}
	if inv.ScopeKind == invoice.ScopeJobIDs {
		ids := make([]string, 0, len(inv.LineItems))
		for _, li := range inv.LineItems {
			ids = append(ids, li.JobID)
		}
		scope.JobIDs = ids
	}

	fmt.Fprintf(&b, "Invoice for %s\n", scope.Label())
	fmt.Fprintf(&b, "Period: %s\n\n", inv.Period)

	fmt.Fprintln(&b, "Job Summary:")
	for _, li := range inv.LineItems {
		fmt.Fprintf(&b, "Job: %s | Candidate: %s | Company: %s\n", li.JobID, li.CandidateName, li.BillingCompany)
		fmt.Fprintf(&b, "Present Days: %d, Total Hours: %s, Amount: %s\n\n",
			li.PresentDays, li.TotalHours.StringFixed(2), li.BilledAmount.StringFixed(2))
	}

	fmt.Fprintf(&b, "Total Billing: %s\n", inv.TotalBillingAmount.StringFixed(2))
	fmt.Fprintf(&b, "Total Salary: %s\n", inv.TotalSalaryAmount.StringFixed(2))
	fmt.Fprintf(&b, "Total Commission: %s\n", inv.TotalCommission.StringFixed(2))
	fmt.Fprintf(&b, "Net Profit: %s\n", inv.NetProfit.StringFixed(2))

	return []byte(b.String()), nil
}

func (t *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (t *TextRenderer) Filename(inv invoice.Invoice) string {
	key := inv.ScopeKey
	if key == "" {
		key = string(inv.ScopeKind)
	}
	key = strings.ReplaceAll(key, " ", "_")
	return fmt.Sprintf("invoice_%s_%d_%d_%s.txt", key, inv.Period.Year, inv.Period.Month, inv.ID)
}
