package orders

import (
	"fmt"
	"time"
)

const (
	invoicePrefix    = "INV"
	invoiceDayLayout = "20060102"
)

// FormatInvoiceNumber renders the invoice identity for the given day and
// per-day sequence, e.g. INV/20260314/7.
func FormatInvoiceNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("%s/%s/%d", invoicePrefix, day.Format(invoiceDayLayout), seq)
}
