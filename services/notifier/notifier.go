package notifier

import (
	"context"
	"fmt"
	"strings"

	"sjsage522/zenlesscollector/internal/collector"
)

// Notifier announces newly detected codes
type Notifier interface {
	Notify(ctx context.Context, codes []collector.RedemptionCode) error
}

// FormatMessage renders the announcement for new codes
func FormatMessage(codes []collector.RedemptionCode, currency string) string {
	if currency == "" {
		currency = collector.DefaultCurrency
	}

	var b strings.Builder
	b.WriteString("🎉 New Codes Detected!\n")
	for _, c := range codes {
		fmt.Fprintf(&b, "\n%s - %d %s", c.Code, c.Reward, currency)
	}
	return b.String()
}
