package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
)

// OrderRow is one appended line in the orders sheet. The sheet is the shop
// team's working view of incoming orders, so the columns mirror what they
// read off an invoice.
type OrderRow struct {
	InvoiceNumber string
	PlacedAt      time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ItemsSummary  string
	Total         string
	Status        string
}

// LeadRow is one appended line in the leads sheet, fed by price-on-request
// product inquiries.
type LeadRow struct {
	ReceivedAt  time.Time
	Name        string
	Contact     string
	ProductName string
	Note        string
}

// valuesAppender is the slice of the Sheets API the logger uses, split out so
// tests can capture rows without network access.
type valuesAppender interface {
	Append(ctx context.Context, spreadsheetID, rangeA1 string, row []interface{}) error
}

type googleAppender struct {
	svc *sheetsapi.Service
}

func (g *googleAppender) Append(ctx context.Context, spreadsheetID, rangeA1 string, row []interface{}) error {
	values := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := g.svc.Spreadsheets.Values.
		Append(spreadsheetID, rangeA1, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// Logger appends order and lead rows to a shared spreadsheet. Appends are
// best-effort bookkeeping; callers log failures and move on.
type Logger struct {
	appender      valuesAppender
	spreadsheetID string
	ordersSheet   string
	leadsSheet    string
}

// New builds a Logger backed by the Google Sheets API using service-account
// credentials.
func New(ctx context.Context, cfg config.SheetsConfig) (*Logger, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets logger requires a spreadsheet id")
	}

	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("build sheets service: %w", err)
	}

	return &Logger{
		appender:      &googleAppender{svc: svc},
		spreadsheetID: cfg.SpreadsheetID,
		ordersSheet:   sheetOrDefault(cfg.OrdersSheet, "Orders"),
		leadsSheet:    sheetOrDefault(cfg.LeadsSheet, "Leads"),
	}, nil
}

// AppendOrder writes one order row.
func (l *Logger) AppendOrder(ctx context.Context, row OrderRow) error {
	values := []interface{}{
		row.InvoiceNumber,
		row.PlacedAt.Format(time.RFC3339),
		row.CustomerName,
		row.CustomerEmail,
		row.CustomerPhone,
		row.ItemsSummary,
		row.Total,
		row.Status,
	}
	if err := l.appender.Append(ctx, l.spreadsheetID, l.ordersSheet+"!A:H", values); err != nil {
		return fmt.Errorf("append order row: %w", err)
	}
	return nil
}

// AppendLead writes one lead row.
func (l *Logger) AppendLead(ctx context.Context, row LeadRow) error {
	values := []interface{}{
		row.ReceivedAt.Format(time.RFC3339),
		row.Name,
		row.Contact,
		row.ProductName,
		row.Note,
	}
	if err := l.appender.Append(ctx, l.spreadsheetID, l.leadsSheet+"!A:E", values); err != nil {
		return fmt.Errorf("append lead row: %w", err)
	}
	return nil
}

func sheetOrDefault(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
