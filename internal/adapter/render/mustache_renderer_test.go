package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"billing_saas/internal/domain/billing"
	"billing_saas/internal/domain/entities"
	"billing_saas/internal/usecase/interfaces"
	mock_interfaces "billing_saas/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func rendererSnapshot(description string) (entities.InvoiceSnapshot, billing.InvoiceTotals) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	rate := decimal.NewFromInt(100)
	invID := "inv-1"

	snap := entities.InvoiceSnapshot{
		Invoice: entities.Invoice{
			ID:        invID,
			ClientID:  "c-1",
			Number:    "INV-001",
			DueDate:   start.AddDate(0, 1, 0),
			CreatedAt: start,
		},
		Client:       entities.Client{ID: "c-1", Name: "Acme Corp", Email: "ap@acme.test", HourlyRate: &rate},
		Organization: entities.Organization{ID: "org-1", Name: "Studio LLC", Email: "billing@studio.test", Address: "1 Main St"},
		Entries: []entities.TimeEntry{
			{ID: "e-1", ClientID: "c-1", InvoiceID: &invID, Description: description, StartTime: start, EndTime: &end},
		},
	}
	totals := billing.ComputeInvoiceTotals(snap.Invoice, snap.Entries, snap.Client.HourlyRate)
	return snap, totals
}

func TestMustacheInvoiceRenderer_RenderInvoice(t *testing.T) {
	t.Run("substitutes view values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("{{client.name}}: {{invoice.total}}", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("{{invoice.number}}", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("footer", nil)

		snap, totals := rendererSnapshot("API work")
		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if markup.Body != "Acme Corp: 200.00" {
			t.Fatalf("body: %q", markup.Body)
		}
		if markup.Header != "INV-001" {
			t.Fatalf("header: %q", markup.Header)
		}
		if markup.Footer != "footer" {
			t.Fatalf("footer: %q", markup.Footer)
		}
	})

	t.Run("escapes markup in descriptions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("{{#invoice.timeEntries}}{{description}}{{/invoice.timeEntries}}", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("", nil)

		snap, totals := rendererSnapshot(`<script>alert("x")</script>`)
		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(markup.Body, "<script>") {
			t.Fatalf("raw markup leaked into body: %q", markup.Body)
		}
		if !strings.Contains(markup.Body, "&lt;script&gt;") {
			t.Fatalf("expected escaped markup, got %q", markup.Body)
		}
	})

	t.Run("missing keys render empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("[{{no.such.key}}]", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("", nil)

		snap, totals := rendererSnapshot("work")
		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if markup.Body != "[]" {
			t.Fatalf("expected empty substitution, got %q", markup.Body)
		}
	})

	t.Run("tax section hidden without tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("{{#invoice.hasTax}}TAX {{invoice.taxAmount}}{{/invoice.hasTax}}{{#invoice.hasDiscount}}DISC{{/invoice.hasDiscount}}", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("", nil)

		snap, totals := rendererSnapshot("work")
		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if markup.Body != "" {
			t.Fatalf("expected empty body, got %q", markup.Body)
		}
	})

	t.Run("tax section shown with tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("{{#invoice.hasTax}}TAX {{invoice.taxAmount}}{{/invoice.hasTax}}", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("", nil)

		snap, totals := rendererSnapshot("work")
		tax := decimal.RequireFromString("0.1")
		snap.Invoice.Tax = &tax
		totals = billing.ComputeInvoiceTotals(snap.Invoice, snap.Entries, snap.Client.HourlyRate)

		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if markup.Body != "TAX 20.00" {
			t.Fatalf("expected tax line, got %q", markup.Body)
		}
	})

	t.Run("missing footer template falls back to page counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("body", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceHeader).Return("header", nil)
		source.EXPECT().Load(interfaces.TemplateInvoiceFooter).Return("", interfaces.ErrTemplateNotFound)

		snap, totals := rendererSnapshot("work")
		markup, err := r.RenderInvoice(snap, totals)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(markup.Footer, `class="pageNumber"`) || !strings.Contains(markup.Footer, `class="totalPages"`) {
			t.Fatalf("expected fallback footer, got %q", markup.Footer)
		}
	})

	t.Run("missing body template fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockITemplateSource(ctrl)
		r := NewMustacheInvoiceRenderer(source)

		source.EXPECT().Load(interfaces.TemplateInvoiceBody).Return("", interfaces.ErrTemplateNotFound)

		snap, totals := rendererSnapshot("work")
		_, err := r.RenderInvoice(snap, totals)
		if !errors.Is(err, interfaces.ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestBuildInvoiceView(t *testing.T) {
	snap, totals := rendererSnapshot("Design review")
	view := BuildInvoiceView(snap, totals)

	inv, ok := view["invoice"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing invoice section")
	}
	if inv["number"] != "INV-001" {
		t.Fatalf("number: %v", inv["number"])
	}
	if inv["subtotal"] != "200.00" || inv["total"] != "200.00" {
		t.Fatalf("amounts: %v / %v", inv["subtotal"], inv["total"])
	}
	if inv["hasTax"] != false || inv["hasDiscount"] != false {
		t.Fatalf("flags: %v / %v", inv["hasTax"], inv["hasDiscount"])
	}
	if inv["createdAt"] != "June 1, 2026" {
		t.Fatalf("createdAt: %v", inv["createdAt"])
	}

	lines, ok := inv["timeEntries"].([]map[string]interface{})
	if !ok || len(lines) != 1 {
		t.Fatalf("timeEntries: %v", inv["timeEntries"])
	}
	if lines[0]["description"] != "Design review" || lines[0]["hours"] != "2.00" || lines[0]["amount"] != "200.00" {
		t.Fatalf("line: %v", lines[0])
	}

	client, ok := view["client"].(map[string]interface{})
	if !ok || client["name"] != "Acme Corp" {
		t.Fatalf("client: %v", view["client"])
	}
	org, ok := view["organization"].(map[string]interface{})
	if !ok || org["address"] != "1 Main St" {
		t.Fatalf("organization: %v", view["organization"])
	}
}
