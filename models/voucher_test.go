package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func salesDraftWithTwoItems(t *testing.T) *VoucherDraft {
	t.Helper()
	draft := NewVoucherDraft("tester", VoucherTypeSales)
	set := func(index int, field, value string) {
		if err := draft.EditItemField(index, field, value); err != nil {
			t.Fatalf("EditItemField(%d, %s): %v", index, field, err)
		}
	}
	set(0, "quantity", "2")
	set(0, "rate", "100")
	set(0, "cgst_percent", "9")
	set(0, "sgst_percent", "9")
	if err := draft.AddItemRow(LineItem{}); err != nil {
		t.Fatalf("AddItemRow: %v", err)
	}
	set(1, "quantity", "1")
	set(1, "rate", "50")
	set(1, "igst_percent", "18")
	return draft
}

func TestNewVoucherDraftShape(t *testing.T) {
	sales := NewVoucherDraft("tester", VoucherTypeSales)
	if sales.State != DraftStateEmpty {
		t.Fatalf("expected Empty state, got %s", sales.State)
	}
	if len(sales.Items) != 1 {
		t.Fatalf("expected one blank item row, got %d", len(sales.Items))
	}
	if len(sales.Entries) != 2 {
		t.Fatalf("expected counter plus one particular, got %d entries", len(sales.Entries))
	}
	if !sales.Entries[0].IsCounter || sales.Entries[0].EntryType != EntryTypeDebit {
		t.Fatalf("sales counter entry should be a debit, got %+v", sales.Entries[0])
	}

	payment := NewVoucherDraft("tester", VoucherTypePayment)
	if len(payment.Items) != 0 {
		t.Fatalf("payment voucher must not have item rows, got %d", len(payment.Items))
	}
	if payment.Entries[0].EntryType != EntryTypeCredit {
		t.Fatalf("payment counter entry should be a credit, got %s", payment.Entries[0].EntryType)
	}
	if payment.Entries[1].EntryType != EntryTypeDebit {
		t.Fatalf("payment particulars default to debit, got %s", payment.Entries[1].EntryType)
	}
}

func TestTotalsAggregate(t *testing.T) {
	draft := salesDraftWithTwoItems(t)
	totals := draft.Totals()
	if !totals.Base.Equal(d("250")) {
		t.Fatalf("expected base 250, got %s", totals.Base)
	}
	if !totals.Tax.Total().Equal(d("45")) {
		t.Fatalf("expected tax 45, got %s", totals.Tax.Total())
	}
	if !totals.GrandTotal.Equal(d("295")) {
		t.Fatalf("expected grand total 295, got %s", totals.GrandTotal)
	}
}

// Row order must not change the aggregate.
func TestTotalsOrderIndependent(t *testing.T) {
	draft := salesDraftWithTwoItems(t)
	reversed := NewVoucherDraft("tester", VoucherTypeSales)
	reversed.Items = []LineItem{draft.Items[1], draft.Items[0]}
	if !draft.Totals().GrandTotal.Equal(reversed.Totals().GrandTotal) {
		t.Fatalf("totals differ by row order: %s vs %s",
			draft.Totals().GrandTotal, reversed.Totals().GrandTotal)
	}
}

func TestLineTotalIsBasePlusTax(t *testing.T) {
	item := LineItem{Quantity: d("3"), Rate: d("12.5"), Gst: GstRates{CgstPercent: d("2.5"), SgstPercent: d("2.5")}}
	if !item.LineTotal().Equal(item.BaseAmount().Add(item.TaxAmount())) {
		t.Fatalf("line total %s != base %s + tax %s", item.LineTotal(), item.BaseAmount(), item.TaxAmount())
	}
}

func TestRecomputeSyncsCounterFromItems(t *testing.T) {
	draft := salesDraftWithTwoItems(t)
	draft.Recompute()
	if !draft.Entries[0].Amount.Equal(d("295")) {
		t.Fatalf("counter entry should carry the grand total, got %s", draft.Entries[0].Amount)
	}
	// Editing an item re-syncs the counter on the next recompute.
	if err := draft.EditItemField(1, "rate", "100"); err != nil {
		t.Fatal(err)
	}
	draft.Recompute()
	if !draft.Entries[0].Amount.Equal(d("354")) {
		t.Fatalf("counter entry not re-synced after edit, got %s", draft.Entries[0].Amount)
	}
}

func TestRecomputeSyncsCounterFromParticulars(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypePayment)
	if err := draft.EditEntryField(1, "amount", "120.50"); err != nil {
		t.Fatalf("EditEntryField: %v", err)
	}
	if err := draft.AddEntryRow(LedgerEntry{Amount: d("29.50")}); err != nil {
		t.Fatalf("AddEntryRow: %v", err)
	}
	draft.Recompute()
	if !draft.Entries[0].Amount.Equal(d("150")) {
		t.Fatalf("counter should mirror the particulars sum, got %s", draft.Entries[0].Amount)
	}
	if !IsBalanced(draft.Entries) {
		t.Fatal("synced payment voucher should be balanced")
	}
}

func TestRevalidateFieldErrors(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypeSales)
	draft.Recompute()
	if draft.State != DraftStateInvalid {
		t.Fatalf("blank draft should be Invalid, got %s", draft.State)
	}
	for _, field := range []string{"voucher_number", "items[0].item_id", "items[0].quantity", "items[0].rate", "entries[0].ledger_id"} {
		if draft.FieldErrors[field] != "required" {
			t.Fatalf("expected required error on %s, got %q", field, draft.FieldErrors[field])
		}
	}

	draft.VoucherNumber = "SV-001"
	if err := draft.EditItemField(0, "item_id", "7"); err != nil {
		t.Fatal(err)
	}
	if err := draft.EditItemField(0, "quantity", "2"); err != nil {
		t.Fatal(err)
	}
	if err := draft.EditItemField(0, "rate", "100"); err != nil {
		t.Fatal(err)
	}
	if err := draft.EditEntryField(0, "ledger_id", "3"); err != nil {
		t.Fatal(err)
	}
	if err := draft.EditEntryField(1, "ledger_id", "4"); err != nil {
		t.Fatal(err)
	}
	draft.Recompute()
	if draft.State != DraftStateValid {
		t.Fatalf("completed draft should be Valid, got %s (errors: %v)", draft.State, draft.FieldErrors)
	}
	if len(draft.FieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", draft.FieldErrors)
	}
}
