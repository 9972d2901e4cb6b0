package models

import (
	"errors"
	"testing"
)

func TestRemoveLastItemRow(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypePurchase)
	if err := draft.RemoveItemRow(0); !errors.Is(err, ErrorLastRow) {
		t.Fatalf("expected ErrorLastRow, got %v", err)
	}
	if len(draft.Items) != 1 {
		t.Fatalf("row count changed on refused removal: %d", len(draft.Items))
	}
}

func TestAddThenRemoveItemRow(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypePurchase)
	if err := draft.EditItemField(0, "rate", "10"); err != nil {
		t.Fatal(err)
	}
	if err := draft.AddItemRow(LineItem{}); err != nil {
		t.Fatal(err)
	}
	if len(draft.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(draft.Items))
	}
	if err := draft.RemoveItemRow(0); err != nil {
		t.Fatalf("removing first of two rows: %v", err)
	}
	if len(draft.Items) != 1 {
		t.Fatalf("expected 1 row, got %d", len(draft.Items))
	}
	// The survivor is the blank second row, not the edited first one.
	if !draft.Items[0].Rate.IsZero() {
		t.Fatalf("wrong row removed, survivor rate %s", draft.Items[0].Rate)
	}
}

func TestAddItemRowOnEntriesOnlyVoucher(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypeReceipt)
	if err := draft.AddItemRow(LineItem{}); err == nil {
		t.Fatal("receipt voucher must refuse item rows")
	}
}

func TestEditItemFieldCoercion(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypeSales)
	if err := draft.EditItemField(0, "quantity", "3.5"); err != nil {
		t.Fatal(err)
	}
	if !draft.Items[0].Quantity.Equal(d("3.5")) {
		t.Fatalf("expected quantity 3.5, got %s", draft.Items[0].Quantity)
	}
	// Garbage coerces to zero without an error.
	if err := draft.EditItemField(0, "quantity", "3.5abc"); err != nil {
		t.Fatal(err)
	}
	if !draft.Items[0].Quantity.IsZero() {
		t.Fatalf("expected quantity 0 after bad input, got %s", draft.Items[0].Quantity)
	}
	if err := draft.EditItemField(0, "colour", "red"); !errors.Is(err, ErrorUnknownRowField) {
		t.Fatalf("expected ErrorUnknownRowField, got %v", err)
	}
	if err := draft.EditItemField(5, "rate", "1"); !errors.Is(err, ErrorRowNotFound) {
		t.Fatalf("expected ErrorRowNotFound, got %v", err)
	}
}

func TestEntryRowGuards(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypePayment)

	if err := draft.RemoveEntryRow(0); !errors.Is(err, ErrorCounterEntry) {
		t.Fatalf("counter entry removal: expected ErrorCounterEntry, got %v", err)
	}
	if err := draft.RemoveEntryRow(1); !errors.Is(err, ErrorLastRow) {
		t.Fatalf("last particular removal: expected ErrorLastRow, got %v", err)
	}

	if err := draft.AddEntryRow(LedgerEntry{IsCounter: true}); err != nil {
		t.Fatal(err)
	}
	if draft.Entries[2].IsCounter {
		t.Fatal("added rows must never become counter entries")
	}
	if draft.Entries[2].EntryType != EntryTypeDebit {
		t.Fatalf("payment particulars default to debit, got %s", draft.Entries[2].EntryType)
	}

	if err := draft.RemoveEntryRow(2); err != nil {
		t.Fatalf("removing second particular: %v", err)
	}
	if len(draft.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(draft.Entries))
	}
}

func TestEditEntryFieldGuards(t *testing.T) {
	draft := NewVoucherDraft("tester", VoucherTypePayment)

	if err := draft.EditEntryField(0, "amount", "50"); !errors.Is(err, ErrorCounterEntry) {
		t.Fatalf("counter amount edit: expected ErrorCounterEntry, got %v", err)
	}
	if err := draft.EditEntryField(0, "entry_type", "Debit"); !errors.Is(err, ErrorCounterEntry) {
		t.Fatalf("counter type edit: expected ErrorCounterEntry, got %v", err)
	}
	// The counter's ledger account is the one field the user does pick.
	if err := draft.EditEntryField(0, "ledger_id", "12"); err != nil {
		t.Fatal(err)
	}
	if draft.Entries[0].LedgerId != 12 {
		t.Fatalf("expected ledger 12, got %d", draft.Entries[0].LedgerId)
	}

	if err := draft.EditEntryField(1, "entry_type", "Credit"); err != nil {
		t.Fatal(err)
	}
	if draft.Entries[1].EntryType != EntryTypeCredit {
		t.Fatalf("expected Credit, got %s", draft.Entries[1].EntryType)
	}
	if err := draft.EditEntryField(1, "entry_type", "debit"); err == nil {
		t.Fatal("lowercase entry type must be rejected")
	}
	if err := draft.EditEntryField(1, "amount", "42.42"); err != nil {
		t.Fatal(err)
	}
	if !draft.Entries[1].Amount.Equal(d("42.42")) {
		t.Fatalf("expected amount 42.42, got %s", draft.Entries[1].Amount)
	}
}
