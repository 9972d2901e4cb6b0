package models

import (
	"github.com/shopspring/decimal"
)

// Fixed epsilon that absorbs rounding noise in debit/credit comparison.
// Deliberately not configurable per voucher.
var balanceTolerance = decimal.NewFromFloat(0.01)

// SyncCounterEntry pushes the computed grand total into the entry flagged
// as the counter entry. Idempotent: a repeated call with the same total
// changes nothing. When no entry is flagged, this is a silent no-op — a
// recoverable condition, not an error.
func SyncCounterEntry(entries []LedgerEntry, grandTotal decimal.Decimal) bool {
	for i := range entries {
		if !entries[i].IsCounter {
			continue
		}
		if entries[i].Amount.Equal(grandTotal) {
			return false
		}
		entries[i].Amount = grandTotal
		return true
	}
	return false
}

// EntryTotals sums the debit and credit sides.
func EntryTotals(entries []LedgerEntry) (decimal.Decimal, decimal.Decimal) {
	var debit, credit decimal.Decimal
	for _, entry := range entries {
		switch entry.EntryType {
		case EntryTypeDebit:
			debit = debit.Add(entry.Amount)
		case EntryTypeCredit:
			credit = credit.Add(entry.Amount)
		}
	}
	return debit, credit
}

// IsBalanced reports |sum(debits) - sum(credits)| < tolerance.
func IsBalanced(entries []LedgerEntry) bool {
	debit, credit := EntryTotals(entries)
	return debit.Sub(credit).Abs().LessThan(balanceTolerance)
}
