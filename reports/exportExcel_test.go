package reports

import (
	"bytes"
	"testing"

	"github.com/mmdatafocus/books_gateway/erpapi"
	"github.com/mmdatafocus/books_gateway/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWriteDayBook(t *testing.T) {
	vouchers := []erpapi.VoucherRecord{
		{
			ID:            1,
			Type:          models.VoucherTypeSales,
			VoucherNumber: "SV-001",
			Date:          "2026-08-15",
			Narration:     "counter sale",
			GrandTotal:    decimal.RequireFromString("295"),
		},
		{
			ID:            2,
			Type:          models.VoucherTypePayment,
			VoucherNumber: "PV-003",
			Date:          "2026-08-16",
			Narration:     "rent",
			GrandTotal:    decimal.RequireFromString("150.005"),
		},
	}

	var buf bytes.Buffer
	if err := WriteDayBook(&buf, vouchers); err != nil {
		t.Fatalf("WriteDayBook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Day Book")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][4] != "Amount" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "SV-001" || rows[1][2] != "Sales" {
		t.Fatalf("unexpected first voucher row: %v", rows[1])
	}
	// Amounts are rounded to 2dp on the way out.
	if rows[2][4] != "150.01" {
		t.Fatalf("expected rounded amount 150.01, got %q", rows[2][4])
	}
}

func TestWriteDayBookEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDayBook(&buf, nil); err != nil {
		t.Fatalf("WriteDayBook: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Day Book")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}
