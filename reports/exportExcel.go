package reports

import (
	"fmt"
	"io"

	"github.com/mmdatafocus/books_gateway/erpapi"
	"github.com/xuri/excelize/v2"
)

const dayBookSheet = "Day Book"

// WriteDayBook renders submitted vouchers as an XLSX day book. Amounts
// are written as 2dp numbers; the books keep full precision upstream.
func WriteDayBook(w io.Writer, vouchers []erpapi.VoucherRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(dayBookSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Voucher No", "Type", "Narration", "Amount"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(dayBookSheet, cell, header); err != nil {
			return err
		}
	}

	for row, voucher := range vouchers {
		amount, _ := voucher.GrandTotal.Round(2).Float64()
		values := []interface{}{
			voucher.Date,
			voucher.VoucherNumber,
			string(voucher.Type),
			voucher.Narration,
			amount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dayBookSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(dayBookSheet, "A", "E", 20); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write day book: %w", err)
	}
	return nil
}
