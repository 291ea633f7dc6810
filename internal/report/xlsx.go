// Package report turns a computed schedule into downloadable artifacts: a
// single sheet xlsx workbook and an HTML chart page.
package report

import (
	"io"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"

	"github.com/xuri/excelize/v2"
)

// ScheduleFilename is the attachment name for the workbook download.
const ScheduleFilename = "mortgage_schedule.xlsx"

const (
	sheetName       = "Schedule"
	summaryStartRow = 3
	headerRow       = 12
	dataStartRow    = 13
)

// BuildWorkbook renders the summary and schedule into a workbook. The caller
// owns the returned file and must Close it.
func BuildWorkbook(mode mortgage.Mode, in mortgage.Input, result mortgage.Result, schedule mortgage.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeScheduleSheet(f, mode, in, result, schedule); err != nil {
		f.Close()
		return nil, apperrors.WrapExportError(err, "failed to build schedule workbook")
	}
	return f, nil
}

// WriteXlsx serializes the workbook for mode and schedule to w.
func WriteXlsx(w io.Writer, mode mortgage.Mode, in mortgage.Input, result mortgage.Result, schedule mortgage.Schedule) error {
	f, err := BuildWorkbook(mode, in, result, schedule)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return apperrors.WrapExportError(err, "failed to write schedule workbook")
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, mode mortgage.Mode, in mortgage.Input, result mortgage.Result, schedule mortgage.Schedule) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &moneyFormat,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return err
	}

	monthStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return err
	}

	title := "Mortgage: payment schedule"
	if mode == mortgage.ModeInstallment {
		title = "Installment plan: payment schedule"
	}
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, "A1", "E1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", titleStyle); err != nil {
		return err
	}

	in = in.ForMode(mode)
	summary := []struct {
		label string
		value float64
	}{
		{"Home price", in.HomePrice.InexactFloat64()},
		{"Down payment", in.DownPayment.InexactFloat64()},
		{"Term (years)", in.TermYears.InexactFloat64()},
		{"Annual rate (%)", in.AnnualRatePercent.InexactFloat64()},
		{"Monthly payment", result.MonthlyPayment.InexactFloat64()},
		{"Total paid", result.TotalPaid.InexactFloat64()},
		{"Overpayment", result.Overpayment.InexactFloat64()},
		{"Overpayment (%)", result.OverpaymentPercent.InexactFloat64()},
	}
	for i, row := range summary {
		values := []interface{}{row.label, row.value}
		if err := f.SetSheetRow(sheetName, cellName(1, summaryStartRow+i), &values); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, cellName(1, summaryStartRow), cellName(1, summaryStartRow+len(summary)-1), labelStyle); err != nil {
		return err
	}

	headers := []interface{}{"Month", "Payment", "Interest", "Principal", "Balance"}
	if err := f.SetSheetRow(sheetName, cellName(1, headerRow), &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, cellName(1, headerRow), cellName(5, headerRow), headerStyle); err != nil {
		return err
	}

	for i, entry := range schedule {
		values := []interface{}{
			entry.Month,
			entry.Payment.InexactFloat64(),
			entry.InterestPart.InexactFloat64(),
			entry.PrincipalPart.InexactFloat64(),
			entry.Balance.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cellName(1, dataStartRow+i), &values); err != nil {
			return err
		}
	}

	if len(schedule) > 0 {
		lastRow := dataStartRow + len(schedule) - 1
		if err := f.SetCellStyle(sheetName, cellName(1, dataStartRow), cellName(1, lastRow), monthStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cellName(2, dataStartRow), cellName(5, lastRow), moneyStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "B", "E", 16)
}

// cellName converts 1-based coordinates to an A1 reference. Coordinates here
// are always in range, so the error is ignored.
func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
