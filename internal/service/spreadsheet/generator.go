// Package spreadsheet 把單一工作地點一個月的班表輸出成 xlsx。
//
// 版面：A1:D1 合併標題，第 3 列表頭，第 4 列起每天一列，
// 週六日整列底色，未排班的格子留白但保留框線。
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"shiftlist/internal/core"
	"shiftlist/internal/database/model"

	"github.com/xuri/excelize/v2"
)

const (
	headerRow   = 3
	firstDayRow = headerRow + 1
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

type Workbook struct {
	File      *excelize.File
	SheetName string
	Days      int
	styles    styles
}

// WriteTo 先序列化到 buffer；excelize 的 File.WriteTo 直寫時回傳的 n 恆為 0
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	buf, err := w.File.WriteToBuffer()
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(out)
}

func (w *Workbook) Close() error {
	return w.File.Close()
}

// DaysIn 回傳該月天數（含閏年）
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FileName "Studio Hispan", 2024, 2 -> "Studio_Hispan_2024_2.xlsx"
func FileName(workplace string, year, month int) string {
	return fmt.Sprintf("%s_%d_%d.xlsx", strings.ReplaceAll(workplace, " ", "_"), year, month)
}

func SheetName(workplace string) string {
	return workplace + " Schedule"
}

// Generate 建立一份活頁簿；data 為 nil 時輸出整月空白班表
func Generate(workplace string, year, month int, data model.WorkplaceSchedule) (*Workbook, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	f := excelize.NewFile()
	wb, err := build(f, workplace, year, month, data)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return wb, nil
}

func build(f *excelize.File, workplace string, year, month int, data model.WorkplaceSchedule) (*Workbook, error) {
	sheet := SheetName(workplace)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	st, err := registerStyles(f)
	if err != nil {
		return nil, fmt.Errorf("register styles: %w", err)
	}
	wb := &Workbook{File: f, SheetName: sheet, Days: DaysIn(year, month), styles: st}

	if err := wb.writeTitle(workplace, year, month); err != nil {
		return nil, err
	}
	if err := wb.writeHeader(); err != nil {
		return nil, err
	}
	for day := 1; day <= wb.Days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if err := wb.writeDay(date, data[fmt.Sprint(day)]); err != nil {
			return nil, fmt.Errorf("write day %d: %w", day, err)
		}
	}
	for row := 1; row <= wb.Days+firstDayRow; row++ {
		if err := f.SetRowHeight(sheet, row, rowHeight); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func (w *Workbook) writeTitle(workplace string, year, month int) error {
	title := fmt.Sprintf("%s - %s %d", workplace, time.Month(month).String(), year)
	if err := w.File.MergeCell(w.SheetName, "A1", "D1"); err != nil {
		return err
	}
	if err := w.File.SetCellValue(w.SheetName, "A1", title); err != nil {
		return err
	}
	return w.File.SetCellStyle(w.SheetName, "A1", "A1", w.styles.title)
}

func (w *Workbook) writeHeader() error {
	headers := append([]string{"Day"}, core.Shifts...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := w.File.SetCellValue(w.SheetName, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	if err := w.File.SetCellStyle(w.SheetName, "A3", last, w.styles.header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return w.File.SetColWidth(w.SheetName, "A", lastCol, columnWidth)
}

func (w *Workbook) writeDay(date time.Time, assignment model.ShiftAssignment) error {
	row := date.Day() + headerRow
	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

	dayStyle, shiftStyle, blankStyle := w.styles.day, w.styles.shift, w.styles.blank
	if weekend {
		dayStyle, shiftStyle, blankStyle = w.styles.weekendDay, w.styles.weekendShift, w.styles.weekendBlank
	}

	dayCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := w.File.SetCellValue(w.SheetName, dayCell, fmt.Sprintf("%d - %s", date.Day(), date.Weekday())); err != nil {
		return err
	}
	if err := w.File.SetCellStyle(w.SheetName, dayCell, dayCell, dayStyle); err != nil {
		return err
	}

	for i, key := range core.ShiftKeys() {
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		name, assigned := assignment[key]
		style := blankStyle
		if assigned {
			if err := w.File.SetCellValue(w.SheetName, cell, name); err != nil {
				return err
			}
			style = shiftStyle
		}
		if err := w.File.SetCellStyle(w.SheetName, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}
