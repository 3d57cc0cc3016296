package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"vault/ledger"
	"vault/models"
)

// CategoryName 类别展示名，未知 ID 原样返回
func CategoryName(id string) string {
	if cat, ok := models.LookupCategory(id); ok {
		return cat.Name
	}
	return id
}

var cellBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// BuildWorkbook 生成月度报表：账目明细和汇总两个工作表
func BuildWorkbook(report *ledger.MonthlyReport, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()

	const txSheet = "Movimientos"
	const summarySheet = "Resumen"
	if err := f.SetSheetName("Sheet1", txSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"10B981"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    cellBorder,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    cellBorder,
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: cellBorder,
	})

	f.SetColWidth(txSheet, "A", "A", 20)
	f.SetColWidth(txSheet, "B", "B", 36)
	f.SetColWidth(txSheet, "C", "E", 14)

	headers := []string{"Fecha", "Concepto", "Monto", "Tipo", "Categoría"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(txSheet, cell, header)
		f.SetCellStyle(txSheet, cell, cell, headerStyle)
	}
	for i, tx := range report.Transactions {
		row := i + 2
		f.SetCellValue(txSheet, fmt.Sprintf("A%d", row), tx.CreatedAt.In(loc).Format("2006-01-02 15:04"))
		f.SetCellValue(txSheet, fmt.Sprintf("B%d", row), tx.Label)
		f.SetCellValue(txSheet, fmt.Sprintf("C%d", row), tx.Amount)
		f.SetCellValue(txSheet, fmt.Sprintf("D%d", row), tx.Type)
		f.SetCellValue(txSheet, fmt.Sprintf("E%d", row), CategoryName(tx.Category))
		f.SetCellStyle(txSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
	}

	// 汇总
	f.SetColWidth(summarySheet, "A", "A", 24)
	f.SetColWidth(summarySheet, "B", "C", 16)
	rows := [][]interface{}{
		{"Mes", report.Label},
		{"Ingresos", report.Summary.Income},
		{"Gastos", report.Summary.Expense},
		{"Balance", report.Summary.Balance},
		{"Tasa de ahorro (%)", report.Summary.SavingsRate},
	}
	for i, r := range rows {
		row := i + 1
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), r[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), r[1])
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), dataStyle)
	}

	row := len(rows) + 2
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Categoría")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), "Monto")
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), "%")
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), headerStyle)
	for _, cat := range report.Categories {
		row++
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), cat.Name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), cat.Value)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), cat.Percent)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), dataStyle)
	}

	row += 2
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Meta")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), "Actual")
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), "%")
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), headerStyle)
	for _, g := range report.Goals {
		row++
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), g.Name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), g.Current)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), g.Percent)
		f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), dataStyle)
	}

	// 合计行
	totalRow := len(report.Transactions) + 2
	f.SetCellValue(txSheet, fmt.Sprintf("A%d", totalRow), "Balance")
	f.MergeCell(txSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow))
	f.SetCellValue(txSheet, fmt.Sprintf("C%d", totalRow), report.Summary.Balance)
	f.SetCellValue(txSheet, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("%d movimientos", len(report.Transactions)))
	f.MergeCell(txSheet, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("E%d", totalRow))
	f.SetCellStyle(txSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), totalStyle)

	return f, nil
}

