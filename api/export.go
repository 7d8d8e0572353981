package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"kakeibo/models"
	"kakeibo/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler エクスポート処理
type ExportHandler struct {
	ledger *store.Ledger
}

// NewExportHandler エクスポート処理を作成
func NewExportHandler(ledger *store.Ledger) *ExportHandler {
	return &ExportHandler{ledger: ledger}
}

// filteredExpenses month 指定があればその月分だけ返す（台帳の並びのまま）
func (h *ExportHandler) filteredExpenses(month string) []models.Expense {
	all := h.ledger.Expenses()
	if month == "" {
		return all
	}
	out := make([]models.Expense, 0)
	for _, e := range all {
		if e.InMonth(month) {
			out = append(out, e)
		}
	}
	return out
}

func exportFilename(base, month, ext string) string {
	if month == "" {
		return fmt.Sprintf("%s.%s", base, ext)
	}
	return fmt.Sprintf("%s_%s.%s", base, month, ext)
}

// ExportCSV 支出を CSV でエクスポート
// @Summary 支出を CSV でエクスポート
// @Description 支出一覧を CSV ファイルとしてダウンロードする。month を指定するとその月分だけ
// @Tags エクスポート
// @Produce text/csv
// @Param month query string false "対象の月 (2024-06)。省略時は全期間"
// @Success 200 {file} file "CSV ファイル"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	month := c.Query("month")
	expenses := h.filteredExpenses(month)

	var buf bytes.Buffer
	// Excel で開いたときの文字化け対策に BOM を付ける
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "日付", "カテゴリ", "金額", "メモ"})
	for _, e := range expenses {
		_ = w.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			e.Category,
			strconv.FormatInt(e.Amount, 10),
			e.Memo,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		InternalError(c, SafeErrorMessage(err, "エクスポートに失敗しました"))
		return
	}

	filename := exportFilename("expenses", month, "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 支出を JSON でエクスポート
// @Summary 支出を JSON でエクスポート
// @Description 支出一覧を JSON ファイルとしてダウンロードする。month を指定するとその月分だけ
// @Tags エクスポート
// @Produce json
// @Param month query string false "対象の月 (2024-06)。省略時は全期間"
// @Success 200 {file} file "JSON ファイル"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	month := c.Query("month")
	expenses := h.filteredExpenses(month)

	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "エクスポートに失敗しました"))
		return
	}

	filename := exportFilename("expenses", month, "json")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportExcel 支出を Excel でエクスポート
// @Summary 支出を Excel でエクスポート
// @Description 支出一覧を xlsx ファイルとしてダウンロードする。month を指定するとその月分だけ
// @Tags エクスポート
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "対象の月 (2024-06)。省略時は全期間"
// @Success 200 {file} file "xlsx ファイル"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	month := c.Query("month")
	expenses := h.filteredExpenses(month)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "支出記録"
	f.SetSheetName("Sheet1", sheetName)

	// ヘッダー行のスタイル
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// データ行のスタイル
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 列幅
	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 36)

	headers := []string{"ID", "日付", "カテゴリ", "金額", "メモ"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hd)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, e := range expenses {
		values := []interface{}{e.ID, e.Date, e.Category, e.Amount, e.Memo}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "エクスポートに失敗しました"))
		return
	}

	filename := exportFilename("expenses", month, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
