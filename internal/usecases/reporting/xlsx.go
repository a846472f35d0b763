package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	maxSheetName   = 31
	headerRowIndex = 4
)

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// XLSXRenderer gera uma aba por tabela do relatório
type XLSXRenderer struct{}

func (XLSXRenderer) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"28A745"}, Pattern: 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao criar estilo")
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "28A745"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao criar estilo")
	}

	defaultSheet := f.GetSheetName(0)
	used := make(map[string]int)

	for i, table := range doc.Tables {
		sheet := uniqueSheetName(table.Caption, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, errors.Wrap(err, "reporting: erro ao nomear aba")
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, errors.Wrap(err, "reporting: erro ao criar aba")
		}

		if err := writeTable(f, sheet, doc, table, headerStyle, titleStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao gerar planilha")
	}

	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, doc Document, table Table, headerStyle, titleStyle int) error {
	set := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, value)
	}

	if err := set(1, 1, doc.Title); err != nil {
		return errors.Wrap(err, "reporting: erro ao escrever título")
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return errors.Wrap(err, "reporting: erro ao aplicar estilo")
	}
	if err := set(1, 2, "Generated on: "+doc.GeneratedAt.Format(time.DateOnly)); err != nil {
		return errors.Wrap(err, "reporting: erro ao escrever data")
	}

	for col, header := range table.Headers {
		if err := set(col+1, headerRowIndex, header); err != nil {
			return errors.Wrap(err, "reporting: erro ao escrever cabeçalho")
		}
	}

	if len(table.Headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRowIndex)
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), headerRowIndex)
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return errors.Wrap(err, "reporting: erro ao aplicar estilo")
		}
		lastCol, _ := excelize.ColumnNumberToName(len(table.Headers))
		if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
			return errors.Wrap(err, "reporting: erro ao ajustar colunas")
		}
	}

	for r, row := range table.Rows {
		for c, value := range row {
			if err := set(c+1, headerRowIndex+1+r, value); err != nil {
				return errors.Wrapf(err, "reporting: erro ao escrever linha %d", r+1)
			}
		}
	}

	return nil
}

func uniqueSheetName(caption string, used map[string]int) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(caption))
	if name == "" {
		name = "Report"
	}
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}

	used[name]++
	if n := used[name]; n > 1 {
		suffix := fmt.Sprintf(" %d", n)
		runes := []rune(name)
		if len(runes)+len(suffix) > maxSheetName {
			runes = runes[:maxSheetName-len(suffix)]
		}
		name = string(runes) + suffix
	}

	return name
}
