package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"lexibot/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Words"

// ExportWorkbook renders a collection as an xlsx workbook with an
// English/Russian column pair.
func ExportWorkbook(words []domain.WordPair) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]string{"English", "Russian"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, w := range words {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &[]string{w.En, w.Ru}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f.WriteToBuffer()
}

// ParseWorkbook reads word pairs from the first sheet of an xlsx
// workbook. A header row is detected and skipped.
func ParseWorkbook(r io.Reader) ([]domain.WordPair, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", domain.ErrParse)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %w", domain.ErrParse)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], domain.ErrParse)
	}
	return pairsFromRows(rows), nil
}

// ParseCSV reads word pairs from comma-separated english,russian lines
func ParseCSV(r io.Reader) ([]domain.WordPair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", domain.ErrParse)
	}
	return pairsFromRows(rows), nil
}

func pairsFromRows(rows [][]string) []domain.WordPair {
	pairs := make([]domain.WordPair, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		en := strings.TrimSpace(row[0])
		ru := strings.TrimSpace(row[1])
		if en == "" || ru == "" {
			continue
		}
		if i == 0 && strings.EqualFold(en, "english") {
			continue
		}
		pairs = append(pairs, domain.WordPair{En: en, Ru: ru})
	}
	return pairs
}

// ImportResult summarizes one import run
type ImportResult struct {
	Processed int
	Added     int
	Skipped   int
	Errors    []string
}

// Import feeds parsed pairs through add, tallying the outcome. A
// failing pair is skipped with its error kept; the run continues.
func Import(pairs []domain.WordPair, add func(en, ru string) error) ImportResult {
	res := ImportResult{Processed: len(pairs)}
	for _, p := range pairs {
		if err := add(p.En, p.Ru); err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", p.En, err))
			continue
		}
		res.Added++
	}
	return res
}
