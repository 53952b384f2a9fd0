package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"shopcat/extractor/internal/domain"
)

// WriteCSV writes the flattened report: a header row, one data row per
// category, then a per-level subtotal block. The column layout matches
// the downstream spreadsheet: #, ジャンル1..ジャンルN, カテゴリID, ページURL.
func WriteCSV(w io.Writer, rows []domain.Row, levelCounts map[int]int) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to write")
	}

	cw := csv.NewWriter(w)
	width := len(rows[0].Levels)

	header := make([]string, 0, width+3)
	header = append(header, "#")
	for i := 0; i < width; i++ {
		header = append(header, fmt.Sprintf("ジャンル%d", i+1))
	}
	header = append(header, "カテゴリID", "ページURL")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, width+3)
		record = append(record, strconv.Itoa(row.Index))
		record = append(record, row.Levels...)
		record = append(record, row.CategoryID, row.URL)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Index, err)
		}
	}

	// Per-level subtotals.
	levels := make([]int, 0, len(levelCounts))
	for level := range levelCounts {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	if err := cw.Write([]string{""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"レベル", "カテゴリ数"}); err != nil {
		return err
	}
	total := 0
	for _, level := range levels {
		total += levelCounts[level]
		record := []string{
			fmt.Sprintf("ジャンル%d", level+1),
			strconv.Itoa(levelCounts[level]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"合計", strconv.Itoa(total)}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
