package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	tree := scenarioTree()
	rows := Flatten(tree)
	counts := LevelCounts(tree)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, counts))

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1 // subtotal block is narrower than data rows
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"#", "ジャンル1", "ジャンル2", "ジャンル3", "カテゴリID", "ページURL"}, records[0])
	assert.Equal(t, []string{"1", "ルート", "", "", "root", "https://shop.example/category/root/"}, records[1])
	assert.Equal(t, []string{"3", "ルート", "家電", "冷蔵庫", "A1", "https://shop.example/category/A1/"}, records[3])

	// Subtotal block follows the data rows (the separator line is
	// dropped by the CSV reader).
	assert.Equal(t, []string{"レベル", "カテゴリ数"}, records[5])
	assert.Equal(t, []string{"ジャンル1", "1"}, records[6])
	assert.Equal(t, []string{"ジャンル2", "2"}, records[7])
	assert.Equal(t, []string{"ジャンル3", "1"}, records[8])
	assert.Equal(t, []string{"合計", "4"}, records[9])
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, WriteCSV(&buf, nil, nil))
}
