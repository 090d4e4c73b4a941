package soil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadSPT reads an SPT survey from a .csv or .xlsx file and returns the
// element-wise average of the borings. Each column is one boring, each row
// one metre of depth, optionally preceded by a header row.
func LoadSPT(path string) (*Profile, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported SPT file format %q (use .csv or .xlsx)", ext)
	}
	if err != nil {
		return nil, err
	}

	values := averageRows(rows)
	if len(values) == 0 {
		return nil, fmt.Errorf("no SPT values found in %s", path)
	}
	return NewProfile(values)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

// averageRows averages the numeric cells of each row, skipping header rows
// and malformed cells.
func averageRows(rows [][]string) []float64 {
	var values []float64
	for _, row := range rows {
		var sum float64
		var count int
		for _, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			continue
		}
		values = append(values, sum/float64(count))
	}
	return values
}
