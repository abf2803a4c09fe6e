package deck

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSamples parses a semicolon-delimited numeric table, returning column
// 0 as x and column 1 as y. Blank lines are skipped, extra columns ignored.
func ReadSamples(r io.Reader) (Series, error) {
	var s Series
	line := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		cols := strings.Split(text, ";")
		if len(cols) < 2 {
			return Series{}, fmt.Errorf("line %d: expected at least two columns, got %d", line, len(cols))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(cols[0]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(cols[1]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("line %d: %w", line, err)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if err := sc.Err(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// ReadSamplesFile reads a sample series from disk. Files ending in .xlsx
// are read as a spreadsheet (columns A and B of the active sheet),
// everything else as semicolon-delimited text.
func ReadSamplesFile(path string) (Series, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readSamplesXLSX(path)
	}

	fd, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer fd.Close()
	return ReadSamples(fd)
}

func readSamplesXLSX(path string) (Series, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return Series{}, err
	}
	defer xlsx.Close()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	rows, err := xlsx.GetRows(sheet)
	if err != nil {
		return Series{}, err
	}

	var s Series
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 {
			return Series{}, fmt.Errorf("row %d: expected at least two columns, got %d", i+1, len(row))
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return Series{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return Series{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	return s, nil
}

// QuerySamples reads (x, y) sample rows from a database query.
func QuerySamples(db *sql.DB, query string) (Series, error) {
	rows, err := db.Query(query)
	if err != nil {
		return Series{}, err
	}
	defer rows.Close()

	var s Series
	for rows.Next() {
		var x, y float64
		if err := rows.Scan(&x, &y); err != nil {
			return Series{}, err
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if err := rows.Err(); err != nil {
		return Series{}, err
	}
	return s, nil
}
