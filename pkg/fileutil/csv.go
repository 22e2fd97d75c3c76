package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// ReadHeader reads ONLY the header of the specified CSV file
func (r *CSVReader) ReadHeader() ([]string, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	header, err := newReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow reads a CSV file row by row and hands each data row to processorFn
// together with its 1-based line number in the file
func (r *CSVReader) ReadAndProcessByRow(processorFn func(line int, row []string) error) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	reader := newReader(f)

	// Skip header
	if _, err = reader.Read(); err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err = processorFn(line, row); err != nil {
			return err
		}
	}

	return nil
}

// newReader returns a csv.Reader tolerant of ragged rows; callers decide what a short row means
func newReader(rd io.Reader) *csv.Reader {
	reader := csv.NewReader(rd)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	return reader
}
