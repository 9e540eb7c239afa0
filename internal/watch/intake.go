package watch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// IntakeLine is one row of an intake drop file: a food name and grams.
type IntakeLine struct {
	Food  string
	Grams float64
}

// ParseIntake reads an intake CSV. The header must be exactly Food,Grams.
func ParseIntake(path string) ([]IntakeLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intake file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read intake header: %w", err)
	}
	if len(header) != 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "Food") || !strings.EqualFold(strings.TrimSpace(header[1]), "Grams") {
		return nil, fmt.Errorf("invalid intake header: expected [Food Grams], got %v", header)
	}

	var lines []IntakeLine
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read intake record: %w", err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid intake record: %v", record)
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("intake record without a food name")
		}
		grams, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid grams %q for %q", record[1], name)
		}
		lines = append(lines, IntakeLine{Food: name, Grams: grams})
	}
	return lines, nil
}
