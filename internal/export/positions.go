// Package export writes simulation read-outs in forms external tooling can
// consume.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/SKittan/3DvoxGen/internal/sims/clouds"
)

// PositionRecord is one extracted cloud cell in CSV form.
type PositionRecord struct {
	X int32 `csv:"x"`
	Y int32 `csv:"y"`
	Z int32 `csv:"z"`
}

// WritePositionsCSV writes the extracted cloud positions to path, preserving
// their extraction order.
func WritePositionsCSV(path string, positions []clouds.Position) error {
	records := make([]*PositionRecord, len(positions))
	for i, p := range positions {
		records[i] = &PositionRecord{X: p.X, Y: p.Y, Z: p.Z}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}
