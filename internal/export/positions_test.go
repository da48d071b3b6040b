package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"

	"github.com/SKittan/3DvoxGen/internal/sims/clouds"
)

func TestWritePositionsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.csv")
	positions := []clouds.Position{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
		{X: 0, Y: 0, Z: 9},
	}

	if err := WritePositionsCSV(path, positions); err != nil {
		t.Fatalf("WritePositionsCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	var records []*PositionRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		t.Fatalf("UnmarshalFile: %v", err)
	}

	want := []*PositionRecord{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
		{X: 0, Y: 0, Z: 9},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePositionsCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.csv")
	if err := WritePositionsCSV(path, nil); err != nil {
		t.Fatalf("WritePositionsCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected at least a CSV header")
	}
}
