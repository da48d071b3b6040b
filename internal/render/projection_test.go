package render

import (
	"os"
	"path/filepath"
	"testing"
)

func denseVolume(width, depth, height int, cells ...[3]int) []uint8 {
	dense := make([]uint8, width*depth*height)
	for _, c := range cells {
		dense[(c[0]*depth+c[1])*height+c[2]] = 1
	}
	return dense
}

func TestProjectAxisZ(t *testing.T) {
	// Column (0,0) holds two cells, column (1,1) one, the rest none.
	dense := denseVolume(2, 2, 2,
		[3]int{0, 0, 0}, [3]int{0, 0, 1},
		[3]int{1, 1, 0},
	)

	img, err := Project(dense, 2, 2, 2, AxisZ)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v, want 2x2", img.Bounds())
	}

	if got := img.RGBAAt(0, 0).R; got != 255 {
		t.Fatalf("deepest column = %d, want 255", got)
	}
	if got := img.RGBAAt(1, 1).R; got != 127 {
		t.Fatalf("half-full column = %d, want 127", got)
	}
	if got := img.RGBAAt(1, 0).R; got != 0 {
		t.Fatalf("empty column = %d, want 0", got)
	}
	if got := img.RGBAAt(0, 0).A; got != 255 {
		t.Fatalf("alpha = %d, want opaque", got)
	}
}

func TestProjectAxisDimensions(t *testing.T) {
	dense := denseVolume(3, 4, 5, [3]int{0, 0, 0})

	cases := []struct {
		axis       Axis
		imgW, imgH int
	}{
		{AxisX, 4, 5},
		{AxisY, 3, 5},
		{AxisZ, 3, 4},
	}
	for _, c := range cases {
		img, err := Project(dense, 3, 4, 5, c.axis)
		if err != nil {
			t.Fatalf("Project axis %d: %v", c.axis, err)
		}
		if img.Bounds().Dx() != c.imgW || img.Bounds().Dy() != c.imgH {
			t.Fatalf("axis %d bounds = %v, want %dx%d", c.axis, img.Bounds(), c.imgW, c.imgH)
		}
	}
}

func TestProjectRejectsBadInput(t *testing.T) {
	if _, err := Project(make([]uint8, 7), 2, 2, 2, AxisZ); err == nil {
		t.Fatal("expected an error for a mismatched dense length")
	}
	if _, err := Project(make([]uint8, 8), 2, 2, 2, Axis(9)); err == nil {
		t.Fatal("expected an error for an unknown axis")
	}
}

func TestSavePNG(t *testing.T) {
	dense := denseVolume(2, 2, 2, [3]int{0, 0, 0})
	img, err := Project(dense, 2, 2, 2, AxisZ)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cloud.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	// PNG signature.
	if len(data) < 8 || data[0] != 0x89 || string(data[1:4]) != "PNG" {
		t.Fatal("output is not a PNG file")
	}
}
