// Package vox serializes dense boolean volumes as MagicaVoxel .vox files.
// The volume is cropped to the bounding box of its set cells before writing,
// so the container holds a tight model rather than the full simulation grid.
package vox

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// fileVersion is the MagicaVoxel container version this writer emits.
const fileVersion = 150

// maxExtent is the largest model size the XYZI chunk can address per axis.
const maxExtent = 256

// ErrEmptyVolume reports that no cell in the volume is set, leaving no
// bounding box to crop.
var ErrEmptyVolume = errors.New("vox: volume has no set cells")

// Box is the inclusive bounding box of the set cells of a volume.
type Box struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// SizeX returns the box extent along x.
func (b Box) SizeX() int { return b.MaxX - b.MinX + 1 }

// SizeY returns the box extent along y.
func (b Box) SizeY() int { return b.MaxY - b.MinY + 1 }

// SizeZ returns the box extent along z.
func (b Box) SizeZ() int { return b.MaxZ - b.MinZ + 1 }

// BoundingBox scans a dense x-major volume and returns the inclusive bounds
// of its set cells. It fails with ErrEmptyVolume when every cell is zero.
func BoundingBox(dense []uint8, width, depth, height int) (Box, error) {
	if len(dense) != width*depth*height {
		return Box{}, fmt.Errorf("vox: dense length %d does not match %dx%dx%d", len(dense), width, depth, height)
	}
	box := Box{MinX: width, MinY: depth, MinZ: height, MaxX: -1, MaxY: -1, MaxZ: -1}
	idx := 0
	for x := 0; x < width; x++ {
		for y := 0; y < depth; y++ {
			for z := 0; z < height; z++ {
				if dense[idx] != 0 {
					if x < box.MinX {
						box.MinX = x
					}
					if y < box.MinY {
						box.MinY = y
					}
					if z < box.MinZ {
						box.MinZ = z
					}
					if x > box.MaxX {
						box.MaxX = x
					}
					if y > box.MaxY {
						box.MaxY = y
					}
					if z > box.MaxZ {
						box.MaxZ = z
					}
				}
				idx++
			}
		}
	}
	if box.MaxX < 0 {
		return Box{}, ErrEmptyVolume
	}
	return box, nil
}

// Write serializes the set cells of the dense volume, cropped to their
// bounding box, as a MagicaVoxel model using the default palette.
func Write(w io.Writer, dense []uint8, width, depth, height int) error {
	box, err := BoundingBox(dense, width, depth, height)
	if err != nil {
		return err
	}
	if box.SizeX() > maxExtent || box.SizeY() > maxExtent || box.SizeZ() > maxExtent {
		return fmt.Errorf("vox: cropped volume %dx%dx%d exceeds the %d-cell container limit",
			box.SizeX(), box.SizeY(), box.SizeZ(), maxExtent)
	}

	// Voxel records are relative to the cropped box, one byte per axis plus
	// a palette index.
	var voxels []byte
	idx := 0
	for x := 0; x < width; x++ {
		for y := 0; y < depth; y++ {
			for z := 0; z < height; z++ {
				if dense[idx] != 0 {
					voxels = append(voxels,
						byte(x-box.MinX), byte(y-box.MinY), byte(z-box.MinZ), 1)
				}
				idx++
			}
		}
	}

	const chunkHeaderSize = 12
	sizeContent := 12
	xyziContent := 4 + len(voxels)
	mainChildren := chunkHeaderSize + sizeContent + chunkHeaderSize + xyziContent

	if _, err := w.Write([]byte("VOX ")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(fileVersion)); err != nil {
		return err
	}

	if err := writeChunkHeader(w, "MAIN", 0, mainChildren); err != nil {
		return err
	}

	if err := writeChunkHeader(w, "SIZE", sizeContent, 0); err != nil {
		return err
	}
	for _, v := range []int32{int32(box.SizeX()), int32(box.SizeY()), int32(box.SizeZ())} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	if err := writeChunkHeader(w, "XYZI", xyziContent, 0); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(voxels)/4)); err != nil {
		return err
	}
	if _, err := w.Write(voxels); err != nil {
		return err
	}
	return nil
}

// WriteFile writes the cropped volume to path, creating parent directories as
// needed.
func WriteFile(path string, dense []uint8, width, depth, height int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, dense, width, depth, height); err != nil {
		return err
	}
	return bw.Flush()
}

func writeChunkHeader(w io.Writer, id string, content, children int) error {
	if _, err := w.Write([]byte(id)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(content)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, int32(children))
}
