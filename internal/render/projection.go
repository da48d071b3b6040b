// Package render turns cloud volumes into images for quick inspection.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Axis selects the projection direction.
type Axis int

const (
	// AxisX collapses the volume along x, producing a depth×height image.
	AxisX Axis = iota
	// AxisY collapses the volume along y, producing a width×height image.
	AxisY
	// AxisZ collapses the volume along z, producing a width×depth image.
	AxisZ
)

// Project collapses a dense x-major volume along the given axis into a
// grayscale density image: each pixel is the occupancy count of its column,
// scaled so the deepest column maps to white.
func Project(dense []uint8, width, depth, height int, axis Axis) (*image.RGBA, error) {
	if len(dense) != width*depth*height {
		return nil, fmt.Errorf("render: dense length %d does not match %dx%dx%d", len(dense), width, depth, height)
	}

	var imgW, imgH int
	switch axis {
	case AxisX:
		imgW, imgH = depth, height
	case AxisY:
		imgW, imgH = width, height
	case AxisZ:
		imgW, imgH = width, depth
	default:
		return nil, fmt.Errorf("render: unknown projection axis %d", axis)
	}

	counts := make([]int, imgW*imgH)
	maxCount := 0
	idx := 0
	for x := 0; x < width; x++ {
		for y := 0; y < depth; y++ {
			for z := 0; z < height; z++ {
				if dense[idx] != 0 {
					var p int
					switch axis {
					case AxisX:
						p = z*imgW + y
					case AxisY:
						p = z*imgW + x
					case AxisZ:
						p = y*imgW + x
					}
					counts[p]++
					if counts[p] > maxCount {
						maxCount = counts[p]
					}
				}
				idx++
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	for i, c := range counts {
		var v uint8
		if maxCount > 0 {
			v = uint8(c * 255 / maxCount)
		}
		base := i * 4
		img.Pix[base+0] = v
		img.Pix[base+1] = v
		img.Pix[base+2] = v
		img.Pix[base+3] = 255
	}
	return img, nil
}

// SavePNG writes the image to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}
	return nil
}
