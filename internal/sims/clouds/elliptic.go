package clouds

// InitElliptic assigns formation and extinction probabilities from one
// elliptical zone. Activation probability covers the inner ellipsoid,
// extinction probability covers everything outside the shrunk ellipsoid, and
// the two overlap in a shell of width 2*overlap. Humidity probability is
// written to the whole grid regardless of the zone geometry so clouds keep
// finding vapor beyond the formation region.
//
// Out-of-range inputs are never rejected: each is clamped to the nearest
// valid value with a diagnostic, and seeding continues.
//
// Repeated calls compose. Activation and extinction values are overwritten
// only inside their masks, so later zones win locally and cells outside keep
// earlier values. The humidity value is overwritten grid-wide on every call,
// so the last zone's PHum is visible everywhere.
func (w *World) InitElliptic(zone Zone) {
	zone = w.clampZone(zone)

	inner := zone.Radius + zone.Overlap
	outer := zone.Radius - zone.Overlap

	pHum := int16(zone.PHum)
	pAct := int16(zone.PAct)
	pExt := int16(zone.PExt)

	xs, ys, zs := w.coords.X, w.coords.Y, w.coords.Z
	w.backend.Run(w.size.Volume(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dx := float64(xs[i]) - zone.CenterX
			dy := float64(ys[i]) - zone.CenterY
			dz := float64(zs[i]) - zone.CenterZ
			d := dx*dx/zone.StretchX + dy*dy/zone.StretchY + dz*dz/zone.StretchZ

			w.pHum[i] = pHum
			if d <= inner {
				w.pAct[i] = pAct
			}
			if d > outer {
				w.pExt[i] = pExt
			}
		}
	})
}

// clampZone validates every zone parameter independently, clamping each
// out-of-range value to the nearest valid one and logging a diagnostic.
func (w *World) clampZone(zone Zone) Zone {
	if zone.Overlap < 0 {
		w.log.Warn("overlap must be non-negative, clamped", "overlap", zone.Overlap, "clamped", 0.0)
		zone.Overlap = 0
	}

	zone.CenterX = w.clampCenter("c_x", zone.CenterX, w.size.W)
	zone.CenterY = w.clampCenter("c_y", zone.CenterY, w.size.D)
	zone.CenterZ = w.clampCenter("c_z", zone.CenterZ, w.size.H)

	zone.StretchX = w.clampStretch("f_x", zone.StretchX)
	zone.StretchY = w.clampStretch("f_y", zone.StretchY)
	zone.StretchZ = w.clampStretch("f_z", zone.StretchZ)

	zone.PHum = w.clampProb("p_hum", zone.PHum)
	zone.PAct = w.clampProb("p_act", zone.PAct)
	zone.PExt = w.clampProb("p_ext", zone.PExt)

	return zone
}

func (w *World) clampCenter(key string, value float64, dim int) float64 {
	if value < 0 {
		w.log.Warn("center outside grid, clamped", "param", key, "value", value, "clamped", 0.0)
		return 0
	}
	if value >= float64(dim) {
		clamped := float64(dim - 1)
		w.log.Warn("center outside grid, clamped", "param", key, "value", value, "clamped", clamped)
		return clamped
	}
	return value
}

func (w *World) clampStretch(key string, value float64) float64 {
	if value <= 0 {
		w.log.Warn("stretch factor must be positive, reset", "param", key, "value", value, "clamped", 1.0)
		return 1
	}
	return value
}

func (w *World) clampProb(key string, value int) int {
	if value < 0 {
		w.log.Warn("probability outside basis-point range, clamped", "param", key, "value", value, "clamped", 0)
		return 0
	}
	if value > 10000 {
		w.log.Warn("probability outside basis-point range, clamped", "param", key, "value", value, "clamped", 10000)
		return 10000
	}
	return value
}
