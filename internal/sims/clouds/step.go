package clouds

// neighborOffsets lists the cells sampled by the growth rule, one axis at a
// time with toroidal wrapping. The depth axis deliberately has no +2 offset:
// the published rule set samples only these eleven neighbors.
var neighborOffsets = [11][3]int{
	{-2, 0, 0}, {-1, 0, 0}, {1, 0, 0}, {2, 0, 0},
	{0, -2, 0}, {0, -1, 0}, {0, 1, 0},
	{0, 0, -2}, {0, 0, -1}, {0, 0, 1}, {0, 0, 2},
}

// Step advances the simulation by one tick: the deterministic growth phase
// followed by the stochastic formation/extinction phase.
func (w *World) Step() {
	w.growth()
	w.formationExtinction()
}

// Simulate runs n steps strictly in sequence.
func (w *World) Simulate(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

// growth applies the transition rules against the pre-step snapshot:
//
//	cloud      <- cloud OR activation
//	activation <- NOT activation AND humidity AND any(neighbor activation)
//	humidity   <- humidity AND NOT activation
//
// Activation and humidity are written into next-buffers and committed by a
// single swap, so the neighbor aggregation never observes a partially updated
// field. The cloud field is written in place; no growth rule reads it.
func (w *World) growth() {
	size := w.size
	hum, act, cld := w.hum, w.act, w.cld
	humNext, actNext := w.humNext, w.actNext
	xs, ys, zs := w.coords.X, w.coords.Y, w.coords.Z

	w.backend.Run(size.Volume(), func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			a := act[idx]
			h := hum[idx]

			cld[idx] |= a
			humNext[idx] = h &^ a

			var ignite uint8
			if a == 0 && h != 0 {
				x, y, z := int(xs[idx]), int(ys[idx]), int(zs[idx])
				for _, off := range neighborOffsets {
					nx, ny, nz := size.Wrap(x+off[0], y+off[1], z+off[2])
					if act[size.Index(nx, ny, nz)] != 0 {
						ignite = 1
						break
					}
				}
			}
			actNext[idx] = ignite
		}
	})

	w.hum, w.humNext = w.humNext, w.hum
	w.act, w.actNext = w.actNext, w.act
}

// formationExtinction applies the stochastic rules to the phase-1-committed
// fields:
//
//	humidity   <- humidity OR (r_hum < P_hum)
//	activation <- activation OR (r_act < P_act)
//	cloud      <- cloud AND (r_ext > P_ext)
//
// A cloud cell survives only if its draw strictly exceeds its extinction
// threshold. All three draw buffers are filled before any field is touched so
// the update rules see one consistent snapshot of randomness. Draws always
// come from the sampler serially; the backend only schedules the elementwise
// application, keeping results identical across backends.
func (w *World) formationExtinction() {
	w.sampler.FillBasisPoints(w.rndHum)
	w.sampler.FillBasisPoints(w.rndAct)
	w.sampler.FillBasisPoints(w.rndExt)

	hum, act, cld := w.hum, w.act, w.cld
	w.backend.Run(w.size.Volume(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if w.rndHum[i] < w.pHum[i] {
				hum[i] = 1
			}
			if w.rndAct[i] < w.pAct[i] {
				act[i] = 1
			}
			if w.rndExt[i] <= w.pExt[i] {
				cld[i] = 0
			}
		}
	})
}
