package clouds

import (
	"fmt"
	"strconv"

	"github.com/SKittan/3DvoxGen/internal/core"
)

// Parameters exposes the world configuration as a parameter snapshot for
// CLI inspection.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("d", "Depth", w.cfg.Depth),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
	}

	for i, zone := range w.cfg.Params.Zones {
		groups = append(groups, core.ParameterGroup{
			Name:    fmt.Sprintf("Zone %d", i+1),
			Summary: "Elliptical probability volume",
			Params: []core.Parameter{
				floatParam("c_x", "Center x", zone.CenterX),
				floatParam("c_y", "Center y", zone.CenterY),
				floatParam("c_z", "Center z", zone.CenterZ),
				floatParam("f_x", "Stretch x", zone.StretchX),
				floatParam("f_y", "Stretch y", zone.StretchY),
				floatParam("f_z", "Stretch z", zone.StretchZ),
				intParam("p_hum", "Humidity probability (bp)", zone.PHum),
				intParam("p_act", "Ignition probability (bp)", zone.PAct),
				intParam("p_ext", "Extinction probability (bp)", zone.PExt),
				floatParam("radius", "Radius", zone.Radius),
				floatParam("overlap", "Overlap", zone.Overlap),
			},
		})
	}

	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}
