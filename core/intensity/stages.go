// Package intensity - Crop growth stage tables for late-season detection
package intensity

import "cropcost/core/types"

// stageScale is a crop's ordered growth-stage progression and the stage
// from which the season counts as late
type stageScale struct {
	order    []types.GrowthStage
	lateFrom types.GrowthStage
}

// scales maps known crop types to their stage progressions
var scales = map[types.CropType]stageScale{
	types.CropCorn: {
		order: []types.GrowthStage{
			"VE", "V1", "V2", "V3", "V4", "V5", "V6", "V8", "V10", "V12",
			"VT", "R1", "R2", "R3", "R4", "R5", "R6",
		},
		lateFrom: "R3",
	},
	types.CropSoybeans: {
		order: []types.GrowthStage{
			"VE", "VC", "V1", "V2", "V3", "V4", "V5", "V6",
			"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8",
		},
		lateFrom: "R5",
	},
	types.CropWheat: {
		order: []types.GrowthStage{
			"emergence", "tillering", "jointing", "boot", "heading",
			"flowering", "grain_fill", "maturity",
		},
		lateFrom: "heading",
	},
	types.CropCotton: {
		order: []types.GrowthStage{
			"emergence", "squaring", "first_bloom", "peak_bloom",
			"boll_development", "open_boll", "defoliation",
		},
		lateFrom: "boll_development",
	},
}

// genericLateStages is the fallback late list for unrecognized crop types
// or stage codes
var genericLateStages = map[types.GrowthStage]bool{
	"R4": true, "R5": true, "R6": true, "R7": true, "R8": true,
	"heading": true, "grain_fill": true, "maturity": true,
	"boll_development": true, "defoliation": true, "late": true,
}

// index returns a stage's position on the scale, or -1
func (s stageScale) index(stage types.GrowthStage) int {
	for i, st := range s.order {
		if st == stage {
			return i
		}
	}
	return -1
}

// IsLateSeason reports whether an application window intersects the
// crop's late stages. An empty window is never late. When the crop or the
// stage codes are unrecognized, membership in the generic late list
// decides.
func IsLateSeason(crop types.CropType, start, end types.GrowthStage) bool {
	if start == "" && end == "" {
		return false
	}
	if end == "" {
		end = start
	}
	if start == "" {
		start = end
	}

	scale, ok := scales[crop]
	if ok {
		lateIdx := scale.index(scale.lateFrom)
		startIdx := scale.index(start)
		endIdx := scale.index(end)
		if lateIdx >= 0 && (startIdx >= 0 || endIdx >= 0) {
			// The window reaches the late stages if its far edge does.
			if endIdx < startIdx {
				endIdx = startIdx
			}
			return endIdx >= lateIdx
		}
	}
	return genericLateStages[start] || genericLateStages[end]
}
