package takeoff

// Reinforcing-steel reference tables. Unit weight follows the standard
// steel density formula (d_mm² × 0.00617 kg/m); grade and DPWH pay item are
// derived from the nominal diameter unless the template overrides the item.

const unitWeightFactor = 0.00617

const (
	dpwhRebarItemGrade40 = "404(1)a"
	dpwhRebarItemGrade60 = "404(1)b"
)

// UnitWeightPerMeter returns kg/m for a nominal bar diameter in mm. The
// same table serves main bars, secondary bars, stirrups and ties.
func UnitWeightPerMeter(diameterMM float64) float64 {
	return diameterMM * diameterMM * unitWeightFactor
}

// RebarGrade maps a nominal diameter to the steel grade carried as a line
// assumption. Small bars (≤12mm) are Grade 40, larger bars Grade 60.
func RebarGrade(diameterMM float64) string {
	if diameterMM <= 12 {
		return "Grade 40"
	}
	return "Grade 60"
}

// DPWHRebarItem maps a nominal diameter to the reinforcing-steel pay item.
func DPWHRebarItem(diameterMM float64) string {
	if diameterMM <= 12 {
		return dpwhRebarItemGrade40
	}
	return dpwhRebarItemGrade60
}
