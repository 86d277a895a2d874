package prediction

import "heartcheck/internal/models"

// FallbackHeart estimates heart disease risk in percent from additive
// weighted terms. Each risk term is zero at or below its threshold.
func FallbackHeart(r models.HeartRecord) float64 {
	const base = 10.0

	ageRisk := max(0, r.Age-30) * 0.5
	bmiRisk := max(0, r.BMI-25) * 2
	saltRisk := max(0, r.SaltIntake-5) * 1
	bpRisk := max(0, r.BloodPressure-120) * 0.2
	cholRisk := max(0, r.Cholesterol-200) * 0.1

	// Only subtractive term, capped at 15.
	activityProtect := min(r.PhysicalActivity*1.5, 15)

	total := base + ageRisk + bmiRisk +
		flag(r.Smoking, 15) + flag(r.AlcoholIntake, 10) -
		activityProtect + saltRisk + bpRisk + cholRisk +
		flag(r.Diabetes, 20) + flag(r.Hypertension, 15)

	return HeartBounds.Clamp(total)
}

// FallbackCholesterol estimates serum cholesterol in mg/dL from daily
// fat, protein and carbohydrate intake.
func FallbackCholesterol(r models.CholesterolRecord) float64 {
	total := 150 + r.FatIntake*0.5 + r.ProteinIntake*0.2 + r.CarbohydrateIntake*0.1
	return CholesterolBounds.Clamp(total)
}

func flag(set bool, weight float64) float64 {
	if set {
		return weight
	}
	return 0
}
