// Package features maps resolved input records to the fixed-order numeric
// vectors the predictors were trained on.
package features

import "heartcheck/internal/models"

// HeartNames is the trained column order of the heart risk model.
// Reordering it silently corrupts predictions.
var HeartNames = []string{
	"Age",
	"Gender",
	"BMI",
	"Smoking",
	"Alcohol_Intake",
	"Physical_Activity",
	"Salt_Intake",
	"Blood_Pressure",
	"Cholesterol",
	"Diabetes",
	"Hypertension",
	"BMI_Age",
	"BP_Chol",
}

// CholesterolNames is the trained column order of the cholesterol model.
var CholesterolNames = []string{
	"Fat_Intake",
	"Protein_Intake",
	"Carbohydrate_Intake",
}

// Heart builds the 13-feature heart vector, including the BMI_Age and
// BP_Chol cross products.
func Heart(r models.HeartRecord) []float64 {
	return []float64{
		r.Age,
		binary(r.Male),
		r.BMI,
		binary(r.Smoking),
		binary(r.AlcoholIntake),
		r.PhysicalActivity,
		r.SaltIntake,
		r.BloodPressure,
		r.Cholesterol,
		binary(r.Diabetes),
		binary(r.Hypertension),
		r.BMI * r.Age,
		r.BloodPressure * r.Cholesterol,
	}
}

// Cholesterol builds the 3-feature cholesterol vector.
func Cholesterol(r models.CholesterolRecord) []float64 {
	return []float64{
		r.FatIntake,
		r.ProteinIntake,
		r.CarbohydrateIntake,
	}
}

func binary(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
