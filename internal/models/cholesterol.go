package models

import (
	"encoding/json"

	"heartcheck/internal/validation"
)

// CholesterolInput is the raw /predict_cholesterol body.
type CholesterolInput struct {
	FatIntake          json.RawMessage
	ProteinIntake      json.RawMessage
	CarbohydrateIntake json.RawMessage
}

// CholesterolRecord holds daily intakes in grams, defaulting to 0.
type CholesterolRecord struct {
	FatIntake          float64
	ProteinIntake      float64
	CarbohydrateIntake float64
}

// DecodeCholesterolInput parses a request body into a CholesterolInput.
func DecodeCholesterolInput(body []byte) (*CholesterolInput, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	return &CholesterolInput{
		FatIntake:          fields["Fat_Intake"],
		ProteinIntake:      fields["Protein_Intake"],
		CarbohydrateIntake: fields["Carbohydrate_Intake"],
	}, nil
}

// Record resolves the input with defaults applied.
func (in *CholesterolInput) Record() (CholesterolRecord, error) {
	fat, err := validation.ParseNumber("Fat_Intake", in.FatIntake, 0)
	if err != nil {
		return CholesterolRecord{}, err
	}
	protein, err := validation.ParseNumber("Protein_Intake", in.ProteinIntake, 0)
	if err != nil {
		return CholesterolRecord{}, err
	}
	carbs, err := validation.ParseNumber("Carbohydrate_Intake", in.CarbohydrateIntake, 0)
	if err != nil {
		return CholesterolRecord{}, err
	}

	return CholesterolRecord{
		FatIntake:          fat,
		ProteinIntake:      protein,
		CarbohydrateIntake: carbs,
	}, nil
}
