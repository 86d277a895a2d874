package models

import (
	"encoding/json"

	"heartcheck/internal/validation"
)

// Categorical tokens accepted by the heart risk form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	Yes          = "Yes"
	No           = "No"
)

// HeartInput is the raw /predict body. Every field is optional; values are
// kept undecoded until Record resolves them.
type HeartInput struct {
	Age              json.RawMessage
	Gender           json.RawMessage
	BMI              json.RawMessage
	Smoking          json.RawMessage
	AlcoholIntake    json.RawMessage
	PhysicalActivity json.RawMessage
	SaltIntake       json.RawMessage
	BloodPressure    json.RawMessage
	Cholesterol      json.RawMessage
	Diabetes         json.RawMessage
	Hypertension     json.RawMessage
}

// HeartRecord is a resolved heart input with defaults applied.
// Numeric fields default to 0, Male to true and the yes/no fields to false.
type HeartRecord struct {
	Age              float64
	Male             bool
	BMI              float64
	Smoking          bool
	AlcoholIntake    bool
	PhysicalActivity float64
	SaltIntake       float64
	BloodPressure    float64
	Cholesterol      float64
	Diabetes         bool
	Hypertension     bool
}

// DecodeHeartInput parses a request body into a HeartInput.
// Keys are matched exactly; unknown keys are ignored.
func DecodeHeartInput(body []byte) (*HeartInput, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	return &HeartInput{
		Age:              fields["Age"],
		Gender:           fields["Gender"],
		BMI:              fields["BMI"],
		Smoking:          fields["Smoking"],
		AlcoholIntake:    fields["Alcohol_Intake"],
		PhysicalActivity: fields["Physical_Activity"],
		SaltIntake:       fields["Salt_Intake"],
		BloodPressure:    fields["Blood_Pressure"],
		Cholesterol:      fields["Cholesterol"],
		Diabetes:         fields["Diabetes"],
		Hypertension:     fields["Hypertension"],
	}, nil
}

// Record resolves the input, failing with validation.ErrInvalidInput when a
// provided numeric field cannot be coerced.
func (in *HeartInput) Record() (HeartRecord, error) {
	var (
		r   HeartRecord
		err error
	)

	numbers := []struct {
		name string
		raw  json.RawMessage
		dst  *float64
	}{
		{"Age", in.Age, &r.Age},
		{"BMI", in.BMI, &r.BMI},
		{"Physical_Activity", in.PhysicalActivity, &r.PhysicalActivity},
		{"Salt_Intake", in.SaltIntake, &r.SaltIntake},
		{"Blood_Pressure", in.BloodPressure, &r.BloodPressure},
		{"Cholesterol", in.Cholesterol, &r.Cholesterol},
	}
	for _, n := range numbers {
		if *n.dst, err = validation.ParseNumber(n.name, n.raw, 0); err != nil {
			return HeartRecord{}, err
		}
	}

	r.Male = validation.MatchToken(in.Gender, GenderMale, GenderMale)
	r.Smoking = validation.MatchToken(in.Smoking, Yes, No)
	r.AlcoholIntake = validation.MatchToken(in.AlcoholIntake, Yes, No)
	r.Diabetes = validation.MatchToken(in.Diabetes, Yes, No)
	r.Hypertension = validation.MatchToken(in.Hypertension, Yes, No)

	return r, nil
}
