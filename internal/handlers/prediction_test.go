package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"heartcheck/internal/models"
	"heartcheck/internal/prediction"
	"heartcheck/internal/predictor"
)

func newPredictionApp(heart, cholesterol predictor.Predictor) *fiber.App {
	store := &predictor.Store{
		Heart:       predictor.NewSlot("heart", heart),
		Cholesterol: predictor.NewSlot("cholesterol", cholesterol),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPredictionHandler(prediction.NewService(store, logger))

	app := fiber.New()
	app.Post("/predict", h.Heart)
	app.Post("/predict_cholesterol", h.Cholesterol)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func decodePrediction(t *testing.T, data []byte) float64 {
	t.Helper()
	var out models.PredictionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid prediction body %s: %v", data, err)
	}
	return out.Prediction
}

const scenarioOne = `{
	"Age": 30, "Gender": "Male", "BMI": 25, "Smoking": "No", "Alcohol_Intake": "No",
	"Physical_Activity": 0, "Salt_Intake": 5, "Blood_Pressure": 120, "Cholesterol": 200,
	"Diabetes": "No", "Hypertension": "No"
}`

func TestPredict_FallbackScenarios(t *testing.T) {
	app := newPredictionApp(nil, nil)

	tests := []struct {
		name string
		path string
		body string
		want float64
	}{
		{"heart thresholds", "/predict", scenarioOne, 10},
		{"heart smoking and diabetes", "/predict", strings.NewReplacer(
			`"Smoking": "No"`, `"Smoking": "Yes"`,
			`"Diabetes": "No"`, `"Diabetes": "Yes"`,
		).Replace(scenarioOne), 45},
		{"heart form strings", "/predict", `{"Age": "31", "BMI": "25", "Salt_Intake": "5", "Blood_Pressure": "120", "Cholesterol": "200"}`, 10.5},
		{"heart empty object", "/predict", `{}`, 10},
		{"cholesterol zero", "/predict_cholesterol", `{"Fat_Intake": 0, "Protein_Intake": 0, "Carbohydrate_Intake": 0}`, 150},
		{"cholesterol typical", "/predict_cholesterol", `{"Fat_Intake": 100, "Protein_Intake": 50, "Carbohydrate_Intake": 200}`, 230},
		{"cholesterol high", "/predict_cholesterol", `{"Fat_Intake": 900}`, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := post(t, app, tt.path, tt.body)
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("expected 200, got %d: %s", resp.StatusCode, data)
			}
			if got := decodePrediction(t, data); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("prediction = %v, want %v", got, tt.want)
			}
			if src := resp.Header.Get(SourceHeader); src != "fallback" {
				t.Errorf("%s = %q, want fallback", SourceHeader, src)
			}
		})
	}
}

func TestPredict_Idempotent(t *testing.T) {
	app := newPredictionApp(nil, nil)
	body := `{"Age": 61, "BMI": 29.4, "Smoking": "Yes", "Physical_Activity": 2}`

	_, first := post(t, app, "/predict", body)
	for i := 0; i < 3; i++ {
		_, again := post(t, app, "/predict", body)
		if string(again) != string(first) {
			t.Fatalf("response %d = %s, want %s", i, again, first)
		}
	}
}

func TestPredict_RequestErrors(t *testing.T) {
	app := newPredictionApp(nil, nil)

	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{"non-numeric age", "/predict", `{"Age": "abc"}`, `Age: "abc" is not a number`},
		{"null blood pressure", "/predict", `{"Blood_Pressure": null}`, "Blood_Pressure"},
		{"malformed heart body", "/predict", `{"Age": `, "malformed request"},
		{"heart body is array", "/predict", `[1, 2]`, "malformed request"},
		{"empty body", "/predict", ``, "malformed request"},
		{"non-numeric fat", "/predict_cholesterol", `{"Fat_Intake": "a lot"}`, "Fat_Intake"},
		{"malformed cholesterol body", "/predict_cholesterol", `not json`, "malformed request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := post(t, app, tt.path, tt.body)
			if resp.StatusCode != fiber.StatusInternalServerError {
				t.Fatalf("expected 500, got %d: %s", resp.StatusCode, data)
			}
			var out models.ErrorResponse
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("invalid error body %s: %v", data, err)
			}
			if !strings.Contains(out.Error, tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", out.Error, tt.wantMsg)
			}
			if strings.Contains(string(data), "prediction") {
				t.Errorf("error response must not carry a prediction: %s", data)
			}
		})
	}
}

func TestPredict_ModelPath(t *testing.T) {
	var got []float64
	heart := predictor.Func(func(f []float64) (float64, error) {
		got = f
		return 140, nil
	})
	chol := predictor.Func(func([]float64) (float64, error) { return 95, nil })
	app := newPredictionApp(heart, chol)

	resp, data := post(t, app, "/predict", scenarioOne)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, data)
	}
	if v := decodePrediction(t, data); v != 100 {
		t.Errorf("heart prediction = %v, want clamped 100", v)
	}
	if src := resp.Header.Get(SourceHeader); src != "model" {
		t.Errorf("%s = %q, want model", SourceHeader, src)
	}
	want := []float64{30, 1, 25, 0, 0, 0, 5, 120, 200, 0, 0, 750, 24000}
	if len(got) != len(want) {
		t.Fatalf("model received %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("model received %v, want %v", got, want)
		}
	}

	resp, data = post(t, app, "/predict_cholesterol", `{}`)
	if v := decodePrediction(t, data); v != 120 {
		t.Errorf("cholesterol prediction = %v, want clamped 120", v)
	}
	if src := resp.Header.Get(SourceHeader); src != "model" {
		t.Errorf("%s = %q, want model", SourceHeader, src)
	}
}

func TestPredict_BrokenModelDegrades(t *testing.T) {
	broken := predictor.Func(func([]float64) (float64, error) { return 0, errors.New("bad artifact") })
	app := newPredictionApp(broken, broken)

	resp, data := post(t, app, "/predict", scenarioOne)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("broken model must not fail the request, got %d: %s", resp.StatusCode, data)
	}
	if v := decodePrediction(t, data); v != 10 {
		t.Errorf("prediction = %v, want fallback 10", v)
	}
	if src := resp.Header.Get(SourceHeader); src != "fallback" {
		t.Errorf("%s = %q, want fallback", SourceHeader, src)
	}

	_, data = post(t, app, "/predict_cholesterol", `{"Fat_Intake": 100, "Protein_Intake": 50, "Carbohydrate_Intake": 200}`)
	if v := decodePrediction(t, data); math.Abs(v-230) > 1e-9 {
		t.Errorf("prediction = %v, want fallback 230", v)
	}
}
