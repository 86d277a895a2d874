package validation

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     json.RawMessage
		want    float64
		wantErr bool
	}{
		{"missing uses fallback", nil, 7, false},
		{"integer", json.RawMessage(`42`), 42, false},
		{"float", json.RawMessage(`27.5`), 27.5, false},
		{"negative", json.RawMessage(`-3`), -3, false},
		{"exponent", json.RawMessage(`1e2`), 100, false},
		{"numeric string", json.RawMessage(`"55"`), 55, false},
		{"numeric string with spaces", json.RawMessage(`"  12.5 "`), 12.5, false},
		{"true is one", json.RawMessage(`true`), 1, false},
		{"false is zero", json.RawMessage(`false`), 0, false},
		{"non-numeric string", json.RawMessage(`"abc"`), 0, true},
		{"empty string", json.RawMessage(`""`), 0, true},
		{"null", json.RawMessage(`null`), 0, true},
		{"array", json.RawMessage(`[1]`), 0, true},
		{"object", json.RawMessage(`{"v":1}`), 0, true},
		{"nan string", json.RawMessage(`"NaN"`), 0, true},
		{"inf string", json.RawMessage(`"inf"`), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber("Age", tt.raw, 7)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNumber(%s) expected error, got %v", tt.raw, got)
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error %v does not wrap ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%s) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseNumberErrorNamesField(t *testing.T) {
	_, err := ParseNumber("Blood_Pressure", json.RawMessage(`"high"`), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid input: Blood_Pressure: "high" is not a number`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestMatchToken(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		fallback string
		want     bool
	}{
		{"missing with matching default", nil, "Yes", true},
		{"missing with other default", nil, "No", false},
		{"exact token", json.RawMessage(`"Yes"`), "No", true},
		{"other token", json.RawMessage(`"No"`), "No", false},
		{"case differs", json.RawMessage(`"yes"`), "No", false},
		{"unexpected string", json.RawMessage(`"maybe"`), "No", false},
		{"number", json.RawMessage(`1`), "No", false},
		{"boolean", json.RawMessage(`true`), "No", false},
		{"null", json.RawMessage(`null`), "Yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchToken(tt.raw, "Yes", tt.fallback); got != tt.want {
				t.Errorf("MatchToken(%s, Yes, %q) = %v, want %v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}
