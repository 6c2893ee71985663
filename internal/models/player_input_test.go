package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPlayerInputUnmarshal_SnakeAndCamel(t *testing.T) {
	input := `{"first_name": "  Ada ", "lastName": "Lovelace", "position": "qb", "jerseyNumber": "7", "age": 24, "height_in": "74.0", "college": "", "unknown": true}`

	var in PlayerInput
	if err := json.Unmarshal([]byte(input), &in); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if in.FirstName == nil || *in.FirstName != "Ada" {
		t.Errorf("FirstName = %v, want Ada", in.FirstName)
	}
	if in.LastName == nil || *in.LastName != "Lovelace" {
		t.Errorf("LastName = %v, want Lovelace", in.LastName)
	}
	if in.JerseyNumber == nil || *in.JerseyNumber != 7 {
		t.Errorf("JerseyNumber = %v, want 7", in.JerseyNumber)
	}
	if in.Age == nil || *in.Age != 24 {
		t.Errorf("Age = %v, want 24", in.Age)
	}
	if in.HeightIn == nil || *in.HeightIn != 74 {
		t.Errorf("HeightIn = %v, want 74", in.HeightIn)
	}
	if !in.Has(FieldCollege) || !in.IsNull(FieldCollege) {
		t.Errorf("college should be present and null")
	}
	if in.Has(FieldStatus) {
		t.Errorf("status should be absent")
	}

	in.Normalize()
	if *in.Position != "QB" {
		t.Errorf("Position = %q, want QB", *in.Position)
	}
}

func TestPlayerInputUnmarshal_TypeErrors(t *testing.T) {
	input := `{"age": "old", "weight_lb": 200.5, "first_name": 12}`

	var in PlayerInput
	err := json.Unmarshal([]byte(input), &in)

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{FieldAge, FieldWeightLb, FieldFirstName} {
		if len(fe[field]) == 0 {
			t.Errorf("missing error for %s", field)
		}
	}
	if fe[FieldAge][0] != "The age field must be an integer." {
		t.Errorf("age message = %q", fe[FieldAge][0])
	}
}

func TestPlayerInputValues(t *testing.T) {
	input := `{"status": "inactive", "jersey_number": null, "weight_lb": 250}`

	var in PlayerInput
	if err := json.Unmarshal([]byte(input), &in); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	got := in.Values()
	want := []ColumnValue{
		{Column: FieldJerseyNumber, Value: nil},
		{Column: FieldStatus, Value: "inactive"},
		{Column: FieldWeightLb, Value: 250},
	}

	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Column != want[i].Column || got[i].Value != want[i].Value {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPlayerInputEmpty(t *testing.T) {
	var in PlayerInput
	if err := json.Unmarshal([]byte(`{"nickname": "x"}`), &in); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !in.Empty() {
		t.Error("payload with only unknown keys should be empty")
	}
}
