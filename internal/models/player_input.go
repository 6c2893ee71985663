package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Player payload keys. They double as column names and error keys.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPosition        = "position"
	FieldJerseyNumber    = "jersey_number"
	FieldStatus          = "status"
	FieldAge             = "age"
	FieldHeightIn        = "height_in"
	FieldWeightLb        = "weight_lb"
	FieldExperienceYears = "experience_years"
	FieldCollege         = "college"
	FieldHeadshotURL     = "headshot_url"
)

// RequiredPlayerFields must be present on create and may not be nulled on update.
var RequiredPlayerFields = []string{FieldFirstName, FieldLastName, FieldPosition, FieldStatus}

// PlayerInput is a create or partial-update payload. A nil pointer is
// either an absent key or an explicit null; Has tells them apart.
type PlayerInput struct {
	FirstName       *string `json:"first_name" validate:"omitnil,max=80"`
	LastName        *string `json:"last_name" validate:"omitnil,max=80"`
	Position        *string `json:"position" validate:"omitnil,max=10"`
	JerseyNumber    *int    `json:"jersey_number" validate:"omitnil,min=0,max=99"`
	Status          *string `json:"status" validate:"omitnil,oneof=active inactive"`
	Age             *int    `json:"age" validate:"omitnil,min=18,max=60"`
	HeightIn        *int    `json:"height_in" validate:"omitnil,min=48,max=90"`
	WeightLb        *int    `json:"weight_lb" validate:"omitnil,min=120,max=450"`
	ExperienceYears *int    `json:"experience_years" validate:"omitnil,min=0,max=30"`
	College         *string `json:"college" validate:"omitnil,max=120"`
	HeadshotURL     *string `json:"headshot_url" validate:"omitnil,url,max=255"`

	present map[string]bool
}

// ColumnValue is one supplied field, ready to bind as a query argument.
type ColumnValue struct {
	Column string
	Value  any
}

type inputField struct {
	index int
	name  string
	alias string
}

var (
	playerInputFields     []inputField
	playerInputFieldsOnce sync.Once
)

func getPlayerInputFields() []inputField {
	playerInputFieldsOnce.Do(func() {
		t := reflect.TypeOf(PlayerInput{})
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			playerInputFields = append(playerInputFields, inputField{index: i, name: name, alias: snakeToCamel(name)})
		}
	})
	return playerInputFields
}

// Has reports whether the payload supplied field, null included.
func (in *PlayerInput) Has(field string) bool {
	return in.present[field]
}

// IsNull reports whether field was supplied as null or as an empty string.
func (in *PlayerInput) IsNull(field string) bool {
	if !in.Has(field) {
		return false
	}
	for _, f := range getPlayerInputFields() {
		if f.name == field {
			return reflect.ValueOf(in).Elem().Field(f.index).IsNil()
		}
	}
	return false
}

// Empty reports whether no known field was supplied.
func (in *PlayerInput) Empty() bool {
	return len(in.present) == 0
}

// Normalize upper-cases the position code.
func (in *PlayerInput) Normalize() {
	if in.Position != nil {
		p := strings.ToUpper(*in.Position)
		in.Position = &p
	}
}

// Values lists the supplied fields in declaration order. Nulls map to nil.
func (in *PlayerInput) Values() []ColumnValue {
	v := reflect.ValueOf(in).Elem()
	var out []ColumnValue
	for _, f := range getPlayerInputFields() {
		if !in.present[f.name] {
			continue
		}
		fv := v.Field(f.index)
		if fv.IsNil() {
			out = append(out, ColumnValue{Column: f.name, Value: nil})
			continue
		}
		out = append(out, ColumnValue{Column: f.name, Value: fv.Elem().Interface()})
	}
	return out
}

// UnmarshalJSON accepts snake_case or camelCase keys and numbers sent as
// strings, which is what HTML forms tend to produce. Empty strings are
// treated as null. Type mismatches come back as FieldErrors.
func (in *PlayerInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("player payload: %w", err)
	}

	*in = PlayerInput{present: make(map[string]bool)}
	v := reflect.ValueOf(in).Elem()
	errs := FieldErrors{}

	for _, f := range getPlayerInputFields() {
		rawVal, ok := raw[f.name]
		if !ok {
			if rawVal, ok = raw[f.alias]; !ok {
				continue
			}
		}
		in.present[f.name] = true

		fv := v.Field(f.index)
		if err := decodeFlexValue(fv, rawVal); err != nil {
			errs.Add(f.name, fmt.Sprintf("The %s field %s.", HumanizeField(f.name), err.Error()))
		}
	}

	return errs.Err()
}

// decodeFlexValue sets a *string or *int field from a raw JSON value.
func decodeFlexValue(fv reflect.Value, rawVal json.RawMessage) error {
	trimmed := bytes.TrimSpace(rawVal)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	isString := len(trimmed) > 0 && trimmed[0] == '"'
	if isString {
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("must be a string")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	}

	switch fv.Type().Elem().Kind() {
	case reflect.String:
		if !isString {
			return fmt.Errorf("must be a string")
		}
		fv.Set(reflect.ValueOf(&s))
	case reflect.Int:
		var n float64
		if isString {
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("must be an integer")
			}
			n = parsed
		} else if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("must be an integer")
		}
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return fmt.Errorf("must be an integer")
		}
		i := int(n)
		fv.Set(reflect.ValueOf(&i))
	}
	return nil
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// HumanizeField turns a payload key into words for messages.
func HumanizeField(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
