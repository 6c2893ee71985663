package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rosterboard/roster-api/internal/models"
)

// MinSeason is the earliest season the leaderboard accepts.
const MinSeason = 1990

var errBodyTooLarge = errors.New("request body too large")

func newValidator(now func() time.Time) *validator.Validate {
	v := validator.New()
	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= MinSeason && year <= int64(now().Year())
	})
	return v
}

// validate runs struct validation and converts failures to FieldErrors.
func (h *Handler) validate(dst interface{}) models.FieldErrors {
	errs := models.FieldErrors{}
	err := h.validator.Struct(dst)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.logger.Warnw("Validation failed unexpectedly", "error", err)
		errs.Add("payload", "The payload is invalid.")
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), h.validationMessage(fe))
	}
	return errs
}

func (h *Handler) validationMessage(fe validator.FieldError) string {
	field := models.HumanizeField(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "season":
		return fmt.Sprintf("The %s field must be between %d and %d.", field, MinSeason, h.now().Year())
	case "min":
		if isString {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// bindQuery fills the `query`-tagged string and *int fields of dst.
// Blank values are treated as absent.
func bindQuery(values url.Values, dst interface{}) models.FieldErrors {
	errs := models.FieldErrors{}
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("query")
		if name == "" {
			continue
		}
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Pointer:
			n, err := strconv.Atoi(raw)
			if err != nil {
				errs.Add(name, fmt.Sprintf("The %s field must be an integer.", models.HumanizeField(name)))
				continue
			}
			fv.Set(reflect.ValueOf(&n))
		}
	}
	return errs
}

// bindAndValidate binds query parameters and validates the result.
func (h *Handler) bindAndValidate(r *http.Request, dst interface{}) models.FieldErrors {
	errs := bindQuery(r.URL.Query(), dst)
	for field, msgs := range h.validate(dst) {
		if _, bad := errs[field]; bad {
			continue
		}
		errs[field] = msgs
	}
	return errs
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return err
	}
	return nil
}

// bodyError writes the response for a decodeJSON failure.
func (h *Handler) bodyError(w http.ResponseWriter, err error) {
	var fieldErrs models.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		h.validationResponse(w, fieldErrs)
	case errors.Is(err, errBodyTooLarge):
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
	}
}

// requestURL rebuilds the absolute URL of r for pagination links.
func requestURL(r *http.Request) url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}

// pathOf is requestURL without the query string.
func pathOf(u url.URL) string {
	u.RawQuery = ""
	return u.String()
}
