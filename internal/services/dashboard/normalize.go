package dashboard

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
)

// TimezoneAuto lets the provider resolve the timezone from the coordinates.
const TimezoneAuto = "auto"

var queryValidator = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Normalize shapes a query into the provider's parameter contract. It does
// not validate; see ValidateQuery.
func Normalize(q models.Query) models.DailyParams {
	return models.DailyParams{
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Daily:     models.DailyParam(),
		Timezone:  TimezoneAuto,
	}
}

// ValidateQuery checks a query at the input boundary and returns a
// *ValidationError listing every rejected field.
func ValidateQuery(q models.Query) error {
	err := queryValidator.Struct(q)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate query")
	}

	verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return verr
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return "must be a number"
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}
