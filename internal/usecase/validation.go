package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/gambling/internal/domain/model"
)

var (
	msgNegativePoints = "Bet can't be negative"
	msgPointsTooLarge = fmt.Sprintf("Bet can't exceed %d", model.MaxStake)
	msgNumberRange    = fmt.Sprintf("Winning number must be between %d and %d", model.MinNumber, model.MaxNumber)
)

type betInput struct {
	Points int64 `json:"points" validate:"min=0"`
	Number int   `json:"number" validate:"min=0,max=9"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateBet returns field-keyed problems, or nil for a valid bet.
func ValidateBet(points int64, number int) map[string][]string {
	problems := make(map[string][]string)
	if err := validate.Struct(betInput{Points: points, Number: number}); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return map[string][]string{"request": {err.Error()}}
		}
		for _, fe := range fieldErrs {
			field := fe.Field()
			switch field {
			case "points":
				problems[field] = append(problems[field], msgNegativePoints)
			case "number":
				problems[field] = append(problems[field], msgNumberRange)
			default:
				problems[field] = append(problems[field], fmt.Sprintf("field %s is invalid", field))
			}
		}
	}
	if points > model.MaxStake {
		problems["points"] = append(problems["points"], msgPointsTooLarge)
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}
