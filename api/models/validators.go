package models

import (
	"fmt"
	"sync"

	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func oneOf[T ~string](allowed ...T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := T(fl.Field().String())
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// RegisterValidators adds the domain tags used in request bindings.
func RegisterValidators(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"grade":          oneOf(storage.GradeA, storage.GradeB, storage.GradeC, storage.GradeNone),
		"section":        oneOf(storage.SectionSingle, storage.SectionGroup),
		"penalty_target": oneOf(storage.PenaltyTargetStudent, storage.PenaltyTargetTeam),
		"outcome":        oneOf(contest.OutcomeApproved, contest.OutcomeRejected),
		"result_status":  oneOf(storage.StatusPending, storage.StatusApproved, storage.StatusRejected),
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

var (
	bindingOnce sync.Once
	bindingErr  error
)

// RegisterBindingValidators installs the domain tags on gin's validator.
func RegisterBindingValidators() error {
	bindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			bindingErr = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		bindingErr = RegisterValidators(v)
	})
	return bindingErr
}
