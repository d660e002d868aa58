package controllers

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vnkhanh/survey-engine/models"
)

// RegisterValidators thêm tag question_type và survey_status cho gin binding.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("question_type", func(fl validator.FieldLevel) bool {
		return models.QuestionType(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("survey_status", func(fl validator.FieldLevel) bool {
		return models.SurveyStatus(fl.Field().String()).Valid()
	})
}
