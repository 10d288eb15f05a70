package utils

import (
	"errors"
	"sync"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	validate      *validator.Validate
	translator    ut.Translator
	validatorErr  error
	validatorOnce sync.Once
)

func setupValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	translator, _ = uni.GetTranslator("zh")
	validatorErr = zh_translations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct 按 validate 标签校验结构体，只返回第一个错误的中文描述
func ValidateStruct(v any) error {
	validatorOnce.Do(setupValidator)
	if validatorErr != nil {
		return validatorErr
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	return errors.New(validationErrors[0].Translate(translator))
}
