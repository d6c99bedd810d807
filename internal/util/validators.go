package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate 是共享的表单校验器
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)
	return v
}

// RegisterValidations 注册自定义校验规则，gin 的 binding 引擎也会调用它
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", ValidateNotBlank)
}

// ValidateNotBlank 验证字符串去掉空白后不为空
func ValidateNotBlank(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
