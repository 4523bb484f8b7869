package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalValue достает decimal из поля. Поля decimal.Decimal приходят сюда строкой, см. decimalTypeFunc.
func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// validateDecimalGt0 сумма строго больше нуля.
func validateDecimalGt0(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.IsPositive()
}

// validateDecimalScale не больше Param знаков после запятой.
func validateDecimalScale(fl validator.FieldLevel) bool {
	scale, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	d, ok := decimalValue(fl)
	return ok && d.Equal(d.Truncate(int32(scale)))
}

func validateServiceType(fl validator.FieldLevel) bool {
	return domain.ServiceType(fl.Field().String()).Valid()
}

func validateServiceStatus(fl validator.FieldLevel) bool {
	return domain.ServiceStatusType(fl.Field().String()).Valid()
}

// decimalTypeFunc отдает валидатору decimal.Decimal как строку, иначе теги на полях-структурах не применяются.
func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// jsonTagName в ошибках валидации используем имя поля из json тега.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

var (
	registerOnce sync.Once
	registerErr  error
)

func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(jsonTagName)
		v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

		validations := map[string]validator.Func{
			"max_bytes":      validateMaxBytes,
			"dec_gt0":        validateDecimalGt0,
			"dec_scale":      validateDecimalScale,
			"service_type":   validateServiceType,
			"service_status": validateServiceStatus,
		}
		for tag, fn := range validations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("validator registration: %s", err.Error())
				return
			}
		}
	})
	return registerErr
}

// validationErrorText человекочитаемое описание ошибки валидации поля.
func validationErrorText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max", "max_bytes":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "gt", "dec_gt0":
		return "Ensure this value is greater than zero."
	case "dec_scale":
		return fmt.Sprintf("Ensure that there are no more than %s decimal places.", fe.Param())
	case "service_type", "service_status":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func validationErrorsMap(valErrs validator.ValidationErrors) map[string]string {
	res := make(map[string]string, len(valErrs))
	for _, fe := range valErrs {
		res[fe.Field()] = validationErrorText(fe)
	}
	return res
}
