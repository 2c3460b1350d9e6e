package request

import (
	"errors"
	"regexp"

	cErr "shiftlist/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator DTO 可提供自訂錯誤訊息，key 為 "<欄位>.<規則>"
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 從請求和錯誤中獲取第一個錯誤信息
func GetError(request any, err error) *cErr.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return cErr.BadRequestBody("invalid request body: " + err.Error())
	}
	v, isValidator := request.(Validator)
	for _, fe := range errs {
		if isValidator {
			field := reg.ReplaceAllString(fe.Field(), ".*")
			if message, exist := v.GetMessages()[field+"."+fe.Tag()]; exist {
				return cErr.BadRequestBody(message)
			}
		}
		return cErr.BadRequestBody(fe.Error())
	}
	return cErr.BadRequestBody("parameter error")
}
