package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	cErr "shiftlist/internal/pkg/error"
	"shiftlist/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(obj any, err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Sprintf("Validation error: %s", err.Error())
	}
	var b strings.Builder
	b.WriteString("Validation error:\n")
	for _, fe := range errs {
		f, ok := structField(obj, fe.StructField())
		name, ftype, rules := fe.StructField(), "", []string(nil)
		if ok {
			if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
				name = strings.Split(tag, ",")[0]
			}
			ftype = f.Type.String()
			if tag := f.Tag.Get("binding"); tag != "" {
				rules = strings.Split(tag, ",")
			}
		}
		b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
			name, ftype, fe.Tag(), rules))
	}
	return b.String()
}

func structField(obj any, name string) (reflect.StructField, bool) {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(name)
}

// BindAndValidate 綁定 JSON body；DTO 實作 request.Validator 時優先使用自訂訊息
func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := req.(request.Validator); ok {
			return err, request.GetError(req, err)
		}
		return err, cErr.BadRequestBody(ValidationErrorResponse(req, err))
	}
	return nil, nil
}

// GetIntQuery 未帶參數時回傳 defaultVal；非數字回傳 bad-request/params
func GetIntQuery(c *gin.Context, key string, defaultVal int) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, cErr.BadRequestParams(fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

// IsPlainFileName 只接受單純檔名（不含目錄、不含 ..）且副檔名符合
func IsPlainFileName(name, ext string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ext)
}
