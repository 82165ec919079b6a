package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/patch"
	"github.com/xiebiao/library/pkg/response"
)

const (
	msgRequired = "Missing data for required field."
	msgNull     = "Field may not be null."
	msgInvalid  = "Invalid value."
	schemaField = "_schema"
)

// 字段错误使用json名称(first_name)而不是结构体字段名(FirstName)
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON 读取请求体并绑定到req
// 步骤：
// 1. 解析顶层键(判断字段是否出现、是否为null)
// 2. notNull中的字段显式为null时直接返回字段错误
// 3. 解码并执行binding tag校验
// 失败时已写出响应，调用方直接return
func bindJSON(c *gin.Context, req interface{}, notNull ...string) (patch.Doc, bool) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return nil, false
	}

	doc, err := patch.Parse(body)
	if err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return nil, false
	}

	if nulls := doc.NullKeys(notNull...); len(nulls) > 0 {
		fields := make(map[string][]string, len(nulls))
		for _, key := range nulls {
			fields[key] = []string{msgNull}
		}
		response.ValidationError(c, fields)
		return nil, false
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		renderBindError(c, err)
		return nil, false
	}
	return doc, true
}

// renderBindError 绑定错误 → 400
// 类型错误和校验错误返回字段级错误，其余(JSON格式错误、空请求体)返回Malformed request body
func renderBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = schemaField
		}
		response.ValidationError(c, map[string][]string{
			field: {dto.InvalidTypeMessage(typeErr.Type)},
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationError(c, translateValidation(validationErrs))
		return
	}

	response.Error(c, apperrors.ErrBindError.WithCause(err))
}

func translateValidation(errs validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	case "len":
		return fmt.Sprintf("Length must be %s.", fe.Param())
	case "email":
		return "Not a valid email address."
	default:
		return msgInvalid
	}
}

// parseID 解析路径参数:id，非法id按资源不存在处理
func parseID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, notFound)
		return 0, false
	}
	return uint(id), true
}

// pageQuery 解析page、per_page，非法值回退默认值
func pageQuery(c *gin.Context) pagination.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return pagination.New(page, perPage)
}

// optionalUintQuery 可选的整数查询参数(如book_id)
func optionalUintQuery(c *gin.Context, key string) (*uint, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.ValidationError(c, map[string][]string{key: {"Not a valid integer."}})
		return nil, false
	}
	id := uint(v)
	return &id, true
}
