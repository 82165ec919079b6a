package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 日期格式(YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	dateType    = reflect.TypeOf(Date{})
	decimalType = reflect.TypeOf(Decimal{})
)

// Date 只包含日期部分的时间
// 解析失败返回*json.UnmarshalTypeError，解码器会补全字段名，便于生成字段级错误
type Date struct {
	time.Time
}

// NewDate 由time.Time构造，nil保持nil
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// UnmarshalJSON 解析"2006-01-02"
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: dateType}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: s, Type: dateType}
	}
	d.Time = t
	return nil
}

// MarshalJSON 输出"2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// TimePtr 转换为领域层使用的*time.Time
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// Decimal 金额，请求中可以是数字或数字字符串
type Decimal struct {
	decimal.Decimal
}

// UnmarshalJSON 接受12.5和"12.50"两种写法
func (d *Decimal) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: raw, Type: decimalType}
	}
	d.Decimal = v
	return nil
}

// DecimalPtr 转换为领域层使用的*decimal.Decimal
func (d *Decimal) DecimalPtr() *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Decimal
	return &v
}

// FormatPrice 价格输出为两位小数的字符串，nil保持nil
func FormatPrice(price *decimal.Decimal) *string {
	if price == nil {
		return nil
	}
	s := price.StringFixed(2)
	return &s
}

// InvalidTypeMessage 类型错误对应的字段提示
func InvalidTypeMessage(t reflect.Type) string {
	switch t {
	case dateType:
		return "Not a valid date."
	case decimalType:
		return "Not a valid number."
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Not a valid integer."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Not a valid boolean."
	default:
		return "Invalid input type."
	}
}
