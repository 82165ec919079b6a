package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/pagination"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	h(c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessWithPage(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		SuccessWithPage(c, []string{}, pagination.NewMeta(pagination.New(10, 2), 5))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{}, body["data"], "空列表序列化为[]")

	page := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 10, page["page"])
	assert.EqualValues(t, 2, page["per_page"])
	assert.EqualValues(t, 5, page["total"])
	assert.EqualValues(t, 3, page["pages"])
}

func TestCreated(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		Created(c, "Author created successfully", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Author created successfully", body["message"])
}

func TestError(t *testing.T) {
	t.Run("业务错误", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			Error(c, apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found"))
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Author not found", body["message"])
		assert.NotContains(t, body, "data", "错误响应不输出data")
	})

	t.Run("内部错误不泄露细节", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			Error(c, apperrors.Wrap(errors.New("dial tcp 10.0.0.1:3306"), "failed to query authors"))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "failed to query authors", body["message"])
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	})
}

func TestSuccessWithMessage_NilData(t *testing.T) {
	_, body := serve(t, func(c *gin.Context) {
		SuccessWithMessage(c, "Author deleted successfully", nil)
	})

	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
}

func TestValidationError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		ValidationError(c, map[string][]string{"title": {"Missing data for required field."}})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation error", body["message"])
	fields := body["errors"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Missing data for required field."}, fields["title"])
}
