package web

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, method, target, body string) (*Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, target, reader)

	return NewContext(c), w
}

func TestGetQueryFunc(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/users?page=2&search=bo", "")

	page, ok := c.GetQueryFunc(reflect.Int, "page").(*int)
	require.True(t, ok)
	require.NotNil(t, page)
	require.Equal(t, 2, *page)

	pageSize, ok := c.GetQueryFunc(reflect.Int, "pageSize").(*int)
	require.True(t, ok)
	require.Nil(t, pageSize)

	search, ok := c.GetQueryFunc(reflect.String, "search").(*string)
	require.True(t, ok)
	require.Equal(t, "bo", *search)

	require.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncInvalid(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/users?page=abc", "")

	page, ok := c.GetQueryFunc(reflect.Int, "page").(*int)
	require.True(t, ok)
	require.Nil(t, page)

	err := c.ValidQuery()
	require.Error(t, err)

	var requestErr *Error
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, http.StatusBadRequest, requestErr.Status)
}

func TestGetParam(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/users/7", "")
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	id := c.GetParam(reflect.Int, "id").(int)
	require.Equal(t, 7, id)
	require.NoError(t, c.ValidParam())
}

func TestGetParamInvalid(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/users/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	id := c.GetParam(reflect.Int, "id").(int)
	require.Zero(t, id)

	err := c.ValidParam()
	require.Error(t, err)

	var requestErr *Error
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, http.StatusBadRequest, requestErr.Status)
}

func TestBindFunc(t *testing.T) {
	type request struct {
		Username   *string `json:"username"`
		PositionID *int    `json:"positionId"`
	}

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice","positionId":1}`)

	var req request
	require.NoError(t, c.BindFunc(&req, "Username", "PositionID"))
	require.Equal(t, "alice", *req.Username)
	require.Equal(t, 1, *req.PositionID)
}

func TestBindFuncMissingRequired(t *testing.T) {
	type request struct {
		Username   *string `json:"username"`
		PositionID *int    `json:"positionId"`
	}

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice"}`)

	var req request
	err := c.BindFunc(&req, "Username", "PositionID")
	require.Error(t, err)

	var requestErr *Error
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, http.StatusBadRequest, requestErr.Status)
}

func TestBindFuncBadBody(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/users", `{not json`)

	var req struct{}
	err := c.BindFunc(&req)
	require.Error(t, err)

	var requestErr *Error
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, http.StatusBadRequest, requestErr.Status)
}

func TestRespondError(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/users/9", "")

	require.NoError(t, c.RespondError(NewRequestError(errors.New("user not found"), http.StatusNotFound)))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "user not found")
	require.Contains(t, w.Body.String(), `"status":false`)
}

func TestRespondErrorGeneric(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/users", "")

	require.NoError(t, c.RespondError(errors.New("boom")))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "internal server error")
	require.NotContains(t, w.Body.String(), "boom")
}
