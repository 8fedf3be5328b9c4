package web

import (
	"context"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin's context with typed param/query extraction. Extraction
// errors are collected and surfaced by ValidParam/ValidQuery so handlers can
// read several values before deciding how to respond.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrors []error
	queryErrors []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrors = append(c.paramErrors, errors.Errorf("parsing param %s: %q", name, value))
			return 0
		}
		return v
	case reflect.String:
		return value
	default:
		c.paramErrors = append(c.paramErrors, errors.Errorf("unsupported param kind: %s", kind))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrors) == 0 {
		return nil
	}
	return NewRequestError(c.paramErrors[0], http.StatusBadRequest)
}

// GetQueryFunc returns a typed pointer so absent parameters stay nil.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	switch kind {
	case reflect.Int:
		var v *int
		if raw, ok := c.GetQuery(name); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.queryErrors = append(c.queryErrors, errors.Errorf("parsing query %s: %q", name, raw))
				return v
			}
			v = &parsed
		}
		return v
	case reflect.String:
		var v *string
		if raw, ok := c.GetQuery(name); ok {
			v = &raw
		}
		return v
	default:
		c.queryErrors = append(c.queryErrors, errors.Errorf("unsupported query kind: %s", kind))
		return nil
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrors) == 0 {
		return nil
	}
	return NewRequestError(c.queryErrors[0], http.StatusBadRequest)
}

// BindFunc decodes the JSON body and checks the named fields are present.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for _, name := range requiredFields {
		field := v.FieldByName(name)
		if !field.IsValid() {
			return NewRequestError(errors.Errorf("unknown field: %s", name), http.StatusBadRequest)
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return NewRequestError(errors.Errorf("required field: %s", name), http.StatusBadRequest)
		}
	}

	return nil
}

func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

func (c *Context) RespondError(err error) error {
	if err == nil {
		return nil
	}

	var requestErr *Error
	if errors.As(err, &requestErr) {
		c.AbortWithStatusJSON(requestErr.Status, gin.H{
			"error":  requestErr.Err.Error(),
			"status": false,
		})
		return nil
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":  "internal server error",
		"status": false,
	})
	return nil
}
