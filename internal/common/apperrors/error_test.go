package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "msg", ErrBase.New("msg").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrDerived := ErrBase.New("derived error")
	assert.Equal(t, "derived error", ErrDerived.Error())
	assert.ErrorIs(t, ErrDerived, ErrBase)

	cause := errors.New("io failure")
	wrapped := ErrDerived.Err(cause)
	assert.Equal(t, "derived error", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, ErrDerived)
	assert.ErrorIs(t, wrapped, cause)

	wrapped = ErrDerived.MsgErr("custom message", cause)
	assert.Equal(t, "custom message", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, cause)

	goErr1 := fmt.Errorf("first cause")
	goErr2 := fmt.Errorf("second cause")
	wrapped = ErrDerived.Err(goErr1, goErr2)
	assert.ErrorIs(t, wrapped, goErr1)
	assert.ErrorIs(t, wrapped, goErr2)
}

func TestErrorStatusCode(t *testing.T) {
	ErrBase := New("base error").SetStatusCode(http.StatusInternalServerError)
	assert.Equal(t, http.StatusInternalServerError, ErrBase.StatusCode())

	// derived errors inherit the status code until overridden
	ErrDerived := ErrBase.New("derived")
	assert.Equal(t, http.StatusInternalServerError, ErrDerived.StatusCode())

	ErrBadInput := ErrBase.New("bad input").SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, ErrBadInput.StatusCode())
	assert.ErrorIs(t, ErrBadInput, ErrBase)

	// sentinel must not be mutated by derivation
	assert.Equal(t, http.StatusInternalServerError, ErrBase.StatusCode())
}

func TestErrorAll(t *testing.T) {
	ErrBase := New("validation failed").SetExpandError(true)
	wrapped := ErrBase.Err(fmt.Errorf("name is required"), fmt.Errorf("author is required"))
	assert.Equal(t, "validation failed; name is required; author is required", wrapped.ErrorAll())

	collapsed := wrapped.SetExpandError(false)
	assert.Equal(t, "validation failed", collapsed.ErrorAll())

	assert.Len(t, wrapped.UnwrapAll(), 3)
}
