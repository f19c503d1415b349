package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Hidden string `json:"-" validate:"omitempty,max=2"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Mobile: "0912"}))

	err := v.Validate(&sampleRequest{Email: "nope", Page: -1})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"mobile": "required",
		"email":  "email",
		"page":   "min=1",
	}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}
