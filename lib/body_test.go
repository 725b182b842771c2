package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"omitempty,gte=0"`
}

func TestExtractAndValidateBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))

		body, err := ExtractAndValidateBody[sampleBody](r)
		require.NoError(t, err)
		assert.Equal(t, "Asha", body.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

		_, err := ExtractAndValidateBody[sampleBody](r)
		assert.Error(t, err)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"asha@example.com","extra":1}`))

		_, err := ExtractAndValidateBody[sampleBody](r)
		assert.Error(t, err)
	})

	t.Run("validation failures mapped per field", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"A","email":"nope"}`))

		_, err := ExtractAndValidateBody[sampleBody](r)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Errors, 2)
		assert.Equal(t, "name", ve.Errors[0].Field)
		assert.Equal(t, "must be at least 2 characters", ve.Errors[0].Message)
		assert.Equal(t, "email", ve.Errors[1].Field)
		assert.Equal(t, "must be a valid email address", ve.Errors[1].Message)
	})
}
