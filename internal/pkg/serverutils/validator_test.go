package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "reader@example.com", Name: "Alex"})
	assert.NoError(t, err)
}

func TestValidateRequestFailure(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email", Name: "Alex"})
	require.Error(t, err)

	fiberErr, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Email")
}

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse("done", map[string]string{"id": "ch1"})
	assert.True(t, res.Success)
	assert.Equal(t, "done", res.Message)
	assert.Equal(t, "ch1", res.Data["id"])
}

func TestErrorResponseEnvelope(t *testing.T) {
	res := ErrorResponse(fiber.StatusNotFound, "chapter not found")
	assert.False(t, res.Success)
	assert.Equal(t, "chapter not found", res.Message)
}
