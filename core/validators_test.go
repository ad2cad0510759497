package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	type input struct {
		Name  string `json:"name" validate:"required,notblank"`
		Email string `json:"email" validate:"omitempty,email"`
		Note  string `json:"-" validate:"required"`
	}
	v := NewValidator()

	assert.NoError(t, v.Struct(input{Name: "Rajesh", Note: "x"}))

	err := v.Struct(input{Name: "   ", Email: "nope"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "invalid input")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	got := make(map[string]string)
	for _, fe := range verr.Fields {
		got[fe.Field] = fe.Error
	}
	assert.Equal(t, "this field cannot be blank", got["name"])
	assert.Contains(t, got["email"], "valid email")
	assert.Len(t, verr.Fields, 3)
}

func TestIsSerialization(t *testing.T) {
	err := NewSerializationError("students", assert.AnError)
	assert.True(t, IsSerialization(err))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, `collection "students": `+assert.AnError.Error(), err.Error())
	assert.False(t, IsSerialization(assert.AnError))
}
