package validate_test

import (
	"testing"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/validate"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string
}

func TestStructValid(t *testing.T) {
	err := validate.Struct(payload{Email: "test@user.com", Password: "testUser123", Name: ""})
	require.NoError(t, err)
}

func TestStructFieldErrors(t *testing.T) {
	err := validate.Struct(payload{Email: "not-an-email", Password: "123", Name: ""})

	var fe validate.FieldErrors

	require.ErrorAs(t, err, &fe)
	require.Len(t, fe, 2)
	require.Equal(t, "enter a valid email address", fe["email"])
	require.Equal(t, "ensure this field has at least 6 characters", fe["password"])
}

func TestStructRequired(t *testing.T) {
	err := validate.Struct(payload{Email: "", Password: "", Name: ""})

	var fe validate.FieldErrors

	require.ErrorAs(t, err, &fe)
	require.Equal(t, "this field is required", fe["email"])
	require.Equal(t, "this field is required", fe["password"])
}

func TestFieldErrorsError(t *testing.T) {
	fe := validate.FieldErrors{"name": "this field may not be blank"}
	require.Contains(t, fe.Error(), "name: this field may not be blank")
}
