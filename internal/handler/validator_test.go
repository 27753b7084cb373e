package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_CraftRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		req     CraftRequest
		wantErr bool
	}{
		{"valid request", CraftRequest{UserID: testUserID, RecipeID: "recipe-potion"}, false},
		{"missing user id", CraftRequest{RecipeID: "recipe-potion"}, true},
		{"user id not a uuid", CraftRequest{UserID: "alice", RecipeID: "recipe-potion"}, true},
		{"missing recipe id", CraftRequest{UserID: testUserID}, true},
		{"empty request", CraftRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("Required Field", func(t *testing.T) {
		err := v.ValidateStruct(CraftRequest{UserID: testUserID})
		fields := FormatValidationError(err)

		assert.Equal(t, "This field is required", fields["recipeid"])
	})

	t.Run("UUID Field", func(t *testing.T) {
		err := v.ValidateStruct(CraftRequest{UserID: "not-a-uuid", RecipeID: "recipe-potion"})
		fields := FormatValidationError(err)

		assert.Equal(t, "Must be a valid UUID", fields["userid"])
	})

	t.Run("Nil Error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)

		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
