package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     interface{}
		wantErr map[string]string
	}{
		{
			name: "Valid Quest",
			req:  &QuestRequest{Location: "gym"},
		},
		{
			name:    "Missing Location",
			req:     &QuestRequest{},
			wantErr: map[string]string{"location": "This field is required"},
		},
		{
			name:    "Location With Spaces",
			req:     &QuestRequest{Location: "the gym"},
			wantErr: map[string]string{"location": "Only letters, digits, '-' and '_' are allowed"},
		},
		{
			name: "Equip Missing Both",
			req:  &EquipRequest{},
			wantErr: map[string]string{
				"slot": "This field is required",
				"item": "This field is required",
			},
		},
		{
			name: "Optional Player ID",
			req:  &CreatePlayerRequest{},
		},
		{
			name:    "Player ID Too Long",
			req:     &CreatePlayerRequest{PlayerID: string(make([]byte, 65))},
			wantErr: map[string]string{"playerid": "Must be at most 64 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, FormatValidationError(err))
		})
	}
}

func TestValidateVar_PathParam(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateVar("saveSlot1", pathParamTag))
	assert.NoError(t, v.ValidateVar("discord-1234_5", pathParamTag))
	assert.Error(t, v.ValidateVar("", pathParamTag))
	assert.Error(t, v.ValidateVar("a/b", pathParamTag))
	assert.Error(t, v.ValidateVar("..", pathParamTag))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
