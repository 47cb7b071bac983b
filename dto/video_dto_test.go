package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Int
		wantErr bool
	}{
		{name: "number", body: `{"views":5}`, want: 5},
		{name: "numeric string", body: `{"views":"5"}`, want: 5},
		{name: "negative string", body: `{"views":"-3"}`, want: -3},
		{name: "zero string", body: `{"views":"0"}`, want: 0},
		{name: "non numeric string", body: `{"views":"many"}`, wantErr: true},
		{name: "float", body: `{"views":1.5}`, wantErr: true},
		{name: "bool", body: `{"views":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input UpdateVideoInput
			err := json.Unmarshal([]byte(tt.body), &input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, input.Views)
			assert.Equal(t, tt.want, *input.Views)
		})
	}
}

func TestInt_NullLeavesFieldUnset(t *testing.T) {
	var input UpdateVideoInput
	require.NoError(t, json.Unmarshal([]byte(`{"views":null,"likes":"2"}`), &input))
	assert.Nil(t, input.Views)
	require.NotNil(t, input.Likes)
	assert.Equal(t, Int(2), *input.Likes)
}
