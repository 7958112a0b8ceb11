package empty_test

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/nothing/empty"
	"github.com/amp-labs/nothing/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type request struct {
	Name     string                  `json:"name"     yaml:"name"`
	Reserved empty.List[string]      `json:"reserved" yaml:"reserved"`
	Extra    empty.List[json.Number] `json:"extra"    yaml:"extra"`
}

func TestList_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(request{Name: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","reserved":[],"extra":[]}`, string(data))

	data, err = json.Marshal(empty.NewList[int]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty array", input: `{"name":"a","reserved":[]}`},
		{name: "empty array with spaces", input: `{"reserved":[ ]}`},
		{name: "null", input: `{"reserved":null}`},
		{name: "missing", input: `{"name":"a"}`},
		{name: "array with elements", input: `{"reserved":["x"]}`, wantErr: errors.ErrNotEmpty},
		{name: "nested empty array", input: `{"reserved":[[]]}`, wantErr: errors.ErrNotEmpty},
		{name: "string", input: `{"reserved":"x"}`, wantErr: errors.ErrNotSequence},
		{name: "number", input: `{"reserved":0}`, wantErr: errors.ErrNotSequence},
		{name: "object", input: `{"reserved":{}}`, wantErr: errors.ErrNotSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req request

			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, req.Reserved.Len())
		})
	}
}

func TestList_MarshalYAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(request{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, "name: a\nreserved: []\nextra: []\n", string(data))
}

func TestList_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "flow empty sequence", input: "name: a\nreserved: []\n"},
		{name: "null", input: "reserved: ~\n"},
		{name: "blank", input: "reserved:\n"},
		{name: "alias to empty sequence", input: "base: &none []\nreserved: *none\n"},
		{name: "block sequence", input: "reserved:\n  - x\n", wantErr: errors.ErrNotEmpty},
		{name: "flow sequence", input: "reserved: [1, 2]\n", wantErr: errors.ErrNotEmpty},
		{name: "scalar", input: "reserved: nope\n", wantErr: errors.ErrNotSequence},
		{name: "mapping", input: "reserved: {}\n", wantErr: errors.ErrNotSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req request

			err := yaml.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, req.Reserved.Len())
		})
	}
}

func TestList_CodecRoundTrip(t *testing.T) {
	t.Parallel()

	in := request{Name: "round"}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out request

	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	data, err = yaml.Marshal(in)
	require.NoError(t, err)

	out = request{}

	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
