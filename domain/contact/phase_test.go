package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_Text(t *testing.T) {
	tests := []struct {
		phase Phase
		text  string
	}{
		{PhaseIdle, "idle"},
		{PhaseSubmitting, "submitting"},
		{PhaseSucceeded, "succeeded"},
		{PhaseFailed, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.phase.String())

			var back Phase
			require.NoError(t, back.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.phase, back)
		})
	}
}

func TestPhase_Invalid(t *testing.T) {
	bad := Phase(9)
	assert.False(t, bad.Valid())
	assert.Equal(t, "phase(9)", bad.String())

	_, err := bad.MarshalText()
	assert.Error(t, err)

	var p Phase
	assert.Error(t, p.UnmarshalText([]byte("pending")))
}

func TestState_JSON(t *testing.T) {
	data, err := json.Marshal(State{Phase: PhaseFailed, ErrorMessage: "Quota exceeded", Draft: Fields{"name": "A"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"failed","error_message":"Quota exceeded"}`, string(data))

	data, err = json.Marshal(State{Phase: PhaseIdle})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"idle"}`, string(data))
}

func TestFields_Missing(t *testing.T) {
	f := Fields{FieldName: "A", FieldEmail: "  ", FieldMessage: "M"}
	assert.Equal(t, []string{FieldEmail, FieldSubject}, f.Missing(RequiredFields...))
	assert.Empty(t, sampleFields().Missing(RequiredFields...))

	clone := f.Clone()
	clone[FieldName] = "B"
	assert.Equal(t, "A", f.Get(FieldName))
	assert.Nil(t, Fields(nil).Clone())
}
