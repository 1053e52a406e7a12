package bcapi_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSet_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("single bound field yields exactly one key", func(t *testing.T) {
		t.Parallel()

		fields := bcapi.NewFieldSet().SetString("DisplayName", "Acme")

		data, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.JSONEq(t, `{"DisplayName":"Acme"}`, string(data))

		var decoded map[string]interface{}

		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Len(t, decoded, 1)
	})

	t.Run("unbound fields are absent, not null", func(t *testing.T) {
		t.Parallel()

		fields := bcapi.NewFieldSet().SetString("displayName", "Acme")

		data, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "null")
		assert.NotContains(t, string(data), "email")
	})

	t.Run("bound empty string is present", func(t *testing.T) {
		t.Parallel()

		fields := bcapi.NewFieldSet().SetString("addressLine2", "")

		data, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.JSONEq(t, `{"addressLine2":""}`, string(data))
	})

	t.Run("preserves binding order", func(t *testing.T) {
		t.Parallel()

		fields := bcapi.NewFieldSet().
			SetString("displayName", "Bike").
			SetDecimal("unitPrice", 149.95).
			SetBool("blocked", false)

		data, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.Equal(t, `{"displayName":"Bike","unitPrice":149.95,"blocked":false}`, string(data))
	})

	t.Run("rebinding replaces value and keeps position", func(t *testing.T) {
		t.Parallel()

		fields := bcapi.NewFieldSet().
			SetString("displayName", "old").
			SetString("email", "a@example.com").
			SetString("displayName", "new")

		data, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.Equal(t, `{"displayName":"new","email":"a@example.com"}`, string(data))
		assert.Equal(t, 2, fields.Len())
	})

	t.Run("empty set is an empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(bcapi.NewFieldSet())
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
}

func TestFieldSet_Accessors(t *testing.T) {
	t.Parallel()

	fields := bcapi.NewFieldSet().
		SetString("displayName", "Acme").
		SetBool("blocked", true)

	assert.True(t, fields.Has("displayName"))
	assert.False(t, fields.Has("email"))

	value, bound := fields.Value("blocked")
	assert.True(t, bound)
	assert.Equal(t, true, value)

	_, bound = fields.Value("email")
	assert.False(t, bound)

	assert.Equal(t, []string{"displayName", "blocked"}, fields.Names())
}
