package audit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestSanitizer_RedactsSensitiveKeys(t *testing.T) {
	s := NewSanitizer([]string{"Phone"}, 0)

	out := decode(t, s.Metadata(map[string]any{
		"Password": "123456",
		"phone":    "11999999999",
		"service":  "Corte",
		"nested": map[string]any{
			"token": "abc",
			"items": []any{map[string]any{"cvv": "999", "ok": 1}},
		},
	}))

	assert.Equal(t, redacted, out["Password"])
	assert.Equal(t, redacted, out["phone"])
	assert.Equal(t, "Corte", out["service"])

	nested := out["nested"].(map[string]any)
	assert.Equal(t, redacted, nested["token"])
	item := nested["items"].([]any)[0].(map[string]any)
	assert.Equal(t, redacted, item["cvv"])
	assert.Equal(t, float64(1), item["ok"])
}

func TestSanitizer_TruncatesLongValues(t *testing.T) {
	s := NewSanitizer(nil, 5)

	out := decode(t, s.Metadata(map[string]any{"notes": strings.Repeat("x", 10)}))
	assert.Equal(t, "xxxxx"+truncated, out["notes"])
}

func TestSanitizer_NilAndStructs(t *testing.T) {
	s := NewSanitizer(nil, 0)
	assert.Empty(t, s.Metadata(nil))

	type payload struct {
		Secret string `json:"secret"`
		Name   string `json:"name"`
	}
	out := decode(t, s.Metadata(payload{Secret: "s", Name: "Ana"}))
	assert.Equal(t, redacted, out["secret"])
	assert.Equal(t, "Ana", out["name"])
}
