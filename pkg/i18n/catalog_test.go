package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	tests := []struct {
		name     string
		add      []string
		sorted   bool
		wantLen  int
		wantSeen int
		wantJSON string
	}{
		{
			name:     "empty",
			wantJSON: "{}",
		},
		{
			name:     "identity_mapping",
			add:      []string{"Hello"},
			wantLen:  1,
			wantSeen: 1,
			wantJSON: "{\n    \"Hello\": \"Hello\"\n}",
		},
		{
			name:     "duplicates_collapse_in_first_seen_order",
			add:      []string{"Zoo", "Apple", "Zoo", "Apple", "Mid"},
			wantLen:  3,
			wantSeen: 5,
			wantJSON: "{\n    \"Zoo\": \"Zoo\",\n    \"Apple\": \"Apple\",\n    \"Mid\": \"Mid\"\n}",
		},
		{
			name:     "sorted_keys",
			add:      []string{"Zoo", "Apple", "Mid"},
			sorted:   true,
			wantLen:  3,
			wantSeen: 3,
			wantJSON: "{\n    \"Apple\": \"Apple\",\n    \"Mid\": \"Mid\",\n    \"Zoo\": \"Zoo\"\n}",
		},
		{
			name:     "non_ascii_and_html_written_literally",
			add:      []string{"Grüße", "<b>&</b>"},
			wantLen:  2,
			wantSeen: 2,
			wantJSON: "{\n    \"Grüße\": \"Grüße\",\n    \"<b>&</b>\": \"<b>&</b>\"\n}",
		},
		{
			name:     "quotes_and_backslashes_escaped",
			add:      []string{`say "hi"`, `a\b`},
			wantLen:  2,
			wantSeen: 2,
			wantJSON: "{\n    \"say \\\"hi\\\"\": \"say \\\"hi\\\"\",\n    \"a\\\\b\": \"a\\\\b\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog()
			c.Add(tt.add...)
			if tt.sorted {
				c = c.Sorted()
			}

			assert.Equal(t, tt.wantLen, c.Len())
			assert.Equal(t, tt.wantSeen, c.Seen())

			got, err := c.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(got))

			var decoded map[string]string
			require.NoError(t, json.Unmarshal(got, &decoded), "output should be valid json")
			for k, v := range decoded {
				assert.Equal(t, k, v, "every key maps to itself")
				assert.True(t, c.Has(k))
			}
		})
	}
}

func TestCatalogKeysIsACopy(t *testing.T) {
	c := NewCatalog()
	c.Add("a", "b")

	keys := c.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, c.Keys())
}
