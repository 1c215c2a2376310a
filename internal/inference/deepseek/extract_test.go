package deepseek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantError error
	}{
		{
			name: "bare object",
			text: `{"english": "Hello"}`,
			want: `{"english": "Hello"}`,
		},
		{
			name: "object wrapped in prose",
			text: "Here is the translation:\n{\"english\": \"Hello\"}\nLet me know if you need more.",
			want: `{"english": "Hello"}`,
		},
		{
			name: "object wrapped in markdown fences",
			text: "```json\n{\"english\": \"Hello\"}\n```",
			want: `{"english": "Hello"}`,
		},
		{
			name: "nested objects stay balanced",
			text: `prefix {"stats": {"vocabCount": 3}, "topic": "greetings"} suffix`,
			want: `{"stats": {"vocabCount": 3}, "topic": "greetings"}`,
		},
		{
			name: "only the first object is returned",
			text: `{"a": 1} {"b": 2}`,
			want: `{"a": 1}`,
		},
		{
			name:      "no opening brace",
			text:      "I could not translate that.",
			wantError: ErrNoJSONObject,
		},
		{
			name:      "unbalanced object",
			text:      `{"english": "Hello"`,
			wantError: ErrNoJSONObject,
		},
		{
			name:      "empty input",
			text:      "",
			wantError: ErrNoJSONObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := ExtractFirstJSONObject(tt.text)
			if tt.wantError != nil {
				require.ErrorIs(t, gotErr, tt.wantError)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
