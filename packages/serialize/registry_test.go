package serialize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Format(t *testing.T) {
	r := NewRegistry(WithLocation(time.UTC))

	tests := []struct {
		tag   Tag
		value any
		want  string
	}{
		{TagString, "agent-7", "agent-7"},
		{TagBool, 0, "no"},
		{TagBool, 1, "yes"},
		{TagTimestamp, 0, "Thu Jan 01 1970 00:00:00 GMT+0000 (UTC)"},
		{TagDuration, 120, "120"},
		{TagNumber, 42.0, "42"},
		{TagHashedSecret, "abcd1234", "******1234"},
		{TagPassword, "hunter2", "**********"},
		{TagURL, "https://aac.example/", "https://aac.example/"},
		{TagVar, false, "false"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			got, err := r.Format(tt.tag, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_FormatValue(t *testing.T) {
	r := NewRegistry()
	got, err := r.FormatValue(Value{Tag: TagPassword, Raw: "secret"})
	require.NoError(t, err)
	assert.Equal(t, PasswordMask, got)
}

func TestRegistry_UnknownTag(t *testing.T) {
	_, err := NewRegistry().Format(Tag("color"), "red")
	assert.True(t, errors.Is(err, ErrUnknownTag))
	assert.Contains(t, err.Error(), `"color"`)
}

func TestRegistry_WithTimeLayout(t *testing.T) {
	r := NewRegistry(WithLocation(time.FixedZone("CET", 3600)), WithTimeLayout(time.RFC3339))
	got, err := r.Format(TagTimestamp, 0)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T01:00:00+01:00", got)
}

func TestRegistry_DefaultLayoutInZone(t *testing.T) {
	r := NewRegistry(WithLocation(time.FixedZone("CET", 3600)))
	got, err := r.Format(TagTimestamp, 0)
	require.NoError(t, err)
	assert.Equal(t, "Thu Jan 01 1970 01:00:00 GMT+0100 (CET)", got)
}

func TestRegistry_Tags(t *testing.T) {
	tags := NewRegistry().Tags()
	assert.Equal(t, allTags, tags)

	for _, tag := range tags {
		_, err := NewRegistry().Format(tag, "x")
		assert.NoError(t, err, tag)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		input   string
		want    Tag
		wantErr bool
	}{
		{"str", TagString, false},
		{"string", TagString, false},
		{"Boolean", TagBool, false},
		{" timestamp ", TagTimestamp, false},
		{"sha256", TagHashedSecret, false},
		{"hashed-secret", TagHashedSecret, false},
		{"generic", TagVar, false},
		{"var", TagVar, false},
		{"int", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTag(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
