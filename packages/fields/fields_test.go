package fields

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agentDoc = `{
  "fields": [
    {"name": "id", "type": "str", "value": "agent-7"},
    {"name": "enabled", "type": "bool", "value": 1},
    {"name": "created", "type": "timestamp", "value": 0},
    {"name": "ttl", "type": "duration", "value": 3600},
    {"name": "price", "type": "number", "value": 12.50},
    {"name": "secret", "type": "sha256", "value": "abcd1234"},
    {"name": "password", "type": "password", "value": "hunter2"},
    {"name": "home", "type": "url", "value": "https://aac.example/"},
    {"name": "misc", "type": "var"}
  ]
}`

func TestParse(t *testing.T) {
	fields, err := Parse([]byte(agentDoc), "")
	require.NoError(t, err)
	require.Len(t, fields, 9)

	assert.Equal(t, Field{Name: "id", Tag: serialize.TagString, Value: "agent-7"}, fields[0])
	assert.Equal(t, json.Number("1"), fields[1].Value)
	assert.Equal(t, json.Number("12.50"), fields[4].Value)
	assert.Nil(t, fields[8].Value)
}

func TestParse_NestedPath(t *testing.T) {
	doc := `{"data": {"agent": {"fields": [{"name": "on", "type": "boolean", "value": false}]}}}`
	fields, err := Parse([]byte(doc), "data.agent.fields")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, serialize.TagBool, fields[0].Tag)
	assert.Equal(t, false, fields[0].Value)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		path   string
		errMsg string
	}{
		{"invalid json", `{"fields": [`, "", "not valid JSON"},
		{"missing path", `{"other": []}`, "", "no field list"},
		{"not an array", `{"fields": {}}`, "", "not an array"},
		{"unknown tag", `{"fields": [{"name": "c", "type": "color", "value": "red"}]}`, "", "unknown field type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]byte(agentDoc), DefaultPath))

	err := Validate([]byte(`{"fields": [{"type": "str", "value": {"nested": true}}]}`), DefaultPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field document")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "value")
}

func TestLoad_And_Render(t *testing.T) {
	fields, err := Load([]byte(agentDoc), DefaultPath)
	require.NoError(t, err)

	rendered, err := Render(serialize.NewRegistry(serialize.WithLocation(time.UTC)), fields)
	require.NoError(t, err)

	got := make(map[string]string)
	for _, r := range rendered {
		got[r.Name] = r.Value
	}

	assert.Equal(t, map[string]string{
		"id":       "agent-7",
		"enabled":  "yes",
		"created":  "Thu Jan 01 1970 00:00:00 GMT+0000 (UTC)",
		"ttl":      "3600",
		"price":    "12.50",
		"secret":   "******1234",
		"password": "**********",
		"home":     "https://aac.example/",
		"misc":     "",
	}, got)
}

func TestRender_UnknownTag(t *testing.T) {
	_, err := Render(serialize.NewRegistry(), []Field{{Name: "x", Tag: "color", Value: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, serialize.ErrUnknownTag)
	assert.Contains(t, err.Error(), `field "x"`)
}

type recordingFormatter struct {
	seen []serialize.Value
}

func (r *recordingFormatter) FormatValue(v serialize.Value) (string, error) {
	r.seen = append(r.seen, v)
	return string(v.Tag), nil
}

func TestRender_PassesTaggedValues(t *testing.T) {
	f := &recordingFormatter{}
	rendered, err := Render(f, []Field{
		{Name: "enabled", Tag: serialize.TagBool, Value: true},
		{Name: "ttl", Tag: serialize.TagDuration, Value: json.Number("60")},
	})
	require.NoError(t, err)

	assert.Equal(t, []serialize.Value{
		{Tag: serialize.TagBool, Raw: true},
		{Tag: serialize.TagDuration, Raw: json.Number("60")},
	}, f.seen)
	assert.Equal(t, "bool", rendered[0].Value)
	assert.Equal(t, "duration", rendered[1].Value)
}
