package fields

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aac-tools/f2html/packages/serialize"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// DefaultPath is where field documents keep their field list
const DefaultPath = "fields"

type Field struct {
	Name  string
	Tag   serialize.Tag
	Value any
}

type Rendered struct {
	Name  string        `json:"name"`
	Tag   serialize.Tag `json:"type"`
	Value string        `json:"value"`
}

// Formatter renders a tagged value. *serialize.Registry implements it.
type Formatter interface {
	FormatValue(v serialize.Value) (string, error)
}

// Validate checks the field list at path against the field schema and
// reports every violation.
func Validate(doc []byte, path string) error {
	list, err := lookup(doc, path)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(fieldListSchema)
	documentLoader := gojsonschema.NewStringLoader(list.Raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var errors []string
	for _, desc := range result.Errors() {
		errors = append(errors, desc.String())
	}
	return fmt.Errorf("invalid field document: %s", strings.Join(errors, "; "))
}

// Parse reads the field list at path. Numbers keep their literal text so
// they stringify exactly as written.
func Parse(doc []byte, path string) ([]Field, error) {
	list, err := lookup(doc, path)
	if err != nil {
		return nil, err
	}

	var fields []Field
	var parseErr error
	list.ForEach(func(_, item gjson.Result) bool {
		tag, err := serialize.ParseTag(item.Get("type").String())
		if err != nil {
			parseErr = fmt.Errorf("field %q: %w", item.Get("name").String(), err)
			return false
		}
		fields = append(fields, Field{
			Name:  item.Get("name").String(),
			Tag:   tag,
			Value: valueOf(item.Get("value")),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return fields, nil
}

// Load validates and parses a field document.
func Load(doc []byte, path string) ([]Field, error) {
	if err := Validate(doc, path); err != nil {
		return nil, err
	}
	return Parse(doc, path)
}

func Render(f Formatter, fields []Field) ([]Rendered, error) {
	out := make([]Rendered, 0, len(fields))
	for _, field := range fields {
		s, err := f.FormatValue(serialize.Value{Tag: field.Tag, Raw: field.Value})
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		out = append(out, Rendered{Name: field.Name, Tag: field.Tag, Value: s})
	}
	return out, nil
}

func lookup(doc []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, fmt.Errorf("field document is not valid JSON")
	}
	if path == "" {
		path = DefaultPath
	}
	list := gjson.GetBytes(doc, path)
	if !list.Exists() {
		return gjson.Result{}, fmt.Errorf("no field list at path %q", path)
	}
	if !list.IsArray() {
		return gjson.Result{}, fmt.Errorf("value at path %q is not an array", path)
	}
	return list, nil
}

func valueOf(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(v.Raw)
	case gjson.String:
		return v.String()
	default:
		return v.Value()
	}
}
