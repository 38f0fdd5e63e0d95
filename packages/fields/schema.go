package fields

// fieldListSchema describes the array of typed fields found at the
// document path.
const fieldListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "type"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "type": {"type": "string", "minLength": 1},
      "value": {"type": ["string", "number", "boolean", "null"]}
    }
  }
}`
