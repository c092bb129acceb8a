package person

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidJSON marks a request body that does not decode into a Person.
var ErrInvalidJSON = errors.New("invalid person json")

var validate = validator.New()

// payload mirrors Person with pointer fields so missing keys can be told apart from zero values.
type payload struct {
	ID   *uint64 `validate:"required"`
	Name *string `validate:"required"`
	Age  *uint32 `validate:"required"`
}

// DecodePerson parses a full request body. The id field must be present but callers
// decide whether to honour it. Keys match case-sensitively and a field may appear once.
func DecodePerson(data []byte) (Person, error) {
	if !utf8.Valid(data) {
		return Person{}, fmt.Errorf("%w: body is not valid utf-8", ErrInvalidJSON)
	}

	fields, err := scanFields(data)
	if err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var p payload
	for key, dst := range map[string]any{"id": &p.ID, "name": &p.Name, "age": &p.Age} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return Person{}, fmt.Errorf("%w: field %q: %v", ErrInvalidJSON, key, err)
		}
	}
	if err := validate.Struct(p); err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Person{ID: *p.ID, Name: *p.Name, Age: *p.Age}, nil
}

// scanFields walks the top-level object and returns the raw values of the known fields.
// Unknown keys are skipped; a repeated known key or trailing data is an error.
func scanFields(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a json object")
	}

	fields := make(map[string]json.RawMessage, 3)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		switch key {
		case "id", "name", "age":
			if _, dup := fields[key]; dup {
				return nil, fmt.Errorf("duplicate field %q", key)
			}
			fields[key] = raw
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after json object")
	}
	return fields, nil
}

// EncodePerson renders a single record.
func EncodePerson(p Person) ([]byte, error) {
	return json.Marshal(p)
}

// EncodePersons renders a list; nil encodes as an empty array.
func EncodePersons(items []Person) ([]byte, error) {
	if items == nil {
		items = []Person{}
	}
	return json.Marshal(items)
}
