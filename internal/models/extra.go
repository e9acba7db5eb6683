package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExtraFields returns the top-level members of the JSON object in data that
// none of the given struct shapes name, so documents keep client fields the
// typed model does not know. Names are matched case-insensitively, as
// encoding/json does. Operator-like keys starting with "$" are dropped.
// The result is nil when nothing is left over.
func ExtraFields(data []byte, shapes ...any) (bson.M, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := make(map[string]struct{})
	for _, shape := range shapes {
		collectFieldNames(reflect.TypeOf(shape), known)
	}

	var extra bson.M
	for key, value := range raw {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if _, ok := known[strings.ToLower(key)]; ok {
			continue
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[key] = value
	}
	return extra, nil
}

func collectFieldNames(t reflect.Type, known map[string]struct{}) {
	if t == nil {
		return
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if tag := f.Tag.Get("json"); tag != "-" {
			name, _, _ := strings.Cut(tag, ",")
			if name == "" {
				name = f.Name
			}
			known[strings.ToLower(name)] = struct{}{}
		}

		if tag := f.Tag.Get("bson"); tag != "-" {
			name, opts, _ := strings.Cut(tag, ",")
			if strings.Contains(opts, "inline") {
				continue
			}
			if name == "" {
				name = f.Name
			}
			known[strings.ToLower(name)] = struct{}{}
		}
	}
}

// marshalWithExtra encodes v and merges extra members into the resulting
// object. Typed fields win over extra members with the same name.
func marshalWithExtra(v any, extra bson.M) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	merged := make(map[string]json.RawMessage, len(extra))
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := merged[key]; ok {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}
