package helpers

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Filter builds equality-matched mongo filters from optional request
// parameters. Starting from an empty document, each present parameter adds
// one conjunctive equality clause.
type Filter struct {
	doc bson.M
}

// NewFilter creates an empty filter that matches every document
func NewFilter() *Filter {
	return &Filter{doc: bson.M{}}
}

// Eq adds an equality clause for field when value is non-empty
func (f *Filter) Eq(field, value string) *Filter {
	if value != "" {
		f.doc[field] = value
	}
	return f
}

// Build returns the assembled filter document
func (f *Filter) Build() bson.M {
	return f.doc
}

// ProjectAllowed copies only allow-listed keys from the incoming payload
// into an update set. Keys outside the allow-list are silently dropped.
func ProjectAllowed(payload map[string]interface{}, allowed []string) bson.M {
	set := bson.M{}
	for _, key := range allowed {
		if value, ok := payload[key]; ok {
			set[key] = value
		}
	}
	return set
}

// StripImmutable removes keys that mongo refuses to $set, currently just
// the document id.
func StripImmutable(payload map[string]interface{}) bson.M {
	set := bson.M{}
	for key, value := range payload {
		if key == "_id" {
			continue
		}
		set[key] = value
	}
	return set
}
