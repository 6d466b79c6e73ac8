package store

import (
	"encoding/json"
	"reflect"
)

// Store persists one JSON-encoded collection per named slot.
//
// Load fails soft: a missing slot or a payload that no longer decodes leaves
// dest at the empty collection and returns nil. Save overwrites the slot
// wholesale; write failures are returned to the caller.
type Store interface {
	Load(name string, dest any) error
	Save(name string, v any) error
}

// decodeSlot unmarshals a slot payload into dest, all or nothing. Decoding
// goes through a scratch value first: encoding/json keeps filling elements
// past per-element type errors, so unmarshalling straight into dest would
// leave a partially decoded collection behind on a corrupt payload.
func decodeSlot(payload []byte, dest any) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(payload, scratch.Interface()); err != nil {
		return
	}
	rv.Elem().Set(scratch.Elem())
}
