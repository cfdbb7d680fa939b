package model

import "encoding/json"

// splitExtra collects the keys of raw that are not in known. These are the
// source fields the canonical schema does not model; they are kept verbatim
// so a parse/serialize round trip is lossless.
func splitExtra(raw map[string]json.RawMessage, known map[string]struct{}) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if extra == nil {
			extra = map[string]json.RawMessage{}
		}
		extra[k] = v
	}
	return extra
}

// knownSet builds a map for constant-time known-field checks during
// lossless unmarshaling.
func knownSet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// marshalExtra emits the typed view merged with the extra fields at the same
// object level. Typed fields win on key collision, so modeled data can never
// be shadowed by a stale unknown entry.
func marshalExtra(extra map[string]json.RawMessage, typed any) ([]byte, error) {
	out := map[string]json.RawMessage{}
	for k, v := range extra {
		out[k] = v
	}

	typedBytes, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	var typedMap map[string]json.RawMessage
	if err := json.Unmarshal(typedBytes, &typedMap); err != nil {
		return nil, err
	}
	for k, v := range typedMap {
		out[k] = v
	}

	return json.Marshal(out)
}
