package appdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Campos que el gateway puede mandar como string, número o {"$oid": "..."}.
var idFields = []string{"_id", "clientId", "serviceId"}

// identString lleva cualquier forma de identificador a string. null o ausente => "".
func identString(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", nil
	}

	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{':
		var o struct {
			OID json.RawMessage `json:"$oid"`
		}
		if err := json.Unmarshal(v, &o); err != nil {
			return "", err
		}
		if len(o.OID) == 0 {
			return "", fmt.Errorf("unsupported identifier %s", string(v))
		}
		return identString(o.OID)
	default:
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return "", fmt.Errorf("unsupported identifier %s", string(v))
		}
		return n.String(), nil
	}
}

// normalizeDoc deja "_id" (o "id" si falta) y las claves foráneas como strings.
func normalizeDoc(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("document is null")
	}
	if _, ok := m["_id"]; !ok {
		if v, ok := m["id"]; ok {
			m["_id"] = v
		}
	}

	for _, k := range idFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, err := identString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		m[k] = quote(s)
	}
	return m, nil
}

func decodeDoc[T any](raw json.RawMessage) (T, error) {
	var zero T
	m, err := normalizeDoc(raw)
	if err != nil {
		return zero, err
	}
	return decodeMap[T](m)
}

func decodeMap[T any](m map[string]json.RawMessage) (T, error) {
	var v T
	b, err := json.Marshal(m)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}

// created lee la respuesta de un POST: {"id": ..., "record": {...}}.
// Sin record se usa lo enviado; el id confirmado manda siempre.
func created[T any](sent any) func([]byte) (T, error) {
	return func(raw []byte) (T, error) {
		var zero T
		var resp struct {
			ID     json.RawMessage `json:"id"`
			Record json.RawMessage `json:"record"`
		}
		if err := json.Unmarshal(raw, &resp); err != nil {
			return zero, fmt.Errorf("create response: %w", err)
		}
		id, err := identString(resp.ID)
		if err != nil {
			return zero, fmt.Errorf("create response id: %w", err)
		}
		if id == "" {
			return zero, errors.New("create response has no id")
		}

		doc := bytes.TrimSpace(resp.Record)
		if len(doc) == 0 || bytes.Equal(doc, []byte("null")) {
			if doc, err = json.Marshal(sent); err != nil {
				return zero, err
			}
		}
		m, err := normalizeDoc(doc)
		if err != nil {
			return zero, fmt.Errorf("create response record: %w", err)
		}
		m["_id"] = quote(id)
		return decodeMap[T](m)
	}
}

// stored lee el registro que devuelve un PUT. Un acuse ({"ok":true}, texto o
// body vacío) da nil: el llamador aplica entonces el patch enviado.
func stored[T any](raw []byte) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}
	m, err := normalizeDoc(raw)
	if err != nil {
		return nil, fmt.Errorf("update response: %w", err)
	}
	if _, ok := m["_id"]; !ok {
		return nil, nil
	}
	v, err := decodeMap[T](m)
	if err != nil {
		return nil, fmt.Errorf("update response record: %w", err)
	}
	return &v, nil
}

func quote(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
