package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse decodes a single JSON document and normalizes it.
// Object key order and raw number literals are preserved up to normalization.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON document from r and normalizes it.
// Trailing non-whitespace data is an error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	raw, err := decodeRaw(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("jsonvalue: unexpected data after top-level value")
	}

	return Normalize(raw)
}

// decodeRaw builds the ordered intermediate tree: *Object for objects,
// []any for arrays and json.Number for numbers.
func decodeRaw(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("jsonvalue: %w", io.ErrUnexpectedEOF)
		}

		return nil, fmt.Errorf("jsonvalue: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &Object{}

		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("jsonvalue: %w", err)
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("jsonvalue: object key is %T, not string", keyTok)
			}

			val, err := decodeRaw(dec)
			if err != nil {
				return nil, err
			}

			obj.Members = append(obj.Members, Member{Key: key, Value: val})
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}

		return obj, nil

	case '[':
		items := []any{}

		for dec.More() {
			val, err := decodeRaw(dec)
			if err != nil {
				return nil, err
			}

			items = append(items, val)
		}

		if err := expectDelim(dec, ']'); err != nil {
			return nil, err
		}

		return items, nil

	default:
		return nil, fmt.Errorf("jsonvalue: unexpected delimiter %q", delim)
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("jsonvalue: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("jsonvalue: expected %q, got %v", want, tok)
	}

	return nil
}

// MarshalJSON renders v with map keys in stored order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		data, err := json.Marshal(v.n)
		if err != nil {
			return fmt.Errorf("jsonvalue: encoding number: %w", err)
		}

		buf.Write(data)
	case KindString:
		data, err := json.Marshal(v.s)
		if err != nil {
			return fmt.Errorf("jsonvalue: encoding string: %w", err)
		}

		buf.Write(data)
	case KindMap:
		buf.WriteByte('{')

		for i := range v.m.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(v.m.keys[i])
			if err != nil {
				return fmt.Errorf("jsonvalue: encoding key: %w", err)
			}

			buf.Write(key)
			buf.WriteByte(':')

			if err := v.m.values[i].encode(buf); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')

		for i := range v.seq.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := v.seq.items[i].encode(buf); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	default:
		return fmt.Errorf("jsonvalue: unknown kind %s", v.kind)
	}

	return nil
}
