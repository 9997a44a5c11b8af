package chrono

import (
	"encoding/json"

	msgpack "gopkg.in/vmihailenco/msgpack.v2"
	yaml "gopkg.in/yaml.v3"
)

// Every value type serializes as its canonical ISO-8601 string: quoted for
// JSON, a scalar node for YAML and a string for msgpack. Decoding goes
// through the strict parser, so malformed payloads fail the same way as
// malformed parse input.

func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LocalDate) UnmarshalText(data []byte) error {
	parsed, err := ParseLocalDate(string(data))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LocalTime) UnmarshalText(data []byte) error {
	parsed, err := ParseLocalTime(string(data))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Instant) UnmarshalText(data []byte) error {
	parsed, err := ParseInstant(string(data))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

func (r InstantRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *InstantRange) UnmarshalText(data []byte) error {
	parsed, err := ParseInstantRange(string(data))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

func (d LocalDate) MarshalJSON() ([]byte, error)    { return json.Marshal(d.String()) }
func (t LocalTime) MarshalJSON() ([]byte, error)    { return json.Marshal(t.String()) }
func (i Instant) MarshalJSON() ([]byte, error)      { return json.Marshal(i.String()) }
func (r InstantRange) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

func (d *LocalDate) UnmarshalJSON(data []byte) error    { return unmarshalJSONText(data, d) }
func (t *LocalTime) UnmarshalJSON(data []byte) error    { return unmarshalJSONText(data, t) }
func (i *Instant) UnmarshalJSON(data []byte) error      { return unmarshalJSONText(data, i) }
func (r *InstantRange) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, r) }

type textUnmarshaler interface {
	UnmarshalText(data []byte) error
}

func unmarshalJSONText(data []byte, v textUnmarshaler) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return v.UnmarshalText([]byte(s))
}

func (d LocalDate) MarshalYAML() (interface{}, error)    { return d.String(), nil }
func (t LocalTime) MarshalYAML() (interface{}, error)    { return t.String(), nil }
func (i Instant) MarshalYAML() (interface{}, error)      { return i.String(), nil }
func (r InstantRange) MarshalYAML() (interface{}, error) { return r.String(), nil }

func (d *LocalDate) UnmarshalYAML(node *yaml.Node) error    { return unmarshalYAMLText(node, d) }
func (t *LocalTime) UnmarshalYAML(node *yaml.Node) error    { return unmarshalYAMLText(node, t) }
func (i *Instant) UnmarshalYAML(node *yaml.Node) error      { return unmarshalYAMLText(node, i) }
func (r *InstantRange) UnmarshalYAML(node *yaml.Node) error { return unmarshalYAMLText(node, r) }

func unmarshalYAMLText(node *yaml.Node, v textUnmarshaler) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return v.UnmarshalText([]byte(s))
}

func (d LocalDate) EncodeMsgpack(enc *msgpack.Encoder) error    { return enc.EncodeString(d.String()) }
func (t LocalTime) EncodeMsgpack(enc *msgpack.Encoder) error    { return enc.EncodeString(t.String()) }
func (i Instant) EncodeMsgpack(enc *msgpack.Encoder) error      { return enc.EncodeString(i.String()) }
func (r InstantRange) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(r.String()) }

func (d *LocalDate) DecodeMsgpack(dec *msgpack.Decoder) error    { return decodeMsgpackText(dec, d) }
func (t *LocalTime) DecodeMsgpack(dec *msgpack.Decoder) error    { return decodeMsgpackText(dec, t) }
func (i *Instant) DecodeMsgpack(dec *msgpack.Decoder) error      { return decodeMsgpackText(dec, i) }
func (r *InstantRange) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpackText(dec, r) }

func decodeMsgpackText(dec *msgpack.Decoder, v textUnmarshaler) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return v.UnmarshalText([]byte(s))
}
