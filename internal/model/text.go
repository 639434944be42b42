package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a bilingual field. It decodes either from a plain JSON string,
// which is language-agnostic, or from an object keyed by language code.
type Text struct {
	Plain  string
	ByLang map[string]string
	plain  bool
}

// PlainText returns a language-agnostic Text.
func PlainText(s string) Text { return Text{Plain: s, plain: true} }

// Localized returns a Text backed by a per-language mapping.
func Localized(byLang map[string]string) Text { return Text{ByLang: byLang} }

// IsPlain reports whether the field was given as a plain string.
func (t Text) IsPlain() bool { return t.plain }

// IsZero reports whether the field carries no value at all.
func (t Text) IsZero() bool { return !t.plain && len(t.ByLang) == 0 }

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = PlainText(s)
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make(map[string]string, len(raw))
		for k, v := range raw {
			var s string
			// non-string values are dropped rather than failing the document
			if err := json.Unmarshal(v, &s); err == nil {
				out[k] = s
			}
		}
		t.ByLang = out
		return nil
	default:
		// numbers and booleans are kept verbatim as plain text
		*t = PlainText(string(b))
		return nil
	}
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.plain {
		return json.Marshal(t.Plain)
	}
	if len(t.ByLang) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(t.ByLang)
}

// TextList is a bilingual list of strings such as bullet descriptions.
// It decodes from a plain JSON array or an object of arrays keyed by
// language code.
type TextList struct {
	Plain  []string
	ByLang map[string][]string
	plain  bool
}

// PlainList returns a language-agnostic TextList.
func PlainList(items ...string) TextList { return TextList{Plain: items, plain: true} }

// LocalizedList returns a TextList backed by a per-language mapping.
func LocalizedList(byLang map[string][]string) TextList { return TextList{ByLang: byLang} }

func (l TextList) IsPlain() bool { return l.plain }

func (l *TextList) UnmarshalJSON(b []byte) error {
	*l = TextList{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("text list: %w", err)
		}
		*l = PlainList(items...)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = PlainList(s)
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make(map[string][]string, len(raw))
		for k, v := range raw {
			var items []string
			if err := json.Unmarshal(v, &items); err == nil {
				out[k] = items
				continue
			}
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				out[k] = []string{s}
			}
		}
		l.ByLang = out
		return nil
	}
	return fmt.Errorf("text list: unsupported JSON value %q", string(b))
}

func (l TextList) MarshalJSON() ([]byte, error) {
	if l.plain {
		return json.Marshal(l.Plain)
	}
	if len(l.ByLang) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(l.ByLang)
}

// Scalar holds a value that authors write either as a JSON string or a
// number, e.g. a year or a statistic.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("scalar: %w", err)
	}
	*s = Scalar(n.String())
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s != "" && (s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(string(s))
}

func (s Scalar) String() string { return string(s) }
