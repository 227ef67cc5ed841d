package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// Marshal produces the canonical byte form of a tree.
//
// Layout (object keys always emitted in sorted order):
//
//	null sentinel  {"kind":"null"}
//	leaf           {"kind":"leaf","value":<scalar>}
//	node           {"children":[...],"fn":{"kind":...,"name":...},"kind":"node"}
//
// Leaf payloads are restricted to the scalar types a materializer
// understands: string, bool, signed/unsigned integers, float64, and
// []float64. Anything else fails rather than being coerced.
func Marshal(o expr.Operand) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeOperand(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOperand(buf *bytes.Buffer, o expr.Operand) error {
	switch v := o.(type) {
	case expr.Null:
		buf.WriteString(`{"kind":"null"}`)
		return nil
	case expr.Leaf:
		buf.WriteString(`{"kind":"leaf","value":`)
		if err := writeValue(buf, v.Value()); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	case *expr.Node:
		return writeNode(buf, v)
	}
	return fmt.Errorf("canon: unknown operand type %T", o)
}

func writeNode(buf *bytes.Buffer, n *expr.Node) error {
	buf.WriteString(`{"children":[`)
	for i, c := range n.Operands() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeOperand(buf, c); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	fn := n.Func()
	buf.WriteString(`],"fn":{"kind":`)
	if err := writeString(buf, string(fn.Kind)); err != nil {
		return err
	}
	buf.WriteString(`,"name":`)
	if err := writeString(buf, fn.Name); err != nil {
		return err
	}
	buf.WriteString(`},"kind":"node"}`)
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case string:
		return writeString(buf, val)
	case bool:
		buf.WriteString(strconv.FormatBool(val))
		return nil
	case int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case int32:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
		return nil
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
		return nil
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
		return nil
	case float64:
		return writeFloat(buf, val)
	case float32:
		return writeFloat(buf, float64(val))
	case []float64:
		buf.WriteByte('[')
		for i, f := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeFloat(buf, f); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	return fmt.Errorf("canon: unsupported leaf payload type %T", v)
}

// writeFloat uses the shortest 'g' representation, which round-trips
// float64 exactly and is stable across platforms. NaN and infinities
// have no JSON form and are rejected.
func writeFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("canon: non-finite float %v", f)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

// writeString emits an NFC-normalized, JSON-escaped string without HTML
// escaping (< > & stay literal, matching canonical-JSON conventions).
func writeString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return fmt.Errorf("canon: marshal string: %w", err)
	}
	// Encode appends a trailing newline.
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
