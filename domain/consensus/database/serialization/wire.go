package serialization

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// fieldHandler consumes the value of a single field from b and returns the
// number of bytes consumed, or a negative protowire error code.
type fieldHandler func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func consumeMessage(b []byte, handle fieldHandler) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "malformed field tag")
		}
		b = b[n:]

		n, err := handle(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return errors.Wrapf(protowire.ParseError(n), "malformed field %d", num)
		}
		b = b[n:]
	}
	return nil
}

func checkType(num protowire.Number, typ protowire.Type, expected protowire.Type) error {
	if typ != expected {
		return errors.Errorf("field %d has wire type %d while %d was expected", num, typ, expected)
	}
	return nil
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte, target *string) (int, error) {
	if err := checkType(num, typ, protowire.BytesType); err != nil {
		return 0, err
	}
	value, n := protowire.ConsumeString(b)
	if n >= 0 {
		*target = value
	}
	return n, nil
}

func consumeRepeatedString(num protowire.Number, typ protowire.Type, b []byte, target *[]string) (int, error) {
	var value string
	n, err := consumeString(num, typ, b, &value)
	if err == nil && n >= 0 {
		*target = append(*target, value)
	}
	return n, err
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte, target *uint64) (int, error) {
	if err := checkType(num, typ, protowire.VarintType); err != nil {
		return 0, err
	}
	value, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*target = value
	}
	return n, nil
}

func consumeNested(num protowire.Number, typ protowire.Type, b []byte, handle func([]byte) error) (int, error) {
	if err := checkType(num, typ, protowire.BytesType); err != nil {
		return 0, err
	}
	value, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	return n, handle(value)
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return protowire.ConsumeFieldValue(num, typ, b), nil
}

func appendStringField(b []byte, num protowire.Number, value string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, value)
}

func appendVarintField(b []byte, num protowire.Number, value uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, value)
}

func appendNestedField(b []byte, num protowire.Number, nested []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, nested)
}
