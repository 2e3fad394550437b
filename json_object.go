package finances

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"
)

// object builds a JSON object keeping fields in insertion order.
// Its zero value is ready to use.
type object struct {
	buf bytes.Buffer
	err error
}

// record starts the object of a client file record.
func record(kind string) *object {
	return new(object).Set("record", kind)
}

// Set adds a field, marshaled with json.Marshal.
func (o *object) Set(key string, value any) *object {
	if o.err != nil {
		return o
	}
	b, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return o
	}
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	fmt.Fprintf(&o.buf, "%q:", key)
	o.buf.Write(b)
	return o
}

// SetNonZero adds a field unless value is the zero value of its type.
func (o *object) SetNonZero(key string, value any) *object {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return o
	}
	return o.Set(key, value)
}

// SetTime adds a timestamp field with its full precision.
func (o *object) SetTime(key string, t time.Time) *object {
	return o.Set(key, t.Format(timestampFormat))
}

func (o *object) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	b := make([]byte, 0, o.buf.Len()+2)
	b = append(b, '{')
	b = append(b, o.buf.Bytes()...)
	return append(b, '}'), nil
}

// WriteLine writes the object followed by a newline.
func (o *object) WriteLine(w io.Writer) error {
	b, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
