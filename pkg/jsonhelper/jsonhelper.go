package jsonhelper

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Encode[T any](t T) ([]byte, error) {
	return json.Marshal(t)
}

// EncodePretty renders t with a four-space indent, sorted object keys and a
// trailing newline. This is the layout the managed config files are stored in.
func EncodePretty[T any](t T) ([]byte, error) {
	b, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func Decode[T any](b []byte) (T, error) {
	var t T
	err := json.Unmarshal(b, &t)
	return t, err
}
