package kml

import "bytes"

// Format rewrites the KML document in data in canonical form: recognized
// elements in schema order, unknown elements dropped, unknown attributes
// kept, and the layout given by the encoding options. Decoding options such
// as MaxDepth apply to the input.
//
// Formatting canonical output again returns it unchanged.
func Format(data []byte, opts ...Option) ([]byte, error) {
	d := NewDecoder(bytes.NewReader(data), opts...)
	n, err := d.Decode()
	if err != nil {
		return nil, err
	}
	return Marshal(n, opts...)
}
