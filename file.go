package qoi2

import "os"

// ReadFile reads a .qoi2 file from disk and decodes it, requesting the
// output channel layout recorded in the file's own header. It is a thin
// collaborator around Decode; all codec logic lives in Decode itself
// (spec.md §1 treats file I/O as external to the core).
func ReadFile(path string) ([]byte, Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Descriptor{}, err
	}
	return Decode(data, 0)
}

// WriteFile encodes pixels per desc and writes the resulting stream to
// path, creating or truncating the file as needed.
func WriteFile(path string, pixels []byte, desc Descriptor) error {
	data, err := Encode(pixels, desc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
