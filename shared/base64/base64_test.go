package base64_test

import (
	"testing"

	"ehotels/shared/base64"
)

const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64," + pixelPNG, expected: "image/png"},
		{name: "text plain", input: "data:text/plain;base64,SGVsbG8gV29ybGQ=", expected: "text/plain"},
		{name: "with parameters", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", expected: "image/svg+xml;charset=utf-8"},
		{name: "empty string", input: "", expected: ""},
		{name: "missing data prefix", input: "image/png;base64," + pixelPNG, expected: ""},
		{name: "missing base64 marker", input: "data:image/png," + pixelPNG, expected: ""},
		{name: "only prefix", input: "data:", expected: ""},
		{name: "empty media type", input: "data:;base64,", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := base64.GetContentType(tt.input); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	data, contentType, extension, err := base64.Decode("data:image/png;base64," + pixelPNG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contentType != "image/png" {
		t.Errorf("expected image/png, got %q", contentType)
	}

	if extension != ".png" {
		t.Errorf("expected .png, got %q", extension)
	}

	if len(data) == 0 || string(data[1:4]) != "PNG" {
		t.Errorf("decoded payload is not a PNG")
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, _, _, err := base64.Decode("not a data uri"); err != base64.ErrNotDataURI {
		t.Errorf("expected ErrNotDataURI, got %v", err)
	}

	if _, _, _, err := base64.Decode("data:image/png;base64,!!!"); err == nil {
		t.Error("expected decode error for invalid payload")
	}
}
