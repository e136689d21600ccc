// Package base64 handles images sent inline as data URIs
// ("data:image/png;base64,....") instead of multipart files.
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data URI")

// GetContentType returns the media type of a data URI or an empty string when
// the value is not one.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	end := strings.Index(file, base64Marker)
	if end == -1 {
		return ""
	}

	return file[len(dataPrefix):end]
}

// Decode returns the payload of a data URI together with its content type and
// a file extension matching that content type.
func Decode(file string) (data []byte, contentType, extension string, err error) {
	contentType = GetContentType(file)
	if contentType == "" {
		return nil, "", "", ErrNotDataURI
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	mediaType := strings.SplitN(contentType, ";", 2)[0]
	if extensions, _ := mime.ExtensionsByType(mediaType); len(extensions) > 0 {
		extension = extensions[0]
	}

	return data, contentType, extension, nil
}
