package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"ehotels/shared/base64"
	"ehotels/shared/constant"
	"ehotels/shared/failure"

	"github.com/go-playground/form/v4"
	val "github.com/go-playground/validator/v10"
)

var (
	validate    *val.Validate
	formDecoder *form.Decoder
)

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		if file == nil {
			return true
		}

		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case string:
		if file == constant.Empty {
			return true
		}

		contentType = base64.GetContentType(file)
		if contentType == constant.Empty {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = int(file.Size)
	case *multipart.FileHeader:
		if file != nil {
			fileSize = int(file.Size)
		}
	case string:
		fileSize = len(file)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	// report the wire name of a field instead of the Go field name
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != constant.Empty && name != "-" {
				return name
			}
		}

		return field.Name
	})

	formDecoder = form.NewDecoder()
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateRequest decodes the request body according to its Content-Type
// (JSON, urlencoded form or multipart form) and validates the result.
// Multipart files are left on r.MultipartForm for the caller.
func ValidateRequest[T any](r *http.Request, data *T) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))

	switch mediaType {
	case constant.ContentTypeFormURLEncoded:
		if err := r.ParseForm(); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
		}

		return ValidateForm(r.PostForm, data)
	case constant.ContentTypeMultipartFormData:
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
		}

		return ValidateForm(r.MultipartForm.Value, data)
	default:
		return Validate(r.Body, data)
	}
}

// ValidateForm decodes form values using the `form` struct tags and validates the result.
func ValidateForm[T any](values map[string][]string, data *T) error {
	if err := formDecoder.Decode(data, values); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
