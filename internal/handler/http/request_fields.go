package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/cookie-relay/models"
)

const (
	// maxRequestBodySize bounds every body read by parseRequestFields.
	maxRequestBodySize = 4 << 20
	// maxMultipartMemory is kept in memory, larger parts spill to temp files.
	maxMultipartMemory = 1 << 20

	fieldEncrypted  = "encrypted"
	fieldUUID       = "uuid"
	fieldCryptoType = "crypto_type"
	fieldPassword   = "password"
)

var errMissingBoundary = errors.New("multipart body without boundary")

// parseRequestFields reads the request body into models.RequestFields,
// whatever its encoding. Gzip is expected to be removed already by
// withGZipRequest. On error the fields parsed so far are returned, which
// lets callers treat an unreadable body as an empty one.
func parseRequestFields(r *http.Request) (models.RequestFields, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return models.RequestFields{}, nil
	}

	body := io.LimitReader(r.Body, maxRequestBodySize)

	mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		return parseMultipartFields(body, params["boundary"])
	case "application/x-www-form-urlencoded":
		return parseURLEncodedFields(body)
	default:
		// application/json and anything else is read as JSON
		return parseJSONFields(body)
	}
}

func parseJSONFields(body io.Reader) (models.RequestFields, error) {
	raw := make(map[string]json.RawMessage)
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return models.RequestFields{}, nil
		}
		return models.RequestFields{}, fmt.Errorf("error decoding JSON body: %w", err)
	}

	return models.RequestFields{
		Encrypted:  jsonScalar(raw[fieldEncrypted]),
		UUID:       jsonScalar(raw[fieldUUID]),
		CryptoType: jsonScalar(raw[fieldCryptoType]),
		Password:   jsonScalar(raw[fieldPassword]),
	}, nil
}

// jsonScalar renders a JSON string, number or boolean as text, so
// {"password":123} means the password "123". Null, objects and arrays read
// as absent.
func jsonScalar(v json.RawMessage) string {
	var s string
	if json.Unmarshal(v, &s) == nil {
		return s
	}

	var scalar any
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()
	if dec.Decode(&scalar) != nil {
		return ""
	}

	switch scalar := scalar.(type) {
	case json.Number:
		return scalar.String()
	case bool:
		return strconv.FormatBool(scalar)
	default:
		return ""
	}
}

func parseURLEncodedFields(body io.Reader) (models.RequestFields, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return models.RequestFields{}, fmt.Errorf("error reading form body: %w", err)
	}

	values, err := url.ParseQuery(string(data))
	if err != nil {
		return fieldsFromValues(values), fmt.Errorf("error parsing form body: %w", err)
	}

	return fieldsFromValues(values), nil
}

func parseMultipartFields(body io.Reader, boundary string) (models.RequestFields, error) {
	if boundary == "" {
		return models.RequestFields{}, errMissingBoundary
	}

	form, err := multipart.NewReader(body, boundary).ReadForm(maxMultipartMemory)
	if err != nil {
		return models.RequestFields{}, fmt.Errorf("error parsing multipart body: %w", err)
	}
	defer form.RemoveAll()

	return fieldsFromValues(form.Value), nil
}

// fieldsFromValues keeps the first value of repeated fields.
func fieldsFromValues(values url.Values) models.RequestFields {
	return models.RequestFields{
		Encrypted:  values.Get(fieldEncrypted),
		UUID:       values.Get(fieldUUID),
		CryptoType: values.Get(fieldCryptoType),
		Password:   values.Get(fieldPassword),
	}
}
