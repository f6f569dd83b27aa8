package validation

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/models"
)

const (
	// CustomerDataField is the multipart field carrying the customer JSON
	CustomerDataField = "customerdata"
	// LogoFileField is the optional multipart file field
	LogoFileField = "file"

	DefaultMaxUploadMemory int64 = 10 << 20
)

// ReadCustomerForm extracts the customer JSON and the optional logo from a
// multipart request. A body that cannot be read is reported as PayloadUnreadable;
// an absent customerdata field is MalformedPayload.
func ReadCustomerForm(r *http.Request, maxMemory int64) (*dto.CustomerFileData, error) {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxUploadMemory
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if stderrors.Is(err, http.ErrNotMultipart) {
			return nil, apperrors.New(apperrors.MalformedPayload,
				apperrors.WithMessage("Request must be multipart/form-data"),
				apperrors.WithCause(err),
			)
		}
		return nil, apperrors.New(apperrors.PayloadUnreadable, apperrors.WithCause(err))
	}

	data := &dto.CustomerFileData{}

	values, ok := r.MultipartForm.Value[CustomerDataField]
	if !ok || len(values) == 0 {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: customerdata field is required"),
		)
	}
	data.RawCustomerJSON = values[0]

	if files := r.MultipartForm.File[LogoFileField]; len(files) > 0 {
		data.UploadedFile = files[0]
	}

	return data, nil
}

// ParseCustomer decodes the embedded customer JSON. The file part plays no role
// here: a bad document fails even when an image was uploaded.
func ParseCustomer(raw string) (*models.MasterCustomer, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, malformed("customerdata is empty")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: customerdata is not valid JSON"),
			apperrors.WithCause(err),
		)
	}
	if len(fields) == 0 {
		return nil, malformed("customerdata must be a non-empty JSON object")
	}

	decoder := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	var customer models.MasterCustomer
	if err := decoder.Decode(&customer); err != nil {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: customerdata does not match the customer shape"),
			apperrors.WithCause(err),
		)
	}

	if err := GetValidator().Struct(&customer); err != nil {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: customer validation failed"),
			apperrors.WithDetails(FieldErrors(err)...),
			apperrors.WithCause(err),
		)
	}

	if customer.DID < 0 {
		return nil, malformed("DID cannot be negative")
	}

	// server-managed, never taken from the client
	customer.LogoKey = ""
	customer.CreatedAt = time.Time{}
	customer.UpdatedAt = time.Time{}

	return &customer, nil
}

// ParseCompanySearch reads search and pageno from a query string.
// Non-positive page numbers are rejected rather than clamped.
func ParseCompanySearch(query url.Values) (*dto.CompanySearch, error) {
	search := strings.TrimSpace(query.Get("search"))

	rawPage := strings.TrimSpace(query.Get("pageno"))
	if rawPage == "" {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: pageno is required"),
		)
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil {
		return nil, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: pageno must be an integer"),
			apperrors.WithCause(err),
		)
	}

	if page <= 0 {
		return nil, apperrors.New(apperrors.InvalidPage,
			apperrors.WithDetails(fmt.Sprintf("pageno: got %d", page)),
		)
	}

	return &dto.CompanySearch{Search: search, PageNo: page}, nil
}

// ParseCustomerID reads a positive customer identifier from a query value
func ParseCustomerID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, malformed("customerid is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.New(apperrors.MalformedPayload,
			apperrors.WithMessage("Invalid request format: customerid must be a positive integer"),
			apperrors.WithCause(err),
		)
	}

	return id, nil
}

// Struct validates a bound request model and converts failures to MalformedPayload
func Struct(model interface{}) error {
	if err := GetValidator().Struct(model); err != nil {
		return apperrors.New(apperrors.MalformedPayload,
			apperrors.WithDetails(FieldErrors(err)...),
			apperrors.WithCause(err),
		)
	}
	return nil
}

func malformed(reason string) *apperrors.Error {
	return apperrors.New(apperrors.MalformedPayload,
		apperrors.WithMessage("Invalid request format: "+reason),
	)
}
