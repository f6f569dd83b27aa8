package dto

import (
	"mime/multipart"
	"time"
)

// CustomerFileData is the raw multipart input of a restaurant creation request.
// The JSON is decoded into a MasterCustomer before use; the file is stored separately.
type CustomerFileData struct {
	RawCustomerJSON string
	UploadedFile    *multipart.FileHeader
}

// HasFile reports whether an image was uploaded with the record
func (d *CustomerFileData) HasFile() bool {
	return d.UploadedFile != nil
}

// CompanySearch holds the query parameters of a paginated restaurant listing
type CompanySearch struct {
	Search string
	PageNo int
}

// CompanySummary is returned after a restaurant is created or updated
type CompanySummary struct {
	DID         int64     `json:"DID"`
	CompanyName string    `json:"CompanyName"`
	City        string    `json:"City,omitempty"`
	LogoKey     string    `json:"LogoKey,omitempty"`
	Created     bool      `json:"Created"`
	UpdatedAt   time.Time `json:"UpdatedAt"`
}

// CompanyRow is one row of a restaurant listing
type CompanyRow struct {
	DID           int64  `json:"DID"`
	CompanyName   string `json:"CompanyName"`
	ContactPerson string `json:"ContactPerson,omitempty"`
	Phone         string `json:"Phone,omitempty"`
	Email         string `json:"Email,omitempty"`
	City          string `json:"City,omitempty"`
	LogoKey       string `json:"LogoKey,omitempty"`
}

// CompanySearchResult is the data of a search envelope.
// TotalRow is always serialized, including when it is zero.
type CompanySearchResult struct {
	Rows     []CompanyRow `json:"rows"`
	TotalRow int64        `json:"totalrow"`
	PageNo   int          `json:"pageno"`
	PageSize int          `json:"pagesize"`
}
