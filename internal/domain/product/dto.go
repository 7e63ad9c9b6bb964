package product

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

type CreateRequest struct {
	Code        string   `json:"code" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	CategoryID  string   `json:"category_id" binding:"required"`
	BrandID     string   `json:"brand_id"`
	Status      Status   `json:"status" binding:"omitempty,oneof=available out_of_stock"`
	IsFeatured  bool     `json:"is_featured"`
	IsNew       bool     `json:"is_new"`
	Length      *float64 `json:"length" binding:"omitempty,min=0"`
	Width       *float64 `json:"width" binding:"omitempty,min=0"`
	Height      *float64 `json:"height" binding:"omitempty,min=0"`
}

type UpdateRequest struct {
	Code        *string    `json:"code"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	CategoryID  OptionalID `json:"category_id"`
	BrandID     OptionalID `json:"brand_id"`
	Status      *Status    `json:"status" binding:"omitempty,oneof=available out_of_stock"`
	IsFeatured  *bool      `json:"is_featured"`
	IsNew       *bool      `json:"is_new"`
	Length      *float64   `json:"length" binding:"omitempty,min=0"`
	Width       *float64   `json:"width" binding:"omitempty,min=0"`
	Height      *float64   `json:"height" binding:"omitempty,min=0"`
}

// Empty reports whether the request changes nothing.
func (r *UpdateRequest) Empty() bool {
	return r.Code == nil && r.Name == nil && r.Description == nil &&
		!r.CategoryID.Set && !r.BrandID.Set && r.Status == nil &&
		r.IsFeatured == nil && r.IsNew == nil &&
		r.Length == nil && r.Width == nil && r.Height == nil
}

// OptionalID is a nullable foreign key in a partial update. Set records that
// the field was present; null and "" both clear the reference. A value that
// is not a UUID leaves Invalid set for the caller to reject.
type OptionalID struct {
	Set     bool
	Invalid bool
	ID      uuid.NullUUID
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Invalid = false
	o.ID = uuid.NullUUID{}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.Invalid = true
		return nil
	}
	if s == "" {
		return nil
	}

	id, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		o.Invalid = true
		return nil
	}
	o.ID = uuid.NullUUID{UUID: id, Valid: true}
	return nil
}

// Changes is a validated partial update. Slug is set whenever Name is.
type Changes struct {
	Code        *string
	Name        *string
	Slug        *string
	Description *string
	CategoryID  *uuid.NullUUID
	BrandID     *uuid.NullUUID
	Status      *Status
	IsFeatured  *bool
	IsNew       *bool
	Length      *float64
	Width       *float64
	Height      *float64
}
