package handler

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/dtroode/recommendme-server/internal/model"
)

// date accepts RFC 3339 as well as the looser forms browsers send, and epoch
// milliseconds.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		d.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// QueryForm is the client-side shape of a new query.
type QueryForm struct {
	Email            string `json:"email" validate:"required,email"`
	UserName         string `json:"userName"`
	UserImage        string `json:"userImage"`
	ProductName      string `json:"productName" validate:"required,max=200"`
	ProductBrand     string `json:"productBrand"`
	ProductImage     string `json:"productImage"`
	QueryTitle       string `json:"queryTitle"`
	BoycottingReason string `json:"boycottingReason"`
	Date             *date  `json:"date"`
}

func (f QueryForm) toModel() model.Query {
	q := model.Query{
		Email:            f.Email,
		UserName:         f.UserName,
		UserImage:        f.UserImage,
		ProductName:      f.ProductName,
		ProductBrand:     f.ProductBrand,
		ProductImage:     f.ProductImage,
		QueryTitle:       f.QueryTitle,
		BoycottingReason: f.BoycottingReason,
	}
	if f.Date != nil {
		q.Date = f.Date.Time
	}
	return q
}

type CreateQueryRequest struct {
	FormData QueryForm `json:"formData"`
}

type OwnQueriesRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateQueryRequest carries the fields to overwrite. Absent fields stay as they are.
type UpdateQueryRequest struct {
	ProductName      *string `json:"productName" validate:"omitempty,max=200"`
	ProductBrand     *string `json:"productBrand"`
	ProductImage     *string `json:"productImage"`
	QueryTitle       *string `json:"queryTitle"`
	BoycottingReason *string `json:"boycottingReason"`
	Date             *date   `json:"date"`
}

func (u UpdateQueryRequest) toModel() model.QueryUpdate {
	return model.QueryUpdate{
		ProductName:      u.ProductName,
		ProductBrand:     u.ProductBrand,
		ProductImage:     u.ProductImage,
		QueryTitle:       u.QueryTitle,
		BoycottingReason: u.BoycottingReason,
		Date:             u.Date.ptr(),
	}
}

type CreateRecommendationRequest struct {
	QueryID                 string `json:"queryId" validate:"required"`
	QueryTitle              string `json:"queryTitle"`
	ProductName             string `json:"productName"`
	UserEmail               string `json:"userEmail" validate:"omitempty,email"`
	UserName                string `json:"userName"`
	RecommenderEmail        string `json:"recommenderEmail" validate:"required,email"`
	RecommenderName         string `json:"recommenderName"`
	RecommendationTitle     string `json:"recommendationTitle"`
	RecommendedProductName  string `json:"recommendedProductName"`
	RecommendedProductImage string `json:"recommendedProductImage"`
	RecommendationReason    string `json:"recommendationReason"`
	Date                    *date  `json:"date"`
}

func (c CreateRecommendationRequest) toModel() model.Recommendation {
	rec := model.Recommendation{
		QueryID:                 c.QueryID,
		QueryTitle:              c.QueryTitle,
		ProductName:             c.ProductName,
		UserEmail:               c.UserEmail,
		UserName:                c.UserName,
		RecommenderEmail:        c.RecommenderEmail,
		RecommenderName:         c.RecommenderName,
		RecommendationTitle:     c.RecommendationTitle,
		RecommendedProductName:  c.RecommendedProductName,
		RecommendedProductImage: c.RecommendedProductImage,
		RecommendationReason:    c.RecommendationReason,
	}
	if c.Date != nil {
		rec.Date = c.Date.Time
	}
	return rec
}
