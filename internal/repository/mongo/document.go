package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/recommendme-server/internal/model"
)

type queryDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Email               string             `bson:"email"`
	UserName            string             `bson:"userName,omitempty"`
	UserImage           string             `bson:"userImage,omitempty"`
	ProductName         string             `bson:"productName"`
	ProductBrand        string             `bson:"productBrand,omitempty"`
	ProductImage        string             `bson:"productImage,omitempty"`
	QueryTitle          string             `bson:"queryTitle,omitempty"`
	BoycottingReason    string             `bson:"boycottingReason,omitempty"`
	Date                documentDate       `bson:"date"`
	RecommendationCount int                `bson:"recommendationCount,omitempty"`
}

func newQueryDocument(q model.Query) queryDocument {
	return queryDocument{
		Email:               q.Email,
		UserName:            q.UserName,
		UserImage:           q.UserImage,
		ProductName:         q.ProductName,
		ProductBrand:        q.ProductBrand,
		ProductImage:        q.ProductImage,
		QueryTitle:          q.QueryTitle,
		BoycottingReason:    q.BoycottingReason,
		Date:                documentDate(q.Date),
		RecommendationCount: q.RecommendationCount,
	}
}

func (d queryDocument) toModel() model.Query {
	return model.Query{
		ID:                  hexOrEmpty(d.ID),
		Email:               d.Email,
		UserName:            d.UserName,
		UserImage:           d.UserImage,
		ProductName:         d.ProductName,
		ProductBrand:        d.ProductBrand,
		ProductImage:        d.ProductImage,
		QueryTitle:          d.QueryTitle,
		BoycottingReason:    d.BoycottingReason,
		Date:                time.Time(d.Date),
		RecommendationCount: d.RecommendationCount,
	}
}

type recommendationDocument struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	QueryID                 string             `bson:"queryId"`
	QueryTitle              string             `bson:"queryTitle,omitempty"`
	ProductName             string             `bson:"productName,omitempty"`
	UserEmail               string             `bson:"userEmail"`
	UserName                string             `bson:"userName,omitempty"`
	RecommenderEmail        string             `bson:"recommenderEmail"`
	RecommenderName         string             `bson:"recommenderName,omitempty"`
	RecommendationTitle     string             `bson:"recommendationTitle,omitempty"`
	RecommendedProductName  string             `bson:"recommendedProductName,omitempty"`
	RecommendedProductImage string             `bson:"recommendedProductImage,omitempty"`
	RecommendationReason    string             `bson:"recommendationReason,omitempty"`
	Date                    documentDate       `bson:"date"`
}

func newRecommendationDocument(r model.Recommendation) recommendationDocument {
	return recommendationDocument{
		QueryID:                 r.QueryID,
		QueryTitle:              r.QueryTitle,
		ProductName:             r.ProductName,
		UserEmail:               r.UserEmail,
		UserName:                r.UserName,
		RecommenderEmail:        r.RecommenderEmail,
		RecommenderName:         r.RecommenderName,
		RecommendationTitle:     r.RecommendationTitle,
		RecommendedProductName:  r.RecommendedProductName,
		RecommendedProductImage: r.RecommendedProductImage,
		RecommendationReason:    r.RecommendationReason,
		Date:                    documentDate(r.Date),
	}
}

func (d recommendationDocument) toModel() model.Recommendation {
	return model.Recommendation{
		ID:                      hexOrEmpty(d.ID),
		QueryID:                 d.QueryID,
		QueryTitle:              d.QueryTitle,
		ProductName:             d.ProductName,
		UserEmail:               d.UserEmail,
		UserName:                d.UserName,
		RecommenderEmail:        d.RecommenderEmail,
		RecommenderName:         d.RecommenderName,
		RecommendationTitle:     d.RecommendationTitle,
		RecommendedProductName:  d.RecommendedProductName,
		RecommendedProductImage: d.RecommendedProductImage,
		RecommendationReason:    d.RecommendationReason,
		Date:                    time.Time(d.Date),
	}
}

// documentDate is stored as a BSON date. Older documents that carry the date
// as a string are read too.
type documentDate time.Time

func (d documentDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(primitive.NewDateTimeFromTime(time.Time(d)))
}

func (d *documentDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = documentDate(primitive.DateTime(raw.DateTime()).Time().UTC())
	case bsontype.String:
		parsed, err := model.ParseDate(raw.StringValue())
		if err != nil {
			return err
		}
		*d = documentDate(parsed)
	case bsontype.Null, bsontype.Undefined:
		*d = documentDate{}
	default:
		return fmt.Errorf("cannot decode %s into a date", t)
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", model.ErrInvalidID, id)
	}
	return oid, nil
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func insertedHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return hexOrEmpty(oid)
	}
	return ""
}
