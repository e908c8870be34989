package extract

import "github.com/propscan/propscan/constants"

// Record is the structured result for one document. Every field holds either
// an extracted value or constants.NotFound; records are never partially
// initialized and never mutated after Extract returns one.
type Record struct {
	BuyerName       string `json:"buyerName"`
	SellerName      string `json:"sellerName"`
	PropertyAddress string `json:"propertyAddress"`
	KeyDates        string `json:"keyDates"`
	OfferPrice      string `json:"offerPrice"`
	SourceFile      string `json:"sourceFile"`
}

// Field returns the value for a field name, or the sentinel for an unknown name.
func (r Record) Field(name string) string {
	switch name {
	case constants.FieldBuyerName:
		return r.BuyerName
	case constants.FieldSellerName:
		return r.SellerName
	case constants.FieldPropertyAddress:
		return r.PropertyAddress
	case constants.FieldKeyDates:
		return r.KeyDates
	case constants.FieldOfferPrice:
		return r.OfferPrice
	}
	return constants.NotFound
}

func (r *Record) setField(name, value string) {
	switch name {
	case constants.FieldBuyerName:
		r.BuyerName = value
	case constants.FieldSellerName:
		r.SellerName = value
	case constants.FieldPropertyAddress:
		r.PropertyAddress = value
	case constants.FieldKeyDates:
		r.KeyDates = value
	case constants.FieldOfferPrice:
		r.OfferPrice = value
	}
}
