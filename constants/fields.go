package constants

// Record fields extracted from a document. The set is closed and known at
// build time; every record carries exactly these five.
const (
	FieldBuyerName       = "buyerName"
	FieldSellerName      = "sellerName"
	FieldPropertyAddress = "propertyAddress"
	FieldKeyDates        = "keyDates"
	FieldOfferPrice      = "offerPrice"
)

// NotFound is the sentinel value for a field that no strategy resolved.
const NotFound = "Not found"

// FieldNames lists the record fields in canonical output order.
var FieldNames = []string{
	FieldBuyerName,
	FieldSellerName,
	FieldPropertyAddress,
	FieldKeyDates,
	FieldOfferPrice,
}
