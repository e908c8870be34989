package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propscan/propscan/constants"
	"github.com/propscan/propscan/internal/extract"
)

func sampleRecords() []extract.Record {
	return []extract.Record{
		{
			BuyerName:       "Jane Doe",
			SellerName:      "John Smith",
			PropertyAddress: "123 Main St",
			KeyDates:        "2024-01-15",
			OfferPrice:      "450,000",
			SourceFile:      "deed_001.jpg",
		},
		{
			BuyerName:       constants.NotFound,
			SellerName:      constants.NotFound,
			PropertyAddress: constants.NotFound,
			KeyDates:        constants.NotFound,
			OfferPrice:      constants.NotFound,
			SourceFile:      "blank.png",
		},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0]["buyerName"])
	assert.Equal(t, "deed_001.jpg", got[0]["sourceFile"])
	assert.Equal(t, constants.NotFound, got[1]["offerPrice"])
}

func TestWriteJSONEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Empty(t, got)
	assert.Equal(t, "[]\n", string(data), "empty batch still writes a JSON document")
}
