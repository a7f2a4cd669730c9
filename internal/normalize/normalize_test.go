package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FolioSentry/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeCryptoRenamesPrice(t *testing.T) {
	rows := []map[string]any{
		{"datetime": day(1), "price": 100.0, "volume": 5000.0, "market_cap": 1e9},
		{"datetime": day(2), "price": 105.0, "volume": 6000.0, "market_cap": 1.1e9},
	}
	s, err := Normalize("bitcoin", model.ClassCrypto, rows)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, model.ClassCrypto, s.Class)
	assert.Equal(t, 100.0, s.Points[0].Fields[model.FieldClose])
	assert.Equal(t, 5000.0, s.Points[0].Fields[model.FieldVolume])
	assert.Equal(t, 1e9, s.Points[0].Fields[model.FieldMarketCap])
}

func TestNormalizeEquityUsesCloseAndCarriesHighLow(t *testing.T) {
	rows := []map[string]any{
		{"Date": day(1), "Close": 50.0, "High": 52.0, "Low": 49.0, "Volume": 100.0},
	}
	s, err := Normalize("AAPL", model.ClassEquity, rows)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.Points[0].Fields[model.FieldClose])
	assert.Equal(t, 52.0, s.Points[0].Fields[model.FieldHigh])
	assert.Equal(t, 49.0, s.Points[0].Fields[model.FieldLow])
}

func TestNormalizeNoTimestampField(t *testing.T) {
	rows := []map[string]any{{"Close": 50.0}}
	_, err := Normalize("AAPL", model.ClassEquity, rows)
	var schemaErr *model.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "AAPL", schemaErr.Asset)
}

func TestNormalizeNoPriceField(t *testing.T) {
	// equity rows with a crypto-shaped price column are unprocessable
	rows := []map[string]any{{"Date": day(1), "price": 50.0}}
	_, err := Normalize("AAPL", model.ClassEquity, rows)
	var schemaErr *model.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestNormalizeSortsAndDupsKeepLast(t *testing.T) {
	rows := []map[string]any{
		{"Date": day(3), "Close": 30.0},
		{"Date": day(1), "Close": 10.0},
		{"Date": day(3), "Close": 33.0}, // duplicate timestamp, later write wins
		{"Date": day(2), "Close": 20.0},
	}
	s, err := Normalize("AAPL", model.ClassEquity, rows)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{10, 20, 33}, s.Closes())
	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.Points[i-1].Time.Before(s.Points[i].Time))
	}
}

func TestNormalizeDropsNonPositiveCloses(t *testing.T) {
	rows := []map[string]any{
		{"Date": day(1), "Close": 10.0},
		{"Date": day(2), "Close": 0.0},
		{"Date": day(3), "Close": -5.0},
	}
	s, err := Normalize("AAPL", model.ClassEquity, rows)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, s.Closes())
}

func TestNormalizeEmptyUsablePoints(t *testing.T) {
	rows := []map[string]any{{"Date": day(1), "Close": 0.0}}
	_, err := Normalize("AAPL", model.ClassEquity, rows)
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestNormalizeNoRows(t *testing.T) {
	_, err := Normalize("AAPL", model.ClassEquity, nil)
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestNormalizeParsesStringDates(t *testing.T) {
	rows := []map[string]any{
		{"Date": "2025-06-01", "Close": 10.0},
		{"Date": "2025-06-02", "Close": 11.0},
	}
	s, err := Normalize("AAPL", model.ClassEquity, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}
