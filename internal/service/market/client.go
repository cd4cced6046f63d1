// Package market fetches daily price history from Yahoo Finance.
package market

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"FinGather/internal/domain/models"
)

// Client wraps the Yahoo Finance chart API. Bar prices arrive as decimals and
// are converted to float64 once, here at the ingestion boundary.
type Client struct{}

// New creates a market data client.
func New() *Client { return &Client{} }

// DailyBars returns daily OHLCV bars for ticker within [from, to], ascending
// by date.
func (c *Client) DailyBars(ctx context.Context, ticker string, from, to time.Time) ([]models.Candle, error) {
	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var bars []models.Candle
	for iter.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		bar := iter.Bar()
		bars = append(bars, models.Candle{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Symbol: ticker,
			Open:   toFloat(bar.Open),
			High:   toFloat(bar.High),
			Low:    toFloat(bar.Low),
			Close:  toFloat(bar.Close),
			Volume: float64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}
	return bars, nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
