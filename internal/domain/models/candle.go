package models

import "time"

// Candle is one daily OHLCV bar used by the technicals source. Prices are
// converted to float64 once, when bars are ingested from the market provider.
type Candle struct {
	Date   time.Time
	Symbol string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
