package features

import (
	"math"

	"FinGather/internal/domain/models"
)

// TradingDaysPerYear is the annualization base for daily bars.
const TradingDaysPerYear = 252.0

// ComputeLogReturns computes log returns r_t = ln(C_t / C_{t-1}).
// It returns a slice of length len(candles)-1, or nil if insufficient data.
func ComputeLogReturns(candles []models.Candle) []float64 {
	if len(candles) < 2 {
		return nil
	}
	out := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		prev := candles[i-1].Close
		cur := candles[i].Close
		if prev <= 0 || cur <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

// RealizedVolatility computes annualized realized volatility over a rolling window
// using the provided number of bars per year. Returns the latest window sigma.
func RealizedVolatility(logReturns []float64, window int, barsPerYear float64) float64 {
	if window <= 1 || len(logReturns) < window {
		return 0
	}
	sum := 0.0
	sum2 := 0.0
	for i := len(logReturns) - window; i < len(logReturns); i++ {
		r := logReturns[i]
		sum += r
		sum2 += r * r
	}
	n := float64(window)
	mean := sum / n
	variance := (sum2 - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	// annualize
	return math.Sqrt(variance * barsPerYear)
}

// SMA returns the simple moving average of the last n closes, or 0 when
// fewer than n candles exist.
func SMA(candles []models.Candle, n int) float64 {
	if n <= 0 || len(candles) < n {
		return 0
	}
	sum := 0.0
	for i := len(candles) - n; i < len(candles); i++ {
		sum += candles[i].Close
	}
	return sum / float64(n)
}

// RSI computes the relative strength index over the last period bars.
// Returns 0 when there is not enough history.
func RSI(candles []models.Candle, period int) float64 {
	if period <= 0 || len(candles) < period+1 {
		return 0
	}
	var gains, losses float64
	for i := len(candles) - period; i < len(candles); i++ {
		delta := candles[i].Close - candles[i-1].Close
		if delta > 0 {
			gains += delta
		} else {
			losses -= delta
		}
	}
	if losses == 0 {
		return 100
	}
	rs := gains / losses
	return 100 - 100/(1+rs)
}

// Momentum returns the percent change of the close over the last n bars.
func Momentum(candles []models.Candle, n int) float64 {
	if n <= 0 || len(candles) < n+1 {
		return 0
	}
	prev := candles[len(candles)-1-n].Close
	cur := candles[len(candles)-1].Close
	if prev == 0 {
		return 0
	}
	return (cur - prev) / math.Abs(prev) * 100
}

// RangePosition places the last close within the observed high/low range,
// 0 at the low, 100 at the high. Returns 0 when the range is degenerate.
func RangePosition(candles []models.Candle) float64 {
	if len(candles) == 0 {
		return 0
	}
	low := math.Inf(1)
	high := math.Inf(-1)
	for _, c := range candles {
		if c.Low > 0 && c.Low < low {
			low = c.Low
		}
		if c.High > high {
			high = c.High
		}
	}
	if high <= low {
		return 0
	}
	last := candles[len(candles)-1].Close
	return (last - low) / (high - low) * 100
}
