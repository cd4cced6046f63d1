package usecase

import (
	"context"
	"fmt"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/services/features"
	"FinGather/internal/services/report"
	"FinGather/pkg/logger"
)

const historyWindow = 182 * 24 * time.Hour // ~6 months of daily bars

// TechnicalsSource computes price signals from daily bars: moving average
// cross state, RSI, momentum, realized volatility, and range position.
type TechnicalsSource struct {
	market repository.MarketDataProvider
	log    *logger.Logger
	now    func() time.Time
}

// NewTechnicalsSource creates the technicals handler.
func NewTechnicalsSource(market repository.MarketDataProvider, log *logger.Logger) *TechnicalsSource {
	return &TechnicalsSource{market: market, log: log, now: time.Now}
}

// Gather implements SourceHandler.
func (s *TechnicalsSource) Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error) {
	now := s.now()
	from := now.Add(-historyWindow)

	bars, err := s.market.DailyBars(ctx, req.Ticker, from, now)
	if err != nil {
		return nil, fmt.Errorf("daily bars: %w", err)
	}

	signals := ComputeSignals(bars)
	var lastClose float64
	if len(bars) > 0 {
		lastClose = bars[len(bars)-1].Close
	}

	markdown := report.Technicals(report.TechnicalsInput{
		Ticker:    req.Ticker,
		Company:   req.Company,
		Theme:     req.Theme,
		Directive: req.Directive,
		Now:       now,
		LastClose: lastClose,
		BarCount:  len(bars),
		From:      from,
		To:        now,
		Signals:   signals,
	})

	return &models.TechnicalsPayload{
		Report:      markdown,
		SignalCount: len(signals),
	}, nil
}

// ComputeSignals derives indicator readings from daily bars. Indicators that
// lack sufficient history are omitted rather than reported as zero.
func ComputeSignals(bars []models.Candle) []report.Signal {
	var signals []report.Signal
	if len(bars) == 0 {
		return signals
	}

	if sma20 := features.SMA(bars, 20); sma20 > 0 {
		if sma50 := features.SMA(bars, 50); sma50 > 0 {
			state := "bearish"
			if sma20 >= sma50 {
				state = "bullish"
			}
			signals = append(signals, report.Signal{
				Name:    "SMA20 vs SMA50",
				Value:   fmt.Sprintf("$%.2f vs $%.2f", sma20, sma50),
				Reading: state,
			})
		} else {
			signals = append(signals, report.Signal{
				Name:  "SMA20",
				Value: fmt.Sprintf("$%.2f", sma20),
			})
		}
	}

	if rsi := features.RSI(bars, 14); len(bars) >= 15 {
		zone := "neutral"
		switch {
		case rsi >= 70:
			zone = "overbought"
		case rsi <= 30:
			zone = "oversold"
		}
		signals = append(signals, report.Signal{
			Name:    "RSI (14)",
			Value:   fmt.Sprintf("%.1f", rsi),
			Reading: zone,
		})
	}

	if len(bars) >= 22 {
		mom := features.Momentum(bars, 21)
		signals = append(signals, report.Signal{
			Name:  "1-Month Momentum",
			Value: fmt.Sprintf("%+.1f%%", mom),
		})
	}

	returns := features.ComputeLogReturns(bars)
	if vol := features.RealizedVolatility(returns, 21, features.TradingDaysPerYear); vol > 0 {
		signals = append(signals, report.Signal{
			Name:  "Realized Volatility (21d, annualized)",
			Value: fmt.Sprintf("%.1f%%", vol*100),
		})
	}

	if len(bars) >= 2 {
		pos := features.RangePosition(bars)
		signals = append(signals, report.Signal{
			Name:  "Range Position",
			Value: fmt.Sprintf("%.0f%% of period high/low range", pos),
		})
	}

	return signals
}
