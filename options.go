package zungjung

import (
	"io"
	"log/slog"
)

// Option configures a scoring call.
type Option func(*options)

type options struct {
	seatWind int // 0 when unknown
	logger   *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeatWind tells the detector which wind (East..North) is the player's seat,
// enabling Triplet of Seat Wind. Without it that yaku is never awarded.
func WithSeatWind(wind int) Option {
	return func(o *options) {
		if wind >= East && wind <= North {
			o.seatWind = wind
		}
	}
}

// WithLogger routes search diagnostics to logger at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
