package logger

import (
	"context"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/rs/zerolog"
)

// Setup builds the process logger. Development mode logs at debug level to a
// console writer.
func Setup(dev bool) zerolog.Logger {
	var logger zerolog.Logger
	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Caller().Logger()

	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, FormatTimestamp: func(i any) string {
			return time.Now().Format(time.RFC3339)
		}}).Level(level).With().Stack().Logger()
	}

	return logger
}

var _ connect.Interceptor = (*ConnectRequests)(nil)

// ConnectRequests logs one line per RPC with its procedure, caller and outcome.
type ConnectRequests struct {
	logger zerolog.Logger
}

func NewConnectRequests(logger zerolog.Logger) *ConnectRequests {
	return &ConnectRequests{logger: logger}
}

func (c *ConnectRequests) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return connect.UnaryFunc(func(
		ctx context.Context,
		req connect.AnyRequest,
	) (connect.AnyResponse, error) {
		started := time.Now()

		lc := c.logger.With().
			Str("procedure", req.Spec().Procedure).
			Str("protocol", req.Peer().Protocol).
			Str("addr", req.Peer().Addr)
		if s := auth.SessionFromContext(ctx); s != nil {
			lc = lc.Str("external_user_id", s.UserID)
		}
		ctx = lc.Logger().WithContext(ctx)

		resp, err := next(ctx, req)

		if err != nil {
			ev := zerolog.Ctx(ctx).Error()
			switch connect.CodeOf(err) {
			case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeUnauthenticated:
				ev = zerolog.Ctx(ctx).Warn()
			}
			ev.Err(err).
				Str("code", connect.CodeOf(err).String()).
				Dur("duration", time.Since(started)).
				Msg("rpc call")

			return resp, err
		}

		zerolog.Ctx(ctx).Info().
			Dur("duration", time.Since(started)).
			Msg("rpc call")

		return resp, err
	})
}

func (c *ConnectRequests) WrapStreamingClient(
	next connect.StreamingClientFunc,
) connect.StreamingClientFunc {
	return connect.StreamingClientFunc(func(
		ctx context.Context,
		spec connect.Spec,
	) connect.StreamingClientConn {
		started := time.Now()
		ctx = c.logger.With().Logger().WithContext(ctx)

		conn := next(ctx, spec)

		zerolog.Ctx(ctx).Info().
			Dur("duration", time.Since(started)).
			Msg("rpc client stream finished")

		return conn
	})
}

func (c *ConnectRequests) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return connect.StreamingHandlerFunc(func(
		ctx context.Context,
		conn connect.StreamingHandlerConn,
	) error {
		started := time.Now()

		ctx = c.logger.With().
			Str("protocol", conn.Peer().Protocol).
			Str("addr", conn.Peer().Addr).
			Logger().WithContext(ctx)

		err := next(ctx, conn)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("rpc server stream error")
			return err
		}

		zerolog.Ctx(ctx).Info().
			Dur("duration", time.Since(started)).
			Msg("rpc server stream finished")

		return nil
	})
}
