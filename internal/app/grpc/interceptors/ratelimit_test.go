package interceptors

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
)

func fromPeer(host string, port int) context.Context {
	return peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP(host), Port: port},
	})
}

func newRateLimited(limiters *ratelimit.PerMethod) grpc.UnaryServerInterceptor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return UnaryRateLimitInterceptor(limiters, app_errors.NewErrorClassifier(logger))
}

func okHandler(context.Context, any) (any, error) { return "ok", nil }

func TestRateLimit_SameHostAcrossConnections(t *testing.T) {
	limiters := ratelimit.NewPerMethod(ratelimit.NewInMemoryRateLimiter(rate.Limit(0.001), 1, 0), nil)
	interceptor := newRateLimited(limiters)
	info := &grpc.UnaryServerInfo{FullMethod: "/handicap.v1.Handicap/GetHandicap"}

	allowed := 0
	for port := 40000; port < 40010; port++ {
		if _, err := interceptor(fromPeer("10.0.0.7", port), nil, info, okHandler); err == nil {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed)

	_, err := interceptor(fromPeer("10.0.0.8", 40000), nil, info, okHandler)
	assert.NoError(t, err, "other hosts keep their own bucket")
}

func TestRateLimit_BucketsPerMethod(t *testing.T) {
	limiters := ratelimit.NewPerMethod(
		ratelimit.NewInMemoryRateLimiter(rate.Limit(0.001), 1, 0),
		map[string]ratelimit.Limiter{"SearchPlayer": ratelimit.NewInMemoryRateLimiter(rate.Limit(0.001), 3, 0)},
	)
	interceptor := newRateLimited(limiters)
	handicap := &grpc.UnaryServerInfo{FullMethod: "/handicap.v1.Handicap/GetHandicap"}
	course := &grpc.UnaryServerInfo{FullMethod: "/handicap.v1.Handicap/GetCourse"}
	search := &grpc.UnaryServerInfo{FullMethod: "/handicap.v1.Handicap/SearchPlayer"}

	_, err := interceptor(fromPeer("10.0.0.7", 1), nil, handicap, okHandler)
	require.NoError(t, err)
	_, err = interceptor(fromPeer("10.0.0.7", 2), nil, handicap, okHandler)
	require.ErrorContains(t, err, "rate limit exceeded")

	_, err = interceptor(fromPeer("10.0.0.7", 3), nil, course, okHandler)
	assert.NoError(t, err, "a throttled method does not consume another method's bucket")

	for i := 0; i < 3; i++ {
		_, err = interceptor(fromPeer("10.0.0.7", 10+i), nil, search, okHandler)
		require.NoError(t, err)
	}
	_, err = interceptor(fromPeer("10.0.0.7", 20), nil, search, okHandler)
	assert.ErrorContains(t, err, "rate limit exceeded")
}
