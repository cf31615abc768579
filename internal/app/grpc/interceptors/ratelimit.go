package interceptors

import (
	"context"
	"fmt"
	"net"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/ratelimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
)

// UnaryRateLimitInterceptor rejects calls once a client host exceeds its
// allowance for the called method. Every connection from the same host shares
// one bucket per method.
func UnaryRateLimitInterceptor(limiters *ratelimit.PerMethod, errorClassifier *app_errors.ErrorClassifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		host := peerHost(ctx)
		key := host + " " + info.FullMethod

		if !limiters.For(info.FullMethod).Allow(key) {
			err := fmt.Errorf("%w for %s", app_errors.ErrRateLimit, host)
			return nil, errorClassifier.LogAndSanitize(ctx, errorClassifier.Classify(err, info.FullMethod))
		}

		return handler(ctx, req)
	}
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
