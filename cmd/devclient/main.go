package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	addr := flag.String("addr", envOr("HANDICAP_GRPC_ADDR", "localhost:50051"), "server address")
	source := flag.String("source", "ghin", "handicap source")
	timeout := flag.Duration("timeout", 15*time.Second, "call timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: devclient [flags] <command> [args]\n\n"+
			"commands:\n"+
			"  handicap <golfer-id>\n"+
			"  search-player <last-name> [state]\n"+
			"  course <course-id>\n"+
			"  search-course <name> [state]\n"+
			"  tees <course-id> [tee-id]\n"+
			"  gpa <golfer-id> <email>\n"+
			"  playing-handicap <golfer-id> <tee-set-id> <percent> [index]\n\nflags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Error("gRPC connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := run(ctx, handicapv1.NewHandicapClient(conn), *source, flag.Args())
	if err != nil {
		logger.Error("call failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.Error("failed to print response", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c handicapv1.HandicapClient, source string, args []string) (any, error) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch args[0] {
	case "handicap":
		return c.GetHandicap(ctx, &handicapv1.GetHandicapRequest{Source: source, ID: arg(1)})
	case "search-player":
		return c.SearchPlayer(ctx, &handicapv1.SearchPlayerRequest{
			Q: &handicapv1.PlayerQuery{Source: source, LastName: arg(1), State: arg(2)},
			P: &handicapv1.Pagination{Page: 1, PerPage: 25},
		})
	case "course":
		return c.GetCourse(ctx, &handicapv1.GetCourseRequest{Source: source, CourseID: arg(1)})
	case "search-course":
		return c.SearchCourse(ctx, &handicapv1.SearchCourseRequest{Source: source, Name: arg(1), State: arg(2)})
	case "tees":
		return c.GetTees(ctx, &handicapv1.GetTeesRequest{Source: source, CourseID: arg(1), TeeID: arg(2)})
	case "gpa":
		return c.RequestProductAccess(ctx, &handicapv1.GpaRequest{Source: source, GolferID: arg(1), Email: arg(2)})
	case "playing-handicap":
		pct, err := strconv.ParseInt(arg(3), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("percent: %w", err)
		}
		return c.GetPlayingHandicaps(ctx, &handicapv1.GetPlayingHandicapsRequest{
			Source: source,
			Golfers: []*handicapv1.PlayingHandicapGolfer{
				{GolferID: arg(1), HandicapIndex: arg(4), TeeSetID: arg(2), TeeSetSide: "All18"},
			},
			Percents: []int32{int32(pct)},
		})
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
