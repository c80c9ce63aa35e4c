package serve

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/cmd/internal/opt"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/logs"
	"github.com/nelhage/gomokutician/notation"
	"github.com/nelhage/gomokutician/pb"
)

type Command struct {
	port int
	http string
	db   string
	opt  opt.Engine
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve gomokutician RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]

Serve the Analyze RPC over GRPC. With -http, also serve it as JSON at
POST /analyze, along with the games recorded in -db.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.StringVar(&c.http, "http", "", "also serve JSON over HTTP on this address")
	flags.StringVar(&c.db, "db", "", "sqlite game database to serve over HTTP")
	c.opt.AddFlags(flags)
}

type server struct {
	sync.Mutex
	cfg ai.MinimaxConfig
}

func newServer(cfg ai.MinimaxConfig) *server {
	return &server{cfg: cfg}
}

func (s *server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	b, err := gomoku.New(int(req.Size))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	for _, st := range req.Stones {
		c := gomoku.Cell(st.Player)
		if c != gomoku.Self && c != gomoku.Opponent {
			return nil, status.Errorf(codes.InvalidArgument, "stone %d,%d: bad player %d", st.X, st.Y, st.Player)
		}
		if !b.PlaceStone(int(st.X), int(st.Y), c, true) {
			return nil, status.Errorf(codes.InvalidArgument, "stone %d,%d: off the board", st.X, st.Y)
		}
	}

	s.Lock()
	defer s.Unlock()
	cfg := s.cfg
	if req.Depth > 0 {
		cfg.Depth = int(req.Depth)
	}
	r := ai.Explain(ctx, b, cfg)

	resp := &pb.AnalyzeResponse{
		Tier:      r.Tier.String(),
		Value:     r.Value,
		Static:    r.Static,
		WinInOne:  formatMoves(r.WinIn1),
		LoseInOne: formatMoves(r.LoseIn1),
		WinInTwo:  formatMoves(r.WinIn2),
		LoseInTwo: formatMoves(r.LoseIn2),
	}
	if r.HasMove {
		resp.Move = notation.FormatMove(r.Move)
		resp.MinimaxMove = notation.FormatMove(r.MinimaxMove)
		resp.Threats = &pb.Threats{
			Five:      int32(r.Threats.Five),
			OpenFour:  int32(r.Threats.OpenFour),
			Four:      int32(r.Threats.Four),
			OpenThree: int32(r.Threats.OpenThree),
			Two:       int32(r.Threats.Two),
		}
	}
	for _, c := range r.Critical {
		resp.Critical = append(resp.Critical, &pb.Candidate{
			X: int32(c.X), Y: int32(c.Y), Score: c.Score,
		})
	}
	return resp, nil
}

func formatMoves(ms []gomoku.Move) []string {
	var out []string
	for _, m := range ms {
		out = append(out, notation.FormatMove(m))
	}
	return out
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Validate(); err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	srv := newServer(c.opt.BuildConfig())
	grpcServer := grpc.NewServer()
	pb.RegisterGomokuServer(grpcServer, srv)

	var httpServer *http.Server
	if c.http != "" {
		var repo *logs.Repository
		if c.db != "" {
			if repo, err = logs.Open(c.db); err != nil {
				log.Printf("open %s: %v", c.db, err)
				return subcommands.ExitFailure
			}
			defer repo.Close()
		}
		httpServer = &http.Server{Addr: c.http, Handler: newRouter(srv, repo)}
		go func() {
			log.Printf("HTTP listening on %s", c.http)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				log.Printf("http: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		if httpServer != nil {
			httpServer.Shutdown(context.Background())
		}
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
