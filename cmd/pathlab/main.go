// Command pathlab builds a sample road network, computes a route on it and
// optionally animates a vehicle driving the route in the terminal.
//
// Usage:
//
//	pathlab [-config pathlab.yaml] [-mode geo|planar] [-algo dijkstra] [-start 1] [-goal 4] [-play] [-json]
//
// Geo mode uses the Pakistan city network (ids in list order, Karachi = 1);
// planar mode uses a jittered grid shaped by the grid section of the config.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/logging"
	"github.com/katalvlaran/pathlab/playback"
	"github.com/katalvlaran/pathlab/session"
)

// cliOptions are the flags that do not live in config.Config.
type cliOptions struct {
	play   bool
	asJSON bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pathlab:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, w io.Writer) error {
	cfg, opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}

	req := session.Request{
		Algorithm: session.Algorithm(cfg.Algorithm),
		Start:     cfg.Start,
		Goal:      cfg.Goal,
		HasGoal:   cfg.Goal > 0,
	}

	if cfg.Mode == "planar" {
		s := session.NewPlanar(session.WithLogger(log))
		bopts := []builder.BuilderOption{
			builder.WithSeed(cfg.Grid.Seed),
			builder.WithSpacing(cfg.Grid.Spacing),
		}
		if err := builder.Build(s.Graph(), bopts, builder.JitteredGrid(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Amplitude)); err != nil {
			return fmt.Errorf("build grid: %w", err)
		}
		log.Debug().Int("nodes", s.Graph().NodeCount()).Int("edges", s.Graph().EdgeCount()).Msg("grid ready")

		return demo(ctx, s, playback.Planar, req, cfg, opts, nil, w)
	}

	s := session.NewGeo(session.WithLogger(log))
	ids := map[string]int{}
	if err := builder.Build(s.Graph(), nil, builder.PakistanCities(ids)); err != nil {
		return fmt.Errorf("build cities: %w", err)
	}
	names := make(map[int]string, len(ids))
	for name, id := range ids {
		names[id] = name
	}

	return demo(ctx, s, playback.Geo, req, cfg, opts, names, w)
}

// parseArgs loads the config named by -config and lets explicitly set flags
// override it.
func parseArgs(args []string) (*config.Config, cliOptions, error) {
	var (
		opts        cliOptions
		configPath  string
		mode, algo  string
		start, goal int
	)
	fs := flag.NewFlagSet("pathlab", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&mode, "mode", "", "sample graph: geo or planar")
	fs.StringVar(&algo, "algo", "", "algorithm: "+algorithmNames())
	fs.IntVar(&start, "start", 0, "start node id")
	fs.IntVar(&goal, "goal", 0, "goal node id (0 for none)")
	fs.BoolVar(&opts.play, "play", false, "animate the vehicle along the route")
	fs.BoolVar(&opts.asJSON, "json", false, "print the outcome as JSON")
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = strings.ToLower(mode)
		case "algo":
			cfg.Algorithm = strings.ToLower(algo)
		case "start":
			cfg.Start = start
		case "goal":
			cfg.Goal = goal
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}

	return cfg, opts, nil
}

func algorithmNames() string {
	names := make([]string, len(session.Algorithms))
	for i, a := range session.Algorithms {
		names[i] = string(a)
	}

	return strings.Join(names, ", ")
}

func demo[C any](
	ctx context.Context,
	s *session.Session[C],
	in playback.Interp[C],
	req session.Request,
	cfg *config.Config,
	opts cliOptions,
	names map[int]string,
	w io.Writer,
) error {
	out, err := s.Compute(ctx, req)
	if err != nil {
		return err
	}

	if opts.asJSON {
		b, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode outcome: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return err
		}
	} else if err := printOutcome(w, out, names); err != nil {
		return err
	}

	if !opts.play || !out.Found() {
		return nil
	}

	steps := cfg.Playback.StepsPerSegment
	if steps == 0 {
		steps = playback.StepsForSpeed(cfg.Playback.Interval)
	}
	frames, err := playback.Trace(s.Graph(), out.Path, steps, in)
	if err != nil {
		return err
	}
	player := playback.NewPlayer(frames)

	return player.Run(ctx, playback.FrameDelay(cfg.Playback.Interval, steps), func(f playback.Frame[C]) error {
		var err error
		if f.Reached != 0 {
			_, err = fmt.Fprintf(w, "arrived at %s\n", label(f.Reached, names))
		} else {
			_, err = fmt.Fprintf(w, "segment %d  t=%.2f  pos=%+v  heading=%.1f\n", f.Segment, f.T, f.Pos, f.Heading)
		}
		return err
	})
}

func printOutcome(w io.Writer, out *session.Outcome, names map[int]string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "algorithm: %s\n", out.Algorithm)
	if out.FromSequence {
		b.WriteString("route:     custom sequence\n")
	}
	fmt.Fprintf(&b, "visited:   %d nodes\n", len(out.Order))

	if !out.Found() {
		b.WriteString("path:      none\n")
	} else {
		hops := make([]string, len(out.Path))
		for i, id := range out.Path {
			hops[i] = label(id, names)
		}
		fmt.Fprintf(&b, "path:      %s\n", strings.Join(hops, " -> "))
		fmt.Fprintf(&b, "distance:  %.1f\n", out.Distance)
	}
	if out.IgnoresWeights {
		b.WriteString("note:      fewest hops, edge weights ignored\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func label(id int, names map[int]string) string {
	if name, ok := names[id]; ok {
		return name
	}

	return fmt.Sprintf("#%d", id)
}
