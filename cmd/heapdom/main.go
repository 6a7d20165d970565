// ABOUTME: CLI entrypoint: wires flags, config defaults, the pipeline, and the three report sinks
// ABOUTME: Exit code 0 on success, nonzero on any fatal error; diagnostics go to stderr

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/heapdom/heapdom/analysis"
	"github.com/heapdom/heapdom/config"
	"github.com/heapdom/heapdom/errs"
	"github.com/heapdom/heapdom/graph"
	"github.com/heapdom/heapdom/iosvc"
	"github.com/heapdom/heapdom/mcpserver"
	"github.com/heapdom/heapdom/pipeline"
	"github.com/heapdom/heapdom/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	if len(args) > 0 && args[0] == "mcp" {
		if err := mcpserver.Serve(); err != nil {
			logger.Println(err)
			return 1
		}
		return 0
	}

	fs := flag.NewFlagSet("heapdom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reroot := fs.String("r", "", "re-root analysis at this hex object address")
	topN := fs.Int("n", 0, "number of top entries per ranking (0 = unlimited)")
	dotPath := fs.String("d", "", "write the pruned dominator graph visualization to this path")
	flamePath := fs.String("f", "", "write the flame-graph data file to this path")
	configPath := fs.String("config", "", "optional YAML file supplying flag defaults")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: heapdom [flags] <dump-path>\n       heapdom mcp\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Println(fmt.Errorf("%w: %v", errs.ErrBadFlag, err))
		return 2
	}

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Println(err)
			return 1
		}
		cfg = loaded
	}

	n := *topN
	if n == 0 {
		n = cfg.TopN
	}
	if n < 0 {
		logger.Println(fmt.Errorf("%w: -n must be >= 0, got %d", errs.ErrBadFlag, n))
		return 2
	}
	dot := *dotPath
	if dot == "" {
		dot = cfg.DotOutput
	}
	flameOut := *flamePath
	if flameOut == "" {
		flameOut = cfg.FlameOutput
	}

	positional := fs.Args()
	if len(positional) != 1 {
		logger.Println(fmt.Errorf("%w: expected exactly one positional argument: path to the heap dump", errs.ErrBadFlag))
		return 2
	}
	dumpPath := positional[0]

	var rerootID graph.ObjID
	if *reroot != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(*reroot, "0x"), 16, 64)
		if err != nil {
			logger.Printf("bad -r address %q: %v", *reroot, err)
			return 1
		}
		rerootID = graph.ObjID(v)
	}

	ctx := context.Background()
	svc := iosvc.New()

	in, err := svc.OpenInput(ctx, dumpPath)
	if err != nil {
		logger.Println(err)
		return 1
	}
	defer in.Close()

	res, err := pipeline.Run(in, pipeline.Options{Reroot: rerootID, Parallel: true})
	if err != nil {
		logger.Println(err)
		return 1
	}

	if err := report.WriteText(stdout, res.Report, n); err != nil {
		logger.Println(err)
		return 1
	}

	if dot != "" {
		if err := writeDotOutput(ctx, svc, res, n, dot, stdout); err != nil {
			logger.Println(err)
			return 1
		}
	}

	if flameOut != "" {
		if err := writeFlameOutput(ctx, svc, res, flameOut); err != nil {
			logger.Println(err)
			return 1
		}
	}

	if summary := res.Counters.Summary(); summary != "" {
		logger.Println(summary)
	}

	return 0
}

func writeDotOutput(ctx context.Context, svc *iosvc.Service, res *pipeline.Result, n int, path string, stdout io.Writer) error {
	retainers := res.Report.Retainers
	if n > 0 && len(retainers) > n {
		retainers = retainers[:n]
	}

	var buf bytes.Buffer
	nodes, edges, err := report.WriteDot(&buf, res.Graph, res.Idom, retainers)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputFailure, err)
	}
	if err := svc.WriteOutput(ctx, path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d nodes & %d edges to %s\n", nodes, edges, path)
	return nil
}

func writeFlameOutput(ctx context.Context, svc *iosvc.Service, res *pipeline.Result, path string) error {
	stacks := analysis.BuildFlameStacks(res.Graph, res.Idom, res.Tree, res.Reachable)

	var buf bytes.Buffer
	if err := report.WriteFlame(&buf, stacks); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputFailure, err)
	}
	return svc.WriteOutput(ctx, path, buf.Bytes())
}
