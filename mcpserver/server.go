// ABOUTME: Optional MCP server exposing the retention analysis pipeline as agent tools
// ABOUTME: Mirrors the retrieved pprof-analyzer-mcp's tool/handler shape, one tool: analyze_heap_dump

// Package mcpserver serves the same analysis pipeline cmd/heapdom prints to
// stdout, but over the Model Context Protocol for agentic callers. It is an
// alternate front end, not a separate pipeline: both go through
// github.com/heapdom/heapdom/pipeline.Run.
package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/heapdom/heapdom/graph"
	"github.com/heapdom/heapdom/pipeline"
	"github.com/heapdom/heapdom/report"
)

// Serve starts an MCP server over stdio exposing one tool,
// analyze_heap_dump, and blocks until the transport closes.
func Serve() error {
	srv := server.NewMCPServer(
		"heapdom",
		"0.1.0",
		server.WithLogging(),
		server.WithRecovery(),
	)

	tool := mcp.NewTool("analyze_heap_dump",
		mcp.WithDescription("Parses a Ruby ObjectSpace.dump_all heap dump and reports retained memory by dominator-tree retainer and by type."),
		mcp.WithString("dump_path",
			mcp.Description("Local filesystem path to the line-delimited JSON heap dump."),
			mcp.Required(),
		),
		mcp.WithString("reroot",
			mcp.Description("Hex address (e.g. 0x7f83df87dc40) to restrict the analysis to that object's dominator subtree."),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Number of top entries per ranked list; 0 for unlimited. Defaults to 20 when omitted."),
			mcp.DefaultNumber(20.0),
		),
	)
	srv.AddTool(tool, handleAnalyzeHeapDump)

	return server.ServeStdio(srv)
}

func handleAnalyzeHeapDump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.New()
	log.Printf("analyze_heap_dump[%s]: request received", requestID)

	args := request.Params.Arguments

	dumpPath, ok := args["dump_path"].(string)
	if !ok || dumpPath == "" {
		return nil, fmt.Errorf("missing or invalid required argument: dump_path (string)")
	}

	var reroot graph.ObjID
	if rerootStr, ok := args["reroot"].(string); ok && rerootStr != "" {
		v, err := strconv.ParseUint(trimHexPrefix(rerootStr), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid reroot address %q: %w", rerootStr, err)
		}
		reroot = graph.ObjID(v)
	}

	topN := 20
	if topNFloat, ok := args["top_n"].(float64); ok {
		topN = int(topNFloat)
	}

	f, err := os.Open(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	res, err := pipeline.Run(f, pipeline.Options{Reroot: reroot})
	if err != nil {
		return nil, fmt.Errorf("analyzing dump: %w", err)
	}

	var buf bytes.Buffer
	if err := report.WriteText(&buf, res.Report, topN); err != nil {
		return nil, fmt.Errorf("formatting report: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: buf.String()},
		},
	}, nil
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
