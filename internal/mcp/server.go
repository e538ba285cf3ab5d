package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/async"
	"github.com/Aman-CERP/iconcat/internal/catalog"
	"github.com/Aman-CERP/iconcat/pkg/version"
)

// ServerName is reported to MCP clients.
const ServerName = "iconcat"

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 500
)

// Server is the MCP server for iconcat. It exposes the icon pipeline to
// AI clients as tools.
type Server struct {
	mcp      *mcp.Server
	loader   *async.Loader
	resolver *assets.Resolver
	logger   *slog.Logger
}

// ToolInfo contains information about a registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

var tools = []ToolInfo{
	{
		Name:        "search_icons",
		Description: "Search the icon catalog. Matches the query case-insensitively against set name, section and icon name (dashes read as spaces). Returns icons grouped by set and section, each with its asset path. An empty query lists the catalog.",
	},
	{
		Name:        "icon_details",
		Description: "Show one icon: format, sizes, qualified identifier, and every light/dark/@2x variant with its asset path and whether the file exists.",
	},
	{
		Name:        "catalog_status",
		Description: "Report whether the catalog has loaded, with set, group and icon counts. Searches fail while the catalog is still loading.",
	},
}

// NewServer creates a new MCP server. The loader must be started by the
// caller; tools report "catalog is loading" until it finishes.
func NewServer(loader *async.Loader, resolver *assets.Resolver) (*Server, error) {
	if loader == nil {
		return nil, errors.New("catalog loader is required")
	}
	if resolver == nil {
		resolver = assets.NewResolver("", assets.ResolverOptions{})
	}

	s := &Server{
		loader:   loader,
		resolver: resolver,
		logger:   slog.Default(),
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: version.Version,
		},
		nil, // capabilities are inferred from registered tools/resources
	)

	s.registerTools()
	s.registerResources()

	return s, nil
}

// MCPServer returns the underlying MCP server instance.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Info returns the server name and version.
func (s *Server) Info() (name, ver string) {
	return ServerName, version.Version
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []ToolInfo {
	return append([]ToolInfo(nil), tools...)
}

// CallTool invokes a tool by name with the given arguments. Results are
// the typed tool outputs.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "search_icons":
		in := SearchIconsInput{}
		in.Query, _ = args["query"].(string)
		if l, ok := args["limit"].(float64); ok {
			in.Limit = int(l)
		}
		return s.searchIcons(ctx, in)
	case "icon_details":
		in := IconDetailsInput{}
		in.Set, _ = args["set"].(string)
		in.Section, _ = args["section"].(string)
		in.Name, _ = args["name"].(string)
		return s.iconDetails(ctx, in)
	case "catalog_status":
		return s.catalogStatus(), nil
	default:
		return nil, NewMethodNotFoundError(name)
	}
}

// ready returns the catalog or the reason it is not usable.
func (s *Server) ready() (*catalog.Catalog, error) {
	c, err := s.loader.Ready()
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

func (s *Server) searchIcons(ctx context.Context, in SearchIconsInput) (SearchIconsOutput, error) {
	c, err := s.ready()
	if err != nil {
		return SearchIconsOutput{}, err
	}

	start := time.Now()
	requestID := generateRequestID()
	limit := clampLimit(in.Limit, defaultSearchLimit, 1, maxSearchLimit)

	// One row per group: results are not laid out in a grid.
	view, err := c.View(in.Query, math.MaxInt32)
	if err != nil {
		return SearchIconsOutput{}, MapError(err)
	}

	out := SearchIconsOutput{
		Query:  in.Query,
		Total:  view.Total(),
		Groups: make([]GroupOutput, 0, len(view.Groups)),
	}
	for _, g := range view.Groups {
		if out.Returned >= limit || ctx.Err() != nil {
			break
		}
		group := GroupOutput{
			Set:     g.Key.Set,
			Section: g.Key.Section,
			Title:   g.Title,
		}
		for _, icon := range g.Icons() {
			if out.Returned >= limit {
				break
			}
			group.Icons = append(group.Icons, ToIconOutput(icon))
			out.Returned++
		}
		out.Groups = append(out.Groups, group)
	}
	out.Truncated = out.Returned < out.Total

	s.logger.Info("search_icons completed",
		slog.String("request_id", requestID),
		slog.String("query", in.Query),
		slog.Int("limit", limit),
		slog.Int("total", out.Total),
		slog.Duration("duration", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return SearchIconsOutput{}, MapError(err)
	}
	return out, nil
}

func (s *Server) iconDetails(_ context.Context, in IconDetailsInput) (IconDetailsOutput, error) {
	if strings.TrimSpace(in.Set) == "" || strings.TrimSpace(in.Name) == "" {
		return IconDetailsOutput{}, NewInvalidParamsError("set and name are required")
	}

	c, err := s.ready()
	if err != nil {
		return IconDetailsOutput{}, err
	}

	icon, err := c.Find(in.Set, in.Section, in.Name)
	if err != nil {
		return IconDetailsOutput{}, MapError(err)
	}

	sizes := make([]string, len(icon.Sizes))
	for i, size := range icon.Sizes {
		sizes[i] = size.String()
	}

	return IconDetailsOutput{
		Icon:        ToIconOutput(icon),
		Sizes:       sizes,
		DisplaySize: assets.DisplaySize(icon, assets.ThumbnailMax).String(),
		Variants:    s.resolver.Footer(icon),
		AssetsRoot:  s.resolver.Root(),
	}, nil
}

func (s *Server) catalogStatus() CatalogStatusOutput {
	return CatalogStatusOutput{
		Load: s.loader.Status(),
		Assets: AssetsInfo{
			Root:   s.resolver.Root(),
			Cached: s.resolver.Cached(),
		},
	}
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{Name: tools[0].Name, Description: tools[0].Description}, s.mcpSearchIconsHandler)
	mcp.AddTool(s.mcp, &mcp.Tool{Name: tools[1].Name, Description: tools[1].Description}, s.mcpIconDetailsHandler)
	mcp.AddTool(s.mcp, &mcp.Tool{Name: tools[2].Name, Description: tools[2].Description}, s.mcpCatalogStatusHandler)

	s.logger.Debug("MCP tools registered", slog.Int("count", len(tools)))
}

// mcpSearchIconsHandler is the MCP SDK handler for the search_icons tool.
func (s *Server) mcpSearchIconsHandler(ctx context.Context, _ *mcp.CallToolRequest, input SearchIconsInput) (
	*mcp.CallToolResult,
	SearchIconsOutput,
	error,
) {
	out, err := s.searchIcons(ctx, input)
	if err != nil {
		return nil, SearchIconsOutput{}, err
	}
	return textResult(FormatSearchResults(out)), out, nil
}

// mcpIconDetailsHandler is the MCP SDK handler for the icon_details tool.
func (s *Server) mcpIconDetailsHandler(ctx context.Context, _ *mcp.CallToolRequest, input IconDetailsInput) (
	*mcp.CallToolResult,
	IconDetailsOutput,
	error,
) {
	out, err := s.iconDetails(ctx, input)
	if err != nil {
		return nil, IconDetailsOutput{}, err
	}
	return textResult(FormatIconDetails(out)), out, nil
}

// mcpCatalogStatusHandler is the MCP SDK handler for the catalog_status tool.
func (s *Server) mcpCatalogStatusHandler(_ context.Context, _ *mcp.CallToolRequest, _ CatalogStatusInput) (
	*mcp.CallToolResult,
	CatalogStatusOutput,
	error,
) {
	return nil, s.catalogStatus(), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// Serve starts the server with the specified transport.
func (s *Server) Serve(ctx context.Context, transport string) error {
	s.logger.Info("Starting MCP server", slog.String("transport", transport))

	switch transport {
	case "stdio":
		err := s.mcp.Run(ctx, &mcp.StdioTransport{})
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("MCP server stopped with error",
				slog.String("error", err.Error()))
		} else {
			s.logger.Info("MCP server stopped gracefully")
		}
		return err
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio)", transport)
	}
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
