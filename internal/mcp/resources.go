package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MaxResourceSize is the maximum asset size returned as a resource (1MB).
const MaxResourceSize = 1024 * 1024

// Resource URIs.
const (
	groupsURI      = "iconcat://catalog/groups"
	assetURIPrefix = "iconcat://assets/"
)

// GroupSummary is one entry of the groups resource.
type GroupSummary struct {
	Set     string `json:"set"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Icons   int    `json:"icons"`
}

// registerResources registers the groups listing and the asset template.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        "catalog_groups",
		URI:         groupsURI,
		Description: "Every set/section group in display order with its icon count.",
		MIMEType:    "application/json",
	}, s.handleGroupsResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "icon_asset",
		Description: "Asset file under the asset root. Paths come from search_icons and icon_details.",
		URITemplate: assetURIPrefix + "{+path}",
	}, s.handleAssetResource)
}

func (s *Server) handleGroupsResource(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	c, err := s.ready()
	if err != nil {
		return nil, err
	}

	groups := c.Groups.All()
	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, GroupSummary{
			Set:     g.Key.Set,
			Section: g.Key.Section,
			Title:   g.Key.Title(),
			Icons:   len(g.Icons),
		})
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, MapError(err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      groupsURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleAssetResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if req == nil || req.Params == nil {
		return nil, NewInvalidParamsError("resource URI is required")
	}
	uri := req.Params.URI
	rel, ok := strings.CutPrefix(uri, assetURIPrefix)
	if !ok {
		return nil, NewResourceNotFoundError(uri)
	}
	return s.readAsset(uri, rel)
}

// readAsset reads one asset relative to the resolver root.
func (s *Server) readAsset(uri, relativePath string) (*mcp.ReadResourceResult, error) {
	if s.resolver.Root() == "" {
		return nil, NewResourceNotFoundError(uri)
	}
	if !isValidPath(relativePath) {
		return nil, NewInvalidParamsError(fmt.Sprintf("invalid path: %s", relativePath))
	}

	fullPath := filepath.Join(s.resolver.Root(), filepath.FromSlash(relativePath))
	info, err := os.Stat(fullPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, NewResourceNotFoundError(uri)
	}
	if info.Size() > MaxResourceSize {
		return nil, &MCPError{
			Code:    ErrCodeFileTooLarge,
			Message: fmt.Sprintf("asset too large: %d bytes (max %d)", info.Size(), MaxResourceSize),
		}
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, MapError(err)
	}

	mime := MimeTypeForPath(relativePath)
	rc := &mcp.ResourceContents{URI: uri, MIMEType: mime}
	if isTextMime(mime) {
		rc.Text = string(content)
	} else {
		rc.Blob = content
	}
	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{rc}}, nil
}

// isValidPath rejects absolute paths and traversal out of the asset root.
func isValidPath(path string) bool {
	if path == "" {
		return false
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return false
	}
	// Windows drive letters
	if len(path) >= 2 && path[1] == ':' {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
