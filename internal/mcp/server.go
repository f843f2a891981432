// Package mcp serves the loaded API descriptors over the Model Context
// Protocol, so agents writing scripts can look up members, page names and
// rendered documentation without generating the site first.
package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed instructions.md
var instructions string

const uriScheme = "kolbendoc://"

// Catalog is the descriptor set a server answers from. site.Generator is the
// production implementation.
type Catalog interface {
	Classes() []docs.ApiClass
	Prototypes() []docs.ApiPrototype
	Composer() *docs.Composer
}

type Server struct {
	mcpServer *server.MCPServer
	catalog   Catalog
}

// TypeEntry is one line of the list_types result.
type TypeEntry struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Page      string `json:"page"`
	BuiltIn   bool   `json:"built_in,omitempty"`
	Members   int    `json:"members"`
	Variables int    `json:"variables,omitempty"`
}

func NewServer(catalog Catalog, version string) *Server {
	s := &Server{catalog: catalog}

	mcpServer := server.NewMCPServer(
		"kolbendoc",
		version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("list_types",
			mcp.WithDescription("List every API class and prototype with its generated page name and member count."),
		),
		s.handleListTypes,
	)

	mcpServer.AddTool(
		mcp.NewTool("describe_member",
			mcp.WithDescription("Render the documentation block of a member: signatures, argument types and a usage sample. Overloads and accessor pairs sharing the name are all returned."),
			mcp.WithString("owner",
				mcp.Description("API class or prototype name (e.g. \"Player\", \"String\")"),
				mcp.Required(),
			),
			mcp.WithString("member",
				mcp.Description("Member name; \"indexer\" selects the indexers"),
				mcp.Required(),
			),
		),
		s.handleDescribeMember,
	)

	mcpServer.AddTool(
		mcp.NewTool("page_name",
			mcp.WithDescription("Resolve the generated page file for an API class, a prototype or a type reference such as \"PlayerPrototype\" or \"string\"."),
			mcp.WithString("name",
				mcp.Description("Class name, prototype name or type reference"),
				mcp.Required(),
			),
			mcp.WithString("kind",
				mcp.Description("What name refers to (default: type)"),
				mcp.Enum("type", "class", "prototype"),
			),
		),
		s.handlePageName,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			uriScheme+"{kind}/{name}",
			"Generated documentation page",
			mcp.WithTemplateDescription("Read the rendered page body of an API class (kind \"class\") or prototype (kind \"prototype\")."),
			mcp.WithTemplateMIMEType("text/html"),
		),
		s.handleReadResource,
	)
}

func (s *Server) findClass(name string) (docs.ApiClass, bool) {
	for _, c := range s.catalog.Classes() {
		if c.Name == name {
			return c, true
		}
	}
	return docs.ApiClass{}, false
}

func (s *Server) findPrototype(name string) (docs.ApiPrototype, bool) {
	name = strings.TrimSuffix(name, "Prototype")
	for _, p := range s.catalog.Prototypes() {
		if p.Name == name {
			return p, true
		}
	}
	return docs.ApiPrototype{}, false
}

func (s *Server) handleListTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var entries []TypeEntry
	for _, c := range s.catalog.Classes() {
		entries = append(entries, TypeEntry{
			Name:    c.Name,
			Kind:    "class",
			Page:    docs.ClassFile(c.Name),
			Members: len(c.Methods),
		})
	}
	for _, p := range s.catalog.Prototypes() {
		entries = append(entries, TypeEntry{
			Name:      p.Name,
			Kind:      "prototype",
			Page:      docs.PrototypeFile(p.Name),
			BuiltIn:   p.IsBuiltIn,
			Members:   len(p.Methods),
			Variables: len(p.Variables),
		})
	}

	resultJSON, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleDescribeMember(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	owner, _ := args["owner"].(string)
	member, _ := args["member"].(string)
	if owner == "" || member == "" {
		return mcp.NewToolResultError("missing required parameters: owner, member"), nil
	}

	var (
		methods   []docs.ApiMethod
		variables []docs.ApiVariable
	)
	if c, ok := s.findClass(owner); ok {
		for _, m := range c.Methods {
			m.IsStatic = true
			methods = append(methods, m)
		}
	} else if p, ok := s.findPrototype(owner); ok {
		owner = p.Name
		methods = p.Methods
		variables = p.Variables
	} else {
		return mcp.NewToolResultError(fmt.Sprintf("unknown class or prototype: %s", owner)), nil
	}

	var b strings.Builder
	for _, m := range methods {
		if m.Name == member || (member == "indexer" && m.Kind.IsIndexer()) {
			b.WriteString(docs.RenderMethod(owner, m) + "\n")
		}
	}
	for _, v := range variables {
		if v.Name == member {
			b.WriteString(docs.RenderVariable(owner, v) + "\n")
		}
	}
	if b.Len() == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("%s has no member %s", owner, member)), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handlePageName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	kind, _ := args["kind"].(string)

	switch kind {
	case "class":
		return mcp.NewToolResultText(docs.ClassFile(name)), nil
	case "prototype":
		return mcp.NewToolResultText(docs.PrototypeFile(name)), nil
	case "", "type":
		if _, ok := s.findClass(name); ok {
			return mcp.NewToolResultText(docs.ClassFile(name)), nil
		}
		if page, ok := docs.PrototypeTarget(name); ok {
			return mcp.NewToolResultText(page), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("%s has no documentation page", name)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid kind: %s", kind)), nil
	}
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	kind, name, ok := strings.Cut(strings.TrimPrefix(uri, uriScheme), "/")
	if !ok || name == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	var (
		body string
		err  error
	)
	switch kind {
	case "class":
		c, found := s.findClass(name)
		if !found {
			return nil, fmt.Errorf("unknown API class: %s", name)
		}
		body, err = s.catalog.Composer().ComposeClassPage(c)
	case "prototype":
		p, found := s.findPrototype(name)
		if !found {
			return nil, fmt.Errorf("unknown prototype: %s", name)
		}
		body, err = s.catalog.Composer().ComposePrototypePage(p)
	default:
		return nil, fmt.Errorf("invalid resource kind: %s", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("composing page: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/html",
			Text:     body,
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) Shutdown(_ context.Context) error {
	return nil
}
