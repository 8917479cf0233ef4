package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/config"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/fetch"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/logging"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/store"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", "", "HTTP listen address (overrides ADDR)")
		mcpPath     = flag.String("mcp-path", "/mcp", "HTTP path for the MCP endpoint")
		requireAuth = flag.Bool("require-auth", false, "require API key auth via API_KEY for the MCP endpoint")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read the API key from")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logging.Init(cfg.LogLevel, cfg.IsDevelopment())
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *requireAuth && cfg.APIKey == "" {
		log.Fatal("API_KEY is required (set env var or run with --require-auth=false)")
	}

	st := store.NewSnapshotStore(cfg.CacheDir)
	client := fetch.NewClient(st, logrus.NewEntry(log))
	client.BaseURL = cfg.BaseURL
	client.CacheTTL = cfg.CacheTTL

	s := ServerConfig{
		Cfg:   cfg,
		Fetch: client,
		Log:   logging.WithComponent("server"),
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "draft-waiver-assistant",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 4)

	addTool(server, &registry, &mcp.Tool{
		Name:        "waiver_candidates",
		Description: "Top unowned players ranked by points per game",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WaiverReportArgs) (*mcp.CallToolResult, any, error) {
		rep, err := buildWaiverReport(s, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		out := struct {
			LeagueID   string          `json:"league_id"`
			Source     string          `json:"source"`
			Candidates []CandidateInfo `json:"candidates"`
			Warnings   []string        `json:"warnings,omitempty"`
		}{rep.LeagueID, rep.Source, rep.Candidates, rep.Warnings}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "waiver_prompt",
		Description: "Copy-paste LLM prompt: your squad plus the ranked free agents",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WaiverReportArgs) (*mcp.CallToolResult, any, error) {
		rep, err := buildWaiverReport(s, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(rep.Prompt), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "my_squad",
		Description: "Your drafted squad grouped by position",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MySquadArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMySquad(s, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_ownership",
		Description: "Every rostered player with its owning team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueOwnershipArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueOwnership(s, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", s.handleIndex)
	router.GET("/prompt.txt", s.handlePromptText)
	router.GET("/api/report", s.handleReport)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": registry})
	})

	mcpGroup := router.Group(*mcpPath, apiKeyAuth(cfg.APIKey, *authHeader))
	mcpGroup.Any("", gin.WrapH(handler))

	log.WithFields(logrus.Fields{
		"addr":     cfg.Addr,
		"mcp_path": *mcpPath,
		"league":   cfg.LeagueID,
	}).Info("waiver assistant listening")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// apiKeyAuth gates the MCP endpoint when a key is configured. The web routes
// stay open; they serve the same public feeds anyone can fetch.
func apiKeyAuth(apiKey string, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.GetHeader(header))
		if key == "" {
			if authz := c.GetHeader("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				key = strings.TrimSpace(authz[7:])
			}
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return toolText(string(res))
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "error: " + err.Error()},
		},
	}
}
