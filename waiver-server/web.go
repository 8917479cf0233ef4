package main

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The whole front end is this one page: squad, copy-paste prompt, and the
// ranked table. Query params league_id/team_id override the configured ids,
// refresh=1 bypasses the snapshot cache.
var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>DraftFantasy — Waiver Assistant</title>
<style>
 body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
 pre { background: #f4f4f4; padding: 1rem; overflow-x: auto; white-space: pre-wrap; }
 table { border-collapse: collapse; width: 100%; }
 th, td { border: 1px solid #ccc; padding: .3rem .6rem; text-align: left; }
 .error { background: #fdd; border: 1px solid #c00; padding: 1rem; }
 .warning { background: #ffd; border: 1px solid #cc0; padding: .5rem 1rem; }
 .muted { color: #666; font-size: .85rem; }
</style>
</head>
<body>
<h1>⚽ DraftFantasy — Waiver Assistant</h1>
{{if .Error}}
<div class="error">{{.Error}}</div>
{{else}}
{{range .Report.Warnings}}<div class="warning">{{.}}</div>{{end}}
<h2>Your Squad</h2>
<pre>{{.Report.Squad}}</pre>
<h2>Copy-and-paste Prompt</h2>
<pre id="prompt">{{.Report.Prompt}}</pre>
<button onclick="navigator.clipboard.writeText(document.getElementById('prompt').innerText)">Copy prompt</button>
<a href="/prompt.txt" download="waiver_prompt.txt">Download prompt (.txt)</a>
<h2>Top 25 (by points per game)</h2>
<table>
<tr><th>#</th><th>Name</th><th>Club</th><th>Position</th><th>PPG</th><th>Goals</th><th>Assists</th><th>Clean sheets</th></tr>
{{range .Report.Candidates}}
<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Club}}</td><td>{{.Position}}</td><td>{{.PPG}}</td><td>{{.Goals}}</td><td>{{.Assists}}</td><td>{{.CleanSheets}}</td></tr>
{{end}}
</table>
<p class="muted">⏱️ Generated {{.Report.GeneratedAtUTC}} · source: {{.Report.Source}} · league {{.Report.LeagueID}}</p>
{{end}}
</body>
</html>
`))

func argsFromQuery(c *gin.Context) WaiverReportArgs {
	return WaiverReportArgs{
		LeagueID: c.Query("league_id"),
		TeamID:   c.Query("team_id"),
		Refresh:  c.Query("refresh") == "1",
	}
}

func (s ServerConfig) handleIndex(c *gin.Context) {
	page := struct {
		Report *WaiverReport
		Error  string
	}{}

	rep, err := buildWaiverReport(s, argsFromQuery(c))
	if err != nil {
		s.Log.WithError(err).Error("report failed")
		page.Error = err.Error()
		c.Status(http.StatusBadGateway)
	} else {
		page.Report = rep
		c.Status(http.StatusOK)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(c.Writer, page); err != nil {
		s.Log.WithError(err).Error("render failed")
	}
}

func (s ServerConfig) handlePromptText(c *gin.Context) {
	rep, err := buildWaiverReport(s, argsFromQuery(c))
	if err != nil {
		c.String(http.StatusBadGateway, "error: %v", err)
		return
	}
	c.String(http.StatusOK, "%s", rep.Prompt)
}

func (s ServerConfig) handleReport(c *gin.Context) {
	rep, err := buildWaiverReport(s, argsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}
