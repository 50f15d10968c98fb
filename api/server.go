// Package api はeventgrapherのダッシュボードサーバー実装を提供します。
package api

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/stsysd/eventgrapher/config"
	"github.com/stsysd/eventgrapher/heatmap"
	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/stats"
	"github.com/stsysd/eventgrapher/store"
)

// Server はダッシュボードサーバーの構造体です。
// 統計とSVGは起動時に一度だけ計算し、以降のリクエストでは再利用します。
type Server struct {
	router  *http.ServeMux
	summary *stats.Summary
	events  store.EventStore
	config  *config.Config
	svg     string
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// writeJSON はJSON形式でレスポンスを返却します。
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// NewServer は新しいサーバーインスタンスを生成します。
func NewServer(summary *stats.Summary, events store.EventStore, config *config.Config) *Server {
	s := &Server{
		router:  http.NewServeMux(),
		summary: summary,
		events:  events,
		config:  config,
		svg:     heatmap.GenerateDashboardSVG(summary, nil),
	}
	s.routes()
	return s
}

// routes はエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// Dashboard endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /dashboard.svg", s.handleGetDashboard)
	s.router.HandleFunc("GET /dashboard", s.handleGetDashboard)

	s.router.HandleFunc("GET /api/v0/stats", s.handleGetStats)
	s.router.HandleFunc("GET /api/v0/events", s.handleListEvents)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.router).ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{"status": "ok"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="margin:0">
{{.SVG}}
</body>
</html>
`))

// handleIndex はダッシュボードを埋め込んだHTMLページを返却します。
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title string
		SVG   template.HTML
	}{
		Title: "Event Grapher",
		// 起動時に自前で生成したSVGなのでエスケープしない
		SVG: template.HTML(s.svg),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("Error rendering index: %v", err)
	}
}

// handleGetDashboard は事前に生成したダッシュボードSVGを返却します。
func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(s.svg))
}

// handleGetStats は統計サマリーをJSONで返却します。
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	if s.summary == nil {
		writeJSONError(w, "Statistics are not available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, s.summary)
}

// ListEventsParams represents parameters for listing events.
type ListEventsParams struct {
	Category *model.Category
}

// NewListEventsParams creates parameters for event listing from HTTP request.
func NewListEventsParams(r *http.Request) (*ListEventsParams, error) {
	params := &ListEventsParams{}
	if raw := r.URL.Query().Get("category"); raw != "" {
		c, err := model.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		params.Category = &c
	}
	return params, nil
}

// ListEventsResponse はイベント一覧のレスポンスです。
type ListEventsResponse struct {
	Total  int           `json:"total"`
	Events []model.Event `json:"events"`
}

// handleListEvents は解析済みイベントの一覧を返却します。
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewListEventsParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var events []model.Event
	if params.Category != nil {
		events = s.events.ByCategory(*params.Category)
	} else {
		events = s.events.All()
	}
	if events == nil {
		events = []model.Event{}
	}

	writeJSON(w, ListEventsResponse{Total: len(events), Events: events})
}

// Run はサーバーを指定されたアドレスで起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s)
}
