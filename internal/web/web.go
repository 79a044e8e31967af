package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Joseda-hg/lazypocket/internal/ledger"
	"github.com/Joseda-hg/lazypocket/internal/logging"
	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/Joseda-hg/lazypocket/internal/todo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	indexTemplate  = template.Must(template.ParseFS(templateFS, "templates/index.tmpl"))
	ledgerTemplate = template.Must(template.ParseFS(templateFS, "templates/ledger.tmpl"))
)

// Server is a read-only view over the task list and the transaction ledger.
type Server struct {
	manager *todo.Manager
	viewer  *ledger.Viewer
	logger  *zap.Logger
}

type groupPayload struct {
	Date         string           `json:"date"`
	Total        string           `json:"total"`
	Transactions []transactionRow `json:"transactions"`
}

type transactionRow struct {
	model.Transaction
	Display string `json:"display"`
}

type summaryPayload struct {
	All       int    `json:"all"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Filter    string `json:"filter"`
	Tab       string `json:"tab"`
}

func NewServer(manager *todo.Manager, viewer *ledger.Viewer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{manager: manager, viewer: viewer, logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc("/ledger", s.ledgerHandler)
	mux.HandleFunc("/api/tasks", s.apiTasksHandler)
	mux.HandleFunc("/api/tasks/", s.apiTaskHandler)
	mux.HandleFunc("/api/summary", s.apiSummaryHandler)
	mux.HandleFunc("/api/transactions", s.apiTransactionsHandler)
	return s.withRequestID(mux)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logging.WithRequestID(ctx, s.logger).Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	filter, err := filterFromRequest(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	counts := s.manager.Counts()
	data := struct {
		Filter  model.Filter
		Filters []model.Filter
		Counts  todo.Counts
		Tasks   []model.Task
	}{Filter: filter, Filters: model.Filters, Counts: counts, Tasks: s.manager.ViewOf(filter)}

	if err := indexTemplate.Execute(w, data); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
}

func (s *Server) ledgerHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := struct {
		Query         string
		BannerTitle   string
		BannerMessage string
		Groups        []groupPayload
		Tab           model.Tab
		Tabs          []model.Tab
	}{
		Query:         query,
		BannerTitle:   ledger.BannerTitle,
		BannerMessage: ledger.BannerMessage,
		Groups:        s.groups(query),
		Tab:           s.viewer.Tab(),
		Tabs:          model.Tabs,
	}

	if err := ledgerTemplate.Execute(w, data); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
}

func (s *Server) apiTasksHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, r, s.manager.ViewOf(filter))
}

func (s *Server) apiTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path, "/api/tasks/")
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, err)
		return
	}
	for _, task := range s.manager.Tasks() {
		if task.ID == id {
			s.writeJSON(w, r, task)
			return
		}
	}
	s.writeError(w, r, http.StatusNotFound, fmt.Errorf("task %d not found", id))
}

func (s *Server) apiSummaryHandler(w http.ResponseWriter, r *http.Request) {
	counts := s.manager.Counts()
	s.writeJSON(w, r, summaryPayload{
		All:       counts.All,
		Active:    counts.Active,
		Completed: counts.Completed,
		Filter:    string(s.manager.Filter()),
		Tab:       string(s.viewer.Tab()),
	})
}

func (s *Server) apiTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	s.writeJSON(w, r, s.groups(query))
}

func (s *Server) groups(query string) []groupPayload {
	groups := s.viewer.GroupsFor(query)
	payload := make([]groupPayload, 0, len(groups))
	for _, group := range groups {
		rows := make([]transactionRow, 0, len(group.Transactions))
		for _, tx := range group.Transactions {
			rows = append(rows, transactionRow{Transaction: tx, Display: s.viewer.FormatAmount(tx)})
		}
		payload = append(payload, groupPayload{
			Date:         group.Date,
			Total:        ledger.FormatAmount(s.viewer.Currency(), group.Total),
			Transactions: rows,
		})
	}
	return payload
}

func filterFromRequest(r *http.Request) (model.Filter, error) {
	value := strings.TrimSpace(r.URL.Query().Get("filter"))
	if value == "" {
		return model.FilterAll, nil
	}
	filter := model.Filter(strings.ToLower(value))
	if !filter.Valid() {
		return "", fmt.Errorf("%w: %q", todo.ErrUnknownFilter, value)
	}
	return filter, nil
}

func parseID(path, prefix string) (int64, error) {
	if !strings.HasPrefix(path, prefix) {
		return 0, fmt.Errorf("invalid path")
	}
	value := strings.TrimPrefix(path, prefix)
	value = strings.Trim(value, "/")
	if value == "" {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(value, 10, 64)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.WithRequestID(r.Context(), s.logger).Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.WithRequestID(r.Context(), s.logger).Warn("request failed",
		zap.Int("status", status),
		zap.Error(err),
	)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}
