//go:build unit || e2e

package strapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"do-coupon-system/internal/pkg/config"
)

const Token = "test-token"

var filterKey = regexp.MustCompile(`^filters\[([^\]]+)\]\[\$eq\]$`)

// Request is a call the fake received.
type Request struct {
	Method     string
	Collection string
	DocumentID string
	Query      map[string][]string
	Body       map[string]any
}

type failure struct {
	status  int
	message string
}

// Server is an in-memory stand-in for the Strapi v5 REST API.
// It assigns documentId and id, supports $eq filters and pagination, and
// rejects component entries that still carry an id on write.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	data     map[string][]map[string]any
	nextID   int
	failures map[string]failure
	requests []Request
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		data:     map[string][]map[string]any{},
		failures: map[string]failure{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) StoreConfig() config.StoreConfig {
	return config.StoreConfig{
		BaseURL:           s.URL + "/api",
		Token:             Token,
		Timeout:           0,
		CouponCollection:  "coupons",
		AccountCollection: "coupon-sys-accounts",
	}
}

// Seed inserts a record and returns its documentId.
func (s *Server) Seed(collection string, attrs map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(collection, attrs)
}

// Records returns a copy of the stored records.
func (s *Server) Records(collection string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.data[collection]))
	for _, r := range s.data[collection] {
		out = append(out, clone(r))
	}
	return out
}

func (s *Server) Get(collection, documentID string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.data[collection] {
		if r["documentId"] == documentID {
			return clone(r)
		}
	}
	return nil
}

// Fail makes every method call on collection answer with status.
// method "*" matches any method.
func (s *Server) Fail(method, collection string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+collection] = failure{status: status, message: "injected failure"}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) CountRequests(method, collection string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Collection == collection {
			n++
		}
	}
	return n
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+Token {
		writeError(w, http.StatusUnauthorized, "UnauthorizedError", "Missing or invalid credentials")
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/"), "/")
	collection := parts[0]
	docID := ""
	if len(parts) > 1 {
		docID = parts[1]
	}

	var body map[string]any
	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "ValidationError", "invalid JSON body")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{
		Method:     r.Method,
		Collection: collection,
		DocumentID: docID,
		Query:      r.URL.Query(),
		Body:       body,
	})

	for _, key := range []string{r.Method + " " + collection, "* " + collection} {
		if f, ok := s.failures[key]; ok {
			writeError(w, f.status, "ApplicationError", f.message)
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && docID == "":
		s.list(w, collection, r.URL.Query())
	case r.Method == http.MethodPost && docID == "":
		attrs, ok := dataOf(w, body)
		if !ok {
			return
		}
		id := s.insertLocked(collection, attrs)
		writeJSON(w, http.StatusCreated, map[string]any{"data": s.findLocked(collection, id), "meta": map[string]any{}})
	case r.Method == http.MethodPut && docID != "":
		attrs, ok := dataOf(w, body)
		if !ok {
			return
		}
		rec := s.findLocked(collection, docID)
		if rec == nil {
			writeError(w, http.StatusNotFound, "NotFoundError", "Not Found")
			return
		}
		if err := validateComponents(attrs); err != nil {
			writeError(w, http.StatusBadRequest, "ValidationError", err.Error())
			return
		}
		for k, v := range attrs {
			rec[k] = v
		}
		s.assignComponentIDsLocked(rec)
		writeJSON(w, http.StatusOK, map[string]any{"data": clone(rec), "meta": map[string]any{}})
	default:
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "unsupported")
	}
}

func (s *Server) list(w http.ResponseWriter, collection string, q map[string][]string) {
	var matched []map[string]any
	for _, rec := range s.data[collection] {
		if matches(rec, q) {
			matched = append(matched, clone(rec))
		}
	}

	page := atoiDefault(first(q["pagination[page]"]), 1)
	size := atoiDefault(first(q["pagination[pageSize]"]), 25)
	total := len(matched)
	pageCount := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	items := matched[start:end]
	if items == nil {
		items = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"pagination": map[string]any{"page": page, "pageSize": size, "pageCount": pageCount, "total": total},
		},
	})
}

func (s *Server) insertLocked(collection string, attrs map[string]any) string {
	s.nextID++
	rec := clone(attrs)
	rec["id"] = float64(s.nextID)
	docID, _ := rec["documentId"].(string)
	if docID == "" {
		docID = fmt.Sprintf("doc%04d", s.nextID)
		rec["documentId"] = docID
	}
	s.assignComponentIDsLocked(rec)
	s.data[collection] = append(s.data[collection], rec)
	return docID
}

func (s *Server) findLocked(collection, docID string) map[string]any {
	for _, r := range s.data[collection] {
		if r["documentId"] == docID {
			return r
		}
	}
	return nil
}

func (s *Server) assignComponentIDsLocked(rec map[string]any) {
	list, ok := rec["ConsumptionRecord"].([]any)
	if !ok {
		return
	}
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, has := entry["id"]; !has {
			s.nextID++
			entry["id"] = float64(s.nextID)
		}
	}
}

func validateComponents(attrs map[string]any) error {
	list, ok := attrs["ConsumptionRecord"].([]any)
	if !ok {
		return nil
	}
	for i, item := range list {
		if entry, ok := item.(map[string]any); ok {
			if _, has := entry["id"]; has {
				return fmt.Errorf("ConsumptionRecord[%d] must not carry an id", i)
			}
		}
	}
	return nil
}

func matches(rec map[string]any, q map[string][]string) bool {
	for key, vals := range q {
		m := filterKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		if fmt.Sprint(rec[m[1]]) != first(vals) {
			return false
		}
	}
	return true
}

func dataOf(w http.ResponseWriter, body map[string]any) (map[string]any, bool) {
	data, ok := body["data"].(map[string]any)
	if !ok {
		writeError(w, http.StatusBadRequest, "ValidationError", "Missing \"data\" payload in the request body")
		return nil, false
	}
	return data, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, msg string) {
	writeJSON(w, status, map[string]any{
		"data":  nil,
		"error": map[string]any{"status": status, "name": name, "message": msg},
	})
}

// clone deep-copies through JSON so callers never share maps with the store.
func clone(m map[string]any) map[string]any {
	b, _ := json.Marshal(m)
	var out map[string]any
	_ = json.Unmarshal(b, &out)
	return out
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
