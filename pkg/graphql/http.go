package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/graphql-go/graphql"
)

// GraphQLRequest represents a GraphQL HTTP request
type GraphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// GraphQLResponse represents a GraphQL HTTP response
type GraphQLResponse struct {
	Data   any            `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error
type GraphQLError struct {
	Message string `json:"message"`
}

// GraphQLHandler handles GraphQL HTTP requests
type GraphQLHandler struct {
	schema        graphql.Schema
	maxDepth      int
	logger        logging.Logger
	authorizeEdit func(*http.Request) error
}

// NewGraphQLHandler creates a handler that enforces DefaultMaxDepth.
func NewGraphQLHandler(schema graphql.Schema, logger logging.Logger) *GraphQLHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GraphQLHandler{
		schema:   schema,
		maxDepth: DefaultMaxDepth,
		logger:   logger.With(logging.Component("graphql")),
	}
}

// WithMaxDepth overrides the query depth limit. 0 disables it.
func (h *GraphQLHandler) WithMaxDepth(depth int) *GraphQLHandler {
	h.maxDepth = depth
	return h
}

// WithMutationGuard makes mutations pass check before they run. Rejected
// requests get 401 and are not executed. Queries are unaffected.
func (h *GraphQLHandler) WithMutationGuard(check func(*http.Request) error) *GraphQLHandler {
	h.authorizeEdit = check
	return h
}

// ServeHTTP handles HTTP requests for GraphQL queries
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if h.authorizeEdit != nil && IsMutation(req.Query) {
		if err := h.authorizeEdit(r); err != nil {
			h.logger.Warn("mutation rejected", logging.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(GraphQLResponse{
				Errors: []GraphQLError{{Message: "unauthorized: " + err.Error()}},
			})
			return
		}
	}

	result := ExecuteWithDepthLimit(h.schema, req.Query, h.maxDepth, req.Variables)

	response := GraphQLResponse{
		Data: result.Data,
	}
	if result.HasErrors() {
		response.Errors = make([]GraphQLError, len(result.Errors))
		for i, err := range result.Errors {
			response.Errors[i] = GraphQLError{Message: err.Message}
		}
		h.logger.Warn("graphql request failed",
			logging.Count(len(result.Errors)),
			logging.String("first_error", result.Errors[0].Message),
		)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode graphql response", logging.Error(err))
	}
}
