package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/graph"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/validation"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type GraphQLHandler struct {
	schema *graphql.Schema
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

func (h *GraphQLHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/graphql", h.Post)
	r.GET("/graphql", h.Get)
}

// Post godoc
// @Summary      Execute a GraphQL operation
// @Description  Runs a query or mutation against the library schema
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        payload  body      GraphQLRequest            true  "GraphQL request"
// @Success      200      {object}  GraphQLResponse
// @Failure      400      {object}  validation.ErrorResponse  "Malformed request"
// @Failure      429      {object}  validation.ErrorResponse  "Rate limited"
// @Router       /graphql [post]
func (h *GraphQLHandler) Post(c *gin.Context) {
	var req GraphQLRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Execute a GraphQL query
// @Description  Runs a query passed in the URL. Mutations are refused.
// @Tags         graphql
// @Produce      json
// @Param        query          query     string  true   "GraphQL document"
// @Param        operationName  query     string  false  "Operation to run"
// @Param        variables      query     string  false  "JSON encoded variables"
// @Success      200  {object}  GraphQLResponse
// @Failure      400  {object}  validation.ErrorResponse  "Malformed request"
// @Failure      429  {object}  validation.ErrorResponse  "Rate limited"
// @Router       /graphql [get]
func (h *GraphQLHandler) Get(c *gin.Context) {
	var req GraphQLQueryParams
	if !validation.BindAndValidateQuery(c, &req) {
		return
	}

	var variables map[string]interface{}
	if req.Variables != "" {
		if err := jsonCodec.UnmarshalFromString(req.Variables, &variables); err != nil {
			validation.WriteError(c, http.StatusBadRequest,
				"INVALID_VARIABLES",
				"variables must be a JSON object",
			)
			return
		}
	}

	ctx := graph.WithReadOnly(c.Request.Context())
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, variables)
	c.JSON(http.StatusOK, resp)
}
