package handler

import "encoding/json"

type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type GraphQLQueryParams struct {
	Query         string `form:"query" binding:"required"`
	OperationName string `form:"operationName"`
	Variables     string `form:"variables"`
}

// GraphQLResponse documents the response shape for swagger; handlers write
// graphql.Response directly.
type GraphQLResponse struct {
	Data       json.RawMessage        `json:"data,omitempty" swaggertype:"object"`
	Errors     []GraphQLError         `json:"errors,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

type GraphQLError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}
