package handlers

import (
	"github.com/Luciano655dev/HobbyASAP/extract"
	"github.com/gin-gonic/gin"
)

// ErrorCode is the stable, machine-readable category attached to every error
// response so clients can decide between "try again" and "rephrase" without
// string matching.
type ErrorCode string

const (
	CodeInvalidInput    ErrorCode = "invalid_input"
	CodeBudgetExceeded  ErrorCode = "budget_exceeded"
	CodeUpstreamFailure ErrorCode = "upstream_failure"
	CodeNoJSONFound     ErrorCode = "no_json_found"
	CodeParseError      ErrorCode = "parse_error"
	CodeSchemaViolation ErrorCode = "schema_violation"
)

const budgetExceededMessage = "HobbyASAP has reached today's AI usage limit. Please try again tomorrow."

func respondError(c *gin.Context, status int, code ErrorCode, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// extractionCode maps a typed extraction failure onto its response code.
func extractionCode(err *extract.Error) ErrorCode {
	switch err.Reason {
	case extract.ReasonNoJSON:
		return CodeNoJSONFound
	case extract.ReasonParse:
		return CodeParseError
	default:
		return CodeSchemaViolation
	}
}
