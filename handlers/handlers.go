// Package handlers implements the HTTP endpoints. Every handler follows the
// same skeleton: validate inputs, check the token budget, build a prompt,
// call the model, record actual token usage (even when extraction later
// fails), extract a typed value, respond. There are no retries in this layer;
// the user resubmits.
package handlers

import (
	"github.com/Luciano655dev/HobbyASAP/budget"
	"github.com/Luciano655dev/HobbyASAP/llm"
	"github.com/Luciano655dev/HobbyASAP/store"
)

const (
	promptsKey = "metrics:prompts"
	usersKey   = "metrics:users"
)

// Handlers bundles the collaborators shared by all endpoints.
type Handlers struct {
	completer llm.Completer
	gate      *budget.Gate
	counters  store.Counters
}

// New wires the endpoint handlers. counters may be nil, which disables the
// usage metrics (reported as success with a disabled flag).
func New(completer llm.Completer, gate *budget.Gate, counters store.Counters) *Handlers {
	return &Handlers{
		completer: completer,
		gate:      gate,
		counters:  counters,
	}
}
