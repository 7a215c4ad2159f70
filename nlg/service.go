// Package nlg provides the natural language generation entry point exposed by
// the bridge. Clients reach it through the gateway; it has no methods of its
// own yet, so only the gateway built-ins answer.
package nlg

import "github.com/viant/nlgbridge/gateway"

// Name is the entry point name reported to clients.
const Name = "NLGServer"

// Service is the NLG entry point.
type Service struct{}

func (s *Service) Name() string {
	return Name
}

// Register adds the NLG methods to the dispatch table.
func (s *Service) Register(_ *gateway.Registry) error {
	return nil
}

// New creates the NLG entry point
func New() *Service {
	return &Service{}
}

var _ gateway.EntryPoint = &Service{}
