package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/freeatlas/resourcefinder/internal/catalog"
)

func (s *Server) registerHandlers() {
	s.handlers["evaluate_need"] = s.handleEvaluateNeed
	s.handlers["list_resources"] = s.handleListResources
	s.handlers["get_resource"] = s.handleGetResource
}

type evaluateNeedParams struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

func (s *Server) handleEvaluateNeed(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p evaluateNeedParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	return s.evaluator.Evaluate(p.Query, p.Location), nil
}

type listResourcesParams struct {
	Category string `json:"category"`
}

func (s *Server) handleListResources(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listResourcesParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	if p.Category == "" {
		return s.catalog.Resources, nil
	}

	cat := catalog.Category(p.Category)
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown category: %s", p.Category)
	}

	return s.catalog.ByCategory(cat), nil
}

type getResourceParams struct {
	ID string `json:"id"`
}

func (s *Server) handleGetResource(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getResourceParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	resource := s.catalog.Get(p.ID)
	if resource == nil {
		return nil, fmt.Errorf("resource not found: %s", p.ID)
	}

	return resource, nil
}
