package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "evaluate_need",
		Description: "Rank community resources against a free-text need and location. Returns the top matches with scores, confidence, matched keywords, rationale, a narrative summary, and the category distribution.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What the user needs, in their own words (e.g. 'free coworking with wifi'). Empty means a generic free-resources search.",
				},
				"location": map[string]interface{}{
					"type":        "string",
					"description": "City the user is in (e.g. 'New York'). Optional.",
				},
			},
		},
	},
	{
		Name:        "list_resources",
		Description: "List catalog resources, optionally filtered by category.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"workspace", "internet", "food", "culture", "learning", "health", "finance", "mobility"},
					"description": "Filter by category. Omit for the full catalog.",
				},
			},
		},
	},
	{
		Name:        "get_resource",
		Description: "Get the full record for a single resource by its id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Resource id (e.g. 'community-fridge')",
				},
			},
			"required": []string{"id"},
		},
	},
}
