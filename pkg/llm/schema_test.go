package llm

import (
	"sort"
	"testing"

	"github.com/Rohithsilent/P-o-P/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestGenerateSchema_Insights(t *testing.T) {
	schema, err := generateSchema[model.Insights]()
	assert.Equal(t, nil, err)

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])

	_, hasSchemaKey := schema["$schema"]
	assert.Equal(t, false, hasSchemaKey)

	required, ok := schema["required"].([]string)
	assert.Equal(t, true, ok)
	sort.Strings(required)
	assert.Equal(t, []string{"complaints", "improvements", "loved", "summary"}, required)

	props := schema["properties"].(map[string]any)
	loved := props["loved"].(map[string]any)
	assert.Equal(t, "string", loved["type"])
	assert.NotEqual(t, "", loved["description"])
}
