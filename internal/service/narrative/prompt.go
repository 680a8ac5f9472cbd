// internal/service/narrative/prompt.go

package narrative

import (
	"encoding/json"
	"fmt"

	"trendscope/internal/domain/trend"
)

const systemPrompt = "You are a trend analysis expert. Analyze the provided trend data and give specific, actionable insights."

// analysisPromptTemplate instructs the model to end with the literal
// "actionable insight:" marker that the classifier splits on. Changing the
// wording here breaks the downstream phrase matching.
const analysisPromptTemplate = `Analyze the following trend data and provide insights:
- Calculate the growth rate and popularity score
- Predict the trend's future trajectory (grow, decline, plateau)
- Suggest actionable business strategies
- Estimate the trend's lifespan

End your answer with a single line starting with "actionable insight:" containing your most important recommendation.

Trend data: %s`

// buildPrompt renders the analysis prompt for one record.
func buildPrompt(rec trend.Record) (string, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode trend data: %w", err)
	}
	return fmt.Sprintf(analysisPromptTemplate, raw), nil
}
