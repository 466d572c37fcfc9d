package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rohithsilent/P-o-P/internal/model"
	"github.com/Rohithsilent/P-o-P/pkg/sentiment"
)

const (
	sampleSize     = 50
	maxCommentRune = 200
)

const insightSystemPrompt = `You help YouTube creators understand their audience from the comments on a video.

Rules:
1. Base every point on the sample comments and the sentiment statistics
2. Be specific: quote topics, moments or features viewers mention
3. Use markdown bullet points ("- ") for loved, complaints and improvements, 2 or 3 bullets each
4. The summary is 2 or 3 plain sentences with the overall sentiment and the key takeaway

Output as JSON only, no other text:
{
  "loved": "things viewers praised",
  "complaints": "concerns or criticisms",
  "improvements": "actionable improvements for future videos",
  "summary": "overall sentiment and key takeaway"
}`

const (
	defaultLoved        = "Viewers appreciated the content overall."
	defaultComplaints   = "No major complaints identified."
	defaultImprovements = "Continue creating similar content."
)

func buildInsightPrompt(input InsightInput) string {
	comments := input.Comments
	if len(comments) > sampleSize {
		comments = comments[:sampleSize]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are analyzing YouTube comments for the video: %q\n\n", input.VideoTitle)
	sb.WriteString("Sentiment Statistics:\n")
	fmt.Fprintf(&sb, "- Positive: %d comments\n", input.Tally.Positive)
	fmt.Fprintf(&sb, "- Negative: %d comments\n", input.Tally.Negative)
	fmt.Fprintf(&sb, "- Neutral: %d comments\n\n", input.Tally.Neutral)
	fmt.Fprintf(&sb, "Sample Comments (first %d):\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(&sb, "- %s\n", truncateRunes(c, maxCommentRune))
	}
	return sb.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func answerPrompt(question, background string) string {
	return background + "\n\n" + question
}

// parseInsights accepts either the JSON object asked for in the prompt or a
// markdown reply with "## Loved / Complaints / Recommendations / Summary"
// headings.
func parseInsights(content string) (*model.Insights, error) {
	var ins model.Insights
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &ins); err == nil {
		return &ins, nil
	}

	sections := parseSections(content)
	if len(sections) == 0 {
		return nil, fmt.Errorf("failed to parse insights, content: %s", content)
	}
	return &model.Insights{
		Loved:        sections["loved"],
		Complaints:   sections["complaints"],
		Improvements: sections["improvements"],
		Summary:      sections["summary"],
	}, nil
}

func parseSections(content string) map[string]string {
	sections := map[string]string{}
	var (
		current string
		lines   []string
	)
	flush := func() {
		if current != "" && len(lines) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(lines, "\n"))
		}
		lines = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "##") {
			if key := sectionKey(line); key != "" {
				flush()
				current = key
				continue
			}
		}
		if current != "" && strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	flush()
	return sections
}

func sectionKey(heading string) string {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "loved"):
		return "loved"
	case strings.Contains(h, "complaints"):
		return "complaints"
	case strings.Contains(h, "recommendations"), strings.Contains(h, "improvements"):
		return "improvements"
	case strings.Contains(h, "summary"):
		return "summary"
	}
	return ""
}

// fillDefaults replaces empty sections with generic text derived from the tally.
func fillDefaults(ins *model.Insights, tally sentiment.Tally) *model.Insights {
	if strings.TrimSpace(ins.Loved) == "" {
		ins.Loved = defaultLoved
	}
	if strings.TrimSpace(ins.Complaints) == "" {
		ins.Complaints = defaultComplaints
	}
	if strings.TrimSpace(ins.Improvements) == "" {
		ins.Improvements = defaultImprovements
	}
	if strings.TrimSpace(ins.Summary) == "" {
		mood := "mixed"
		if tally.Positive > tally.Negative {
			mood = "positive"
		}
		ins.Summary = fmt.Sprintf("Overall sentiment is %s.", mood)
	}
	return ins
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
