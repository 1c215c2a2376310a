package deepseek

import (
	"fmt"
	"strings"

	"github.com/kerwinzhai/speakdaily/internal/inference"
)

const translationSystemPrompt = `You are a spoken-English coach for Chinese learners.
Translate the Chinese sentence the user gives you into natural, idiomatic, everyday spoken English, and offer a few more idiomatic alternative phrasings.
Output strictly JSON only. Do not output any extra text or Markdown.
JSON Schema:
{
  "english": "string",
  "alternatives": ["string", "..."],
  "keywords": ["string", "..."],
  "grammar": ["string", "..."]
}`

func translationUserPrompt(sourceText string) string {
	return fmt.Sprintf("Chinese: %s\n\nOutput the JSON required by the system prompt:", sourceText)
}

const summarySystemPrompt = `You are an English study-review assistant. From a Chinese/English practice conversation, generate a study summary that helps the learner review.
Output strictly JSON only. Do not output any extra text or Markdown.
JSON Schema:
{
  "topic": "string",
  "stats": { "vocabCount": 0, "grammarCount": 0, "expressionsCount": 0 },
  "vocab": [{"word":"", "meaning":"", "example":""}],
  "grammar": [{"title":"", "explanation":"", "example":""}],
  "quiz": [{"question":"", "options":["",""], "answerIndex":0}]
}
Requirements:
- vocab/grammar/quiz each contain at least 2 items
- example sentences are in English
- quiz answerIndex is zero-based`

func summaryUserPrompt(conversation []inference.ConversationMessage) string {
	lines := make([]string, 0, len(conversation))
	for _, message := range conversation {
		lines = append(lines, fmt.Sprintf("%s: %s", message.Role, message.Content))
	}
	return fmt.Sprintf("The conversation:\n%s\n\nOutput the JSON:", strings.Join(lines, "\n"))
}
