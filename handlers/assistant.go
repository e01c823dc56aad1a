package handlers

import (
	"math/rand"
	"net/http"

	"pilgrimpath/config"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
)

const assistantInstruction = "I am your personal PilgrimPath guide for the Ujjain Simhastha. " +
	"I'm here to help you directly. Ask me for the safest routes, where to find food, " +
	"safety tips, or any other guidance you need. I will give you clear and concise " +
	"answers in the language you use (English or Hindi). How can I assist you right now?"

// Shown to the user whenever the upstream call fails. Never surfaced as a
// hard error.
const assistantFallback = "Sorry, I am having trouble connecting to my knowledge base. Please try again later."

// Canned guide replies for running without an API key.
var demoResponses = []string{
	"Namaste! I'm your PilgrimPath guide. For the safest route to Mahakaleshwar Temple, take the main road via Ram Ghat. The temple is least crowded in early morning (5-7 AM) and evening (7-9 PM).",
	"For accommodation, book near the temple area for convenience. Dormitory options are budget-friendly at Rs 250/night, while premium suites offer temple views at Rs 1500/night.",
	"AC buses from Indore to Ujjain run every 30 minutes and the journey takes 1.5 hours. Book in advance during peak pilgrimage season.",
	"Safety tip: always carry water, stay in groups, and keep emergency contacts handy. Crowd levels are updated in real time on the Navigation page.",
	"Temple timings: Mahakaleshwar opens at 4 AM for Bhasma Aarti. Regular darshan is from 6 AM to 11 PM. Plan accordingly to avoid crowds.",
}

// AskAssistant answers a pilgrim's question through the chat-completion API.
// Without a configured key it serves a demo reply; an upstream failure
// degrades to the fallback message, never an error status.
func AskAssistant(c *gin.Context, cfg *config.Config) {
	var request struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cfg.OpenAIAPIKey == "" {
		c.JSON(http.StatusOK, gin.H{
			"response": demoResponses[rand.Intn(len(demoResponses))],
			"demo":     true,
		})
		return
	}

	client := openai.NewClient(cfg.OpenAIAPIKey)
	resp, err := client.CreateChatCompletion(
		c.Request.Context(),
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: assistantInstruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: request.Prompt,
				},
			},
			MaxTokens: 300,
		},
	)
	if err != nil || len(resp.Choices) == 0 {
		c.JSON(http.StatusOK, gin.H{"response": assistantFallback})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": resp.Choices[0].Message.Content})
}
