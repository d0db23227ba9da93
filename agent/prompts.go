package agent

import (
	"fmt"
	"strings"

	"github.com/poiesic/hospitium/core"
)

// contextHospitals is how many retrieved hospitals the prompt enumerates.
const contextHospitals = 3

const systemPrompt = `You are Loop AI Health Assistant - a professional, empathetic hospital locator.

CORE IDENTITY:
- Name: Loop AI Health Assistant
- Purpose: Help users find hospitals in the Loop Health network
- Tone: Warm, professional, efficient

RULES:
1. ONLY answer hospital/healthcare facility queries
2. Use conversation history intelligently for follow-ups
3. Keep responses CONCISE (2-4 sentences for voice clarity)
4. Always mention city names with hospitals
5. NO newlines or special characters in responses
6. Be empathetic - healthcare decisions are important`

const greetingMessage = "Hello! I'm Loop AI Health Assistant, your dedicated guide to finding hospitals " +
	"in the Loop Health network. I can help you locate hospitals by city, verify if specific facilities " +
	"are in your network, and answer questions about our healthcare partners. How may I assist you today?"

const refusalMessage = "I'm sorry, I can only assist with hospital queries. Let me connect you with a human agent."

const introPrefix = "Hello! I'm Loop AI Health Assistant. "

// buildContextBlock renders the retrieved hospitals as the prompt's context
// section.
func buildContextBlock(results []core.SearchResult) string {
	if len(results) == 0 {
		return "No hospitals found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d hospital(s):\n", len(results))
	for i, r := range results {
		if i == contextHospitals {
			break
		}
		fmt.Fprintf(&b, "%d. %s in %s\n   Address: %s\n",
			i+1, r.Record.Name, r.Record.City, r.Record.Address)
	}
	return b.String()
}

// buildPrompt assembles the full user prompt: context block, recent
// conversation, and the utterance itself.
func buildPrompt(utterance, contextBlock, conversation string) string {
	var b strings.Builder
	b.WriteString("Context: ")
	b.WriteString(contextBlock)
	b.WriteString("\n")
	if conversation != "" {
		b.WriteString("Previous conversation:\n")
		b.WriteString(conversation)
	}
	b.WriteString("\nUser: ")
	b.WriteString(utterance)
	b.WriteString("\n\nProvide a concise voice response (2-3 sentences, NO newlines).")
	return b.String()
}
