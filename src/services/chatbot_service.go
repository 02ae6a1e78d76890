package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// degradedChatReply is returned whenever the assistant cannot answer,
// regardless of the underlying cause.
const degradedChatReply = "I'm having trouble processing your request. Please try again."

const chatSystemInstruction = `You are a helpful portfolio assistant. Answer the user's question using only the
portfolio data provided below. Be concise and concrete: cite the relevant figures
from the data. If the question cannot be answered from the data, say so.`

type ChatbotServiceI interface {
	Answer(ctx context.Context, query string) schemas.ChatResponse
}

// ChatbotService answers free-text questions about the portfolio by
// sending the live holdings and summary to Gemini alongside the query.
// The genai client reads its API key from the environment.
type ChatbotService struct {
	holdings  HoldingServiceI
	portfolio PortfolioServiceI
	model     string
}

func NewChatbotService(holdings HoldingServiceI, portfolio PortfolioServiceI, model string) *ChatbotService {
	return &ChatbotService{holdings: holdings, portfolio: portfolio, model: model}
}

// Answer never returns an error; failures degrade to a friendly reply
// with Success=false so the endpoint always responds 200.
func (s *ChatbotService) Answer(ctx context.Context, query string) schemas.ChatResponse {
	logger := utils.LoggerFromContext(ctx)

	answer, err := s.ask(ctx, query)
	if err != nil {
		logger.Warnf("Error answering chat query: %v", err)
		return schemas.ChatResponse{
			Success:  false,
			Query:    query,
			Response: degradedChatReply,
			Error:    err.Error(),
		}
	}
	return schemas.ChatResponse{
		Success:  true,
		Query:    query,
		Response: answer,
	}
}

func (s *ChatbotService) ask(ctx context.Context, query string) (string, error) {
	enriched, rate, err := s.holdings.EnrichAll(ctx)
	if err != nil {
		return "", err
	}
	summary := s.portfolio.Summarize(enriched, rate)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: chatSystemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, s.model, config, nil)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("%s\n\nQuestion: %s", s.prepareDataContext(enriched, summary), query)
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// prepareDataContext renders the portfolio as plain text for the model.
func (s *ChatbotService) prepareDataContext(holdings []schemas.HoldingResponse, summary schemas.PortfolioSummary) string {
	var b strings.Builder

	b.WriteString("Portfolio summary:\n")
	fmt.Fprintf(&b, "- Total value: %s %s\n", summary.CurrencySymbol, summary.TotalValue.StringFixed(2))
	fmt.Fprintf(&b, "- Total investment: %s %s\n", summary.CurrencySymbol, summary.TotalInvestment.StringFixed(2))
	fmt.Fprintf(&b, "- Total profit/loss: %s %s (%s%%)\n",
		summary.CurrencySymbol, summary.TotalProfitLoss.StringFixed(2), summary.TotalProfitLossPercentage.StringFixed(2))
	fmt.Fprintf(&b, "- Holdings: %d\n", summary.TotalHoldings)
	fmt.Fprintf(&b, "- USD to INR rate: %s\n", summary.ExchangeRate.String())

	if len(holdings) > 0 {
		b.WriteString("\nHoldings:\n")
		for _, h := range holdings {
			fmt.Fprintf(&b, "- %s (%s", h.Symbol, h.AssetType)
			if h.Category != "" {
				fmt.Fprintf(&b, ", %s", h.Category)
			}
			fmt.Fprintf(&b, "): quantity %s, current value %s%s, profit/loss %s%s (%s%%)\n",
				h.Quantity.String(),
				h.CurrencySymbol, h.CurrentValue.StringFixed(2),
				h.CurrencySymbol, h.ProfitLoss.StringFixed(2),
				h.ProfitLossPercentage.StringFixed(2))
		}
	}
	return b.String()
}
