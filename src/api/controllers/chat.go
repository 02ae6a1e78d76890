package controllers

import (
	"context"

	"portfolio-server/src/schemas"
)

type ChatControllerI interface {
	AnswerQuery(ctx context.Context, query string) schemas.ChatResponse
}

func (c *Controller) AnswerQuery(ctx context.Context, query string) schemas.ChatResponse {
	return c.ChatbotService.Answer(ctx, query)
}
