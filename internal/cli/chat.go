package cli

import (
	"context"
	"fmt"
	"strings"
)

type ChatCmd struct {
	Message []string `arg:"" help:"Message to send to the assistant."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	reply, err := ctx.Client.Chat(context.Background(), strings.Join(c.Message, " "))
	if err != nil {
		return fmt.Errorf("failed to reach the assistant: %w", err)
	}
	fmt.Println(reply)
	return nil
}

type MotivationCmd struct{}

func (c *MotivationCmd) Run(ctx *Context) error {
	text, err := ctx.Client.Motivation(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch motivation: %w", err)
	}
	fmt.Println(text)
	return nil
}
