// Package agent implements the AI analyst behind the `tdash assist` command.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are the analyst of a consulting company. You are given the current
reporting dataset rendered as markdown: billing, collections, time recorded
per team, deal profitability, and the team scorecard versus targets.

Answer the user's questions about these reports. Ground every figure you
quote in the provided tables. When asked for an overall assessment, call out
teams behind their targets and the largest outstanding invoice buckets.
`

// Analyst is a chat session primed with the rendered reports.
type Analyst struct {
	w       io.Writer
	r       *bufio.Reader
	reports string
	chat    *genai.Chat
}

// New creates an Analyst. 'reports' is the markdown the session is grounded
// on; w and r carry the interactive session (e.g. os.Stdout, os.Stdin).
func New(w io.Writer, r io.Reader, reports string) *Analyst {
	return &Analyst{
		w:       w,
		r:       bufio.NewReader(r),
		reports: reports,
	}
}

// Start creates the underlying chat session and primes it with the reports.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	_, err = a.ask(ctx, "Here are the current reports:\n\n"+a.reports)
	return err
}

const prompt = "assist> "

// Run starts the interactive REPL session for the analyst.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to tdash assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}

// ask sends one message and returns the first text part of the response.
func (a *Analyst) ask(ctx context.Context, text string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
