package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ethanbaker/sparky/pkg/sdk"
	"github.com/ethanbaker/sparky/pkg/utils"
)

const help = `Commands:
  /summary <url>  summarize a video
  /video <url>    use a video as context for the following messages
  /video          stop using video context
  /new            start a new conversation
  exit            quit`

// repl holds the state of one interactive conversation
type repl struct {
	client  *sdk.Client
	chatID  string
	context string
	out     io.Writer
}

func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	r := &repl{
		client: sdk.NewClient(cfg.GetWithDefault("BACKEND_BASE_URL", "http://localhost:5000")),
		out:    os.Stdout,
	}

	if err := r.run(context.Background(), os.Stdin); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}

// run reads lines from in until EOF or "exit"
func (r *repl) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(r.out, "Sparky started. Type 'exit' to quit or /help for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" {
			break
		}
		if input == "" {
			continue
		}

		if err := r.handle(ctx, input); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

// handle dispatches a command or sends the input as a chat message
func (r *repl) handle(ctx context.Context, input string) error {
	command, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "/help":
		fmt.Fprintln(r.out, help)

	case "/new":
		r.chatID = ""
		fmt.Fprintln(r.out, "Started a new conversation.")

	case "/video":
		r.context = arg
		if arg == "" {
			fmt.Fprintln(r.out, "Video context cleared.")
		} else {
			fmt.Fprintf(r.out, "Using %s as context.\n", arg)
		}

	case "/summary":
		if arg == "" {
			return fmt.Errorf("usage: /summary <url>")
		}

		resp, err := r.client.ProcessVideo(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Summary of %s:\n\n%s\n", resp.VideoID, resp.Summary)

	default:
		resp, err := r.client.Chat(ctx, &sdk.ChatRequest{
			Message: input,
			ChatID:  r.chatID,
			Context: r.context,
		})
		if err != nil {
			return err
		}

		r.chatID = resp.ChatID
		fmt.Fprintf(r.out, "Sparky: %s\n", resp.Response)
	}

	return nil
}
