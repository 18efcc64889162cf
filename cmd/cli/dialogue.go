package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"executive-assistant/internal/app"
	"executive-assistant/internal/session"

	"github.com/spf13/cobra"
)

func listenCmd() *cobra.Command {
	var (
		continuous bool
		greet      bool
	)
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the wake-word session over transcribed lines on stdin",
		Long: `Reads one transcribed utterance per line. The session starts on the
wake word, expires after the configured timeout and ends on an exit word.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				ac := a.Config().Assistant
				if cmd.Flags().Changed("continuous") {
					ac.ContinuousMode = continuous
				}

				label := ac.AssistantName
				if label == "" {
					label = "assistant"
				}
				loop := session.NewLoop(a.Logger(), a.NewOrchestrator(),
					session.NewLineListener(os.Stdin, 0),
					session.NewWriterSpeaker(cmd.OutOrStdout(), label),
					session.LoopOptions{
						Timer: session.TimerOptions{
							WakeWord:   ac.WakeWord,
							Timeout:    ac.SessionTimeout,
							ExitWords:  ac.ExitWords,
							Continuous: ac.ContinuousMode,
						},
						Greet: greet,
					})
				return loop.Run(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&continuous, "continuous", false, "keep the session active between commands")
	cmd.Flags().BoolVar(&greet, "greet", true, "announce when the session starts")
	return cmd
}

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant without a wake word",
		Long: `With an argument, sends one message and prints the reply. Without one,
reads messages from stdin until EOF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				o := a.NewOrchestrator()
				out := cmd.OutOrStdout()

				if len(args) > 0 {
					fmt.Fprintln(out, o.Handle(ctx, strings.Join(args, " ")))
					return nil
				}

				sc := bufio.NewScanner(cmd.InOrStdin())
				fmt.Fprint(out, "> ")
				for sc.Scan() {
					if err := ctx.Err(); err != nil {
						return err
					}
					line := strings.TrimSpace(sc.Text())
					if line != "" {
						fmt.Fprintln(out, o.Handle(ctx, line))
					}
					fmt.Fprint(out, "> ")
				}
				fmt.Fprintln(out)
				if err := sc.Err(); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		},
	}
	return cmd
}
