package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-brief/internal/transcript"
)

func newSummarizeCommand(configPath *string) *cobra.Command {
	var file, docxPath string

	cmd := &cobra.Command{
		Use:   "summarize <url>",
		Short: "Resolve a transcript and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}

			text := a.deps.Resolver.Resolve(ctx, transcript.Source{StoredFile: file, URL: args[0]})
			summary, err := a.deps.Summarizer.Summarize(ctx, text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)

			if docxPath != "" {
				if err := a.deps.Summarizer.ExportDOCX("Video Summary: "+args[0], summary, docxPath); err != nil {
					return err
				}
				a.log.Info(ctx, "Summary written to %s", docxPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Stored media file to transcribe before trying captions")
	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write the summary to this DOCX file")
	return cmd
}

func newTranscriptCommand(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "transcript <url>",
		Short: "Resolve and print the transcript only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runTranscript(ctx, cmd, *configPath, file, args[0])
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Stored media file to transcribe before trying captions")
	return cmd
}

func runTranscript(ctx context.Context, cmd *cobra.Command, configPath, file, url string) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	text := a.deps.Resolver.Resolve(ctx, transcript.Source{StoredFile: file, URL: url})
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
