package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tendril-ui/tendril/htmldom"
	"github.com/tendril-ui/tendril/markup"
	"github.com/tendril-ui/tendril/view"
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template to HTML",
	Long:  "Parse a Tendril template, mount it, drive the update scheduler to quiescence, and emit the resulting HTML.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	output, _ := cmd.Flags().GetString("output")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	storage, err := openStorage()
	if err != nil {
		return err
	}

	rt := view.NewRuntime(htmldom.New(), storage)
	if verbose {
		rt.Emitter.On(terminalEventListener())
	}

	ctx := cmd.Context()

	root, err := rt.Mount(ctx, nil, string(src))
	if err != nil {
		printDiagnostic(err)
		return err
	}

	if err := rt.Scheduler.Drain(ctx); err != nil {
		printDiagnostic(err)
		return err
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := root.(*htmldom.Element).Render(out); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

// openStorage returns FileStorage when --store (or TENDRIL_STORE) is set,
// in-memory storage otherwise.
func openStorage() (view.Storage, error) {
	path := viper.GetString("store")
	if path == "" {
		return view.NewMemoryStorage(), nil
	}
	storage, err := view.NewFileStorage(path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return storage, nil
}

// printDiagnostic prints the caret/tilde source excerpt for markup errors.
func printDiagnostic(err error) {
	var perr *markup.ParseError
	var lerr *markup.LexError
	switch {
	case errors.As(err, &perr):
		printExcerpt(perr.Error(), perr.Excerpt())
	case errors.As(err, &lerr):
		printExcerpt(lerr.Error(), lerr.Excerpt())
	}
}

func printExcerpt(msg, excerpt string) {
	fmt.Fprintln(os.Stderr, msg)
	if excerpt != "" {
		fmt.Fprintln(os.Stderr, excerpt)
	}
}

// terminalEventListener returns an event listener that prints runtime
// progress to stderr.
func terminalEventListener() func(view.Event) {
	return func(e view.Event) {
		path, _ := e.Data["path"].(string)
		switch e.Type {
		case view.EventComponentMounted:
			fmt.Fprintf(os.Stderr, "[mount] %s\n", path)

		case view.EventComponentRendered:
			durationMs, _ := e.Data["duration_ms"].(int64)
			fmt.Fprintf(os.Stderr, "[render] %s (%dms)\n", path, durationMs)

		case view.EventStoreChanged:
			store, _ := e.Data["store"].(string)
			fmt.Fprintf(os.Stderr, "[store] %s.%s changed\n", path, store)

		case view.EventCascadeScheduled:
			fmt.Fprintf(os.Stderr, "[cascade] scheduled from %s\n", path)

		case view.EventCascadeCompleted:
			fmt.Fprintf(os.Stderr, "[cascade] completed from %s\n", path)
		}
	}
}
