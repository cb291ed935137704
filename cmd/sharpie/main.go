package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/orionarts/sharpie/internal/server"
	"github.com/orionarts/sharpie/internal/store"
)

const defaultDB = "sharpie.db"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "sharpie",
		Short: "Pre-dreadnought warship design evaluator",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(libraryCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func reportCmd() *cobra.Command {
	var opt evalFlags

	cmd := &cobra.Command{
		Use:   "report [design.ship]",
		Short: "Print the full design report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReport(args[0], opt)
		},
	}
	opt.register(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [design.ship]",
		Short: "Check a design for failures and cautions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func metricsCmd() *cobra.Command {
	var opt evalFlags

	cmd := &cobra.Command{
		Use:   "metrics [design.ship]",
		Short: "Print headline performance figures as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMetrics(args[0], opt)
		},
	}
	opt.register(cmd)
	return cmd
}

func importCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "import [design.sship]",
		Short: "Convert a SpringSharp 3 file to native format",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "",
		"output path (default: input with .ship extension)")
	return cmd
}

func libraryCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local design library",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB,
		"library database path")

	cmd.AddCommand(&cobra.Command{
		Use:   "save [design.ship]",
		Short: "Add a design to the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLibrarySave(dbPath, args[0])
		},
	})

	var nameFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List designs in the library",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLibraryList(dbPath, nameFilter)
		},
	}
	list.Flags().StringVar(&nameFilter, "name", "", "filter by name substring")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Print the report for a stored design",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLibraryShow(dbPath, args[0])
		},
	})

	var exportPath string
	export := &cobra.Command{
		Use:   "export [id]",
		Short: "Write a stored design back to a .ship file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLibraryExport(dbPath, args[0], exportPath)
		},
	}
	export.Flags().StringVarP(&exportPath, "output", "o", "",
		"output path (default: <name>.ship)")
	cmd.AddCommand(export)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a design from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLibraryDelete(dbPath, args[0])
		},
	})

	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the design library server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := store.Open(dbPath, slog.Default())
			if err != nil {
				return err
			}
			defer st.Close()
			return server.New(st, port, slog.Default()).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&dbPath, "db", defaultDB, "library database path")
	return cmd
}
