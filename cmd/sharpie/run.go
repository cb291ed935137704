package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orionarts/sharpie/internal/store"
	"github.com/orionarts/sharpie/pkg/legacy"
	"github.com/orionarts/sharpie/pkg/perf"
	"github.com/orionarts/sharpie/pkg/report"
	"github.com/orionarts/sharpie/pkg/ship"
)

// evalFlags are the evaluation switches shared by report and metrics.
type evalFlags struct {
	resolveDeck    bool
	fixedSuperfire bool
}

func (f *evalFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.resolveDeck, "resolve-deck", false,
		"iterate the deck armour and machinery weights to a fixed point")
	cmd.Flags().BoolVar(&f.fixedSuperfire, "fixed-superfire", false,
		"place superfiring mounts at the lead mount station")
}

func (f *evalFlags) options() perf.Options {
	return perf.Options{
		ResolveDeckFeedback: f.resolveDeck,
		CorrectedSuperfire:  f.fixedSuperfire,
	}
}

// load reads a design, importing transparently if it is a SpringSharp 3
// file.
func load(path string) (*ship.Ship, error) {
	if strings.EqualFold(filepath.Ext(path), ship.ImportExt) {
		return legacy.Import(path)
	}
	return ship.Load(path)
}

func runReport(path string, opt evalFlags) error {
	d, err := load(path)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderWithOptions(d, opt.options()))
	return nil
}

func runValidate(path string) error {
	d, err := load(path)
	if err != nil {
		return err
	}
	r := perf.New(d).Findings()
	printFindings(r)
	if !r.Sound {
		os.Exit(1)
	}
	return nil
}

func runMetrics(path string, opt evalFlags) error {
	d, err := load(path)
	if err != nil {
		return err
	}
	sum := perf.NewWithOptions(d, opt.options()).Summarize()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

func runImport(path, out string) error {
	d, err := legacy.Import(path)
	if err != nil {
		return err
	}
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ship.FileExt
	}
	if err := d.Save(out); err != nil {
		return err
	}
	fmt.Printf("Imported %s\n", out)
	return nil
}

func openLibrary(dbPath string) (*store.Store, error) {
	return store.Open(dbPath, nil)
}

func runLibrarySave(dbPath, path string) error {
	d, err := load(path)
	if err != nil {
		return err
	}
	st, err := openLibrary(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.Save(context.Background(), d)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s as %s\n", d.Name, id)
	return nil
}

func runLibraryList(dbPath, nameFilter string) error {
	st, err := openLibrary(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.List(context.Background(), nameFilter)
	if err != nil {
		return err
	}
	printLibrary(entries)
	return nil
}

func runLibraryShow(dbPath, id string) error {
	st, err := openLibrary(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.Get(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Print(report.Render(d))
	return nil
}

func runLibraryExport(dbPath, id, out string) error {
	st, err := openLibrary(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.Get(context.Background(), id)
	if err != nil {
		return err
	}
	if out == "" {
		name := strings.ReplaceAll(d.Name, " ", "_")
		if name == "" {
			name = id
		}
		out = name + ship.FileExt
	}
	if err := d.Save(out); err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", out)
	return nil
}

func runLibraryDelete(dbPath, id string) error {
	st, err := openLibrary(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", id)
	return nil
}
