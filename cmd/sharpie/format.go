package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/orionarts/sharpie/internal/store"
	"github.com/orionarts/sharpie/pkg/perf"
)

func printFindings(r *perf.Report) {
	if len(r.Failures) > 0 {
		fmt.Printf("FAILURES (%d):\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Printf("  %s\n", f.Message)
		}
		fmt.Println()
	}

	if len(r.Cautions) > 0 {
		fmt.Printf("CAUTIONS (%d):\n", len(r.Cautions))
		for _, c := range r.Cautions {
			fmt.Printf("  %s\n", c.Message)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("NOTES (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  %s\n", i.Message)
		}
		fmt.Println()
	}

	if r.Sound {
		fmt.Printf("Result: SOUND (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: UNSOUND (%s)\n", r.Summary)
	}
}

func printLibrary(entries []store.Entry) {
	if len(entries) == 0 {
		fmt.Println("Library is empty.")
		return
	}

	fmt.Printf("%-36s %-24s %-6s %12s %8s %8s\n",
		"ID", "Name", "Year", "Displacement", "Speed", "Sound")
	for _, e := range entries {
		sound := "yes"
		if !e.Sound {
			sound = "NO"
		}
		fmt.Printf("%-36s %-24s %-6d %8s t %6.2f kts %5s\n",
			e.ID, e.Name, e.Year,
			humanize.CommafWithDigits(e.DispNormal, 0),
			e.SpeedMax, sound)
	}
	fmt.Printf("\n%d design%s\n", len(entries), pluralS(len(entries)))
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
