package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/feed"
	"go-jobboard-backend/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// optionalFlag is a string flag that remembers whether it was given.
type optionalFlag struct {
	value *string
}

func (f *optionalFlag) String() string {
	if f.value == nil {
		return ""
	}
	return *f.value
}

func (f *optionalFlag) Set(s string) error {
	f.value = &s
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole command; it returns the process exit code so deferred
// cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	var role, language, tool optionalFlag
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	source := fs.String("source", os.Getenv("JOBS_SOURCE_URL"), "Jobs resource: http(s) URL or path to a JSON file")
	showOptions := fs.Bool("options", false, "Print the available roles, languages and tools instead of jobs")
	fs.Var(&role, "role", "Only jobs with this role")
	fs.Var(&language, "language", "Only jobs listing this language")
	fs.Var(&tool, "tool", "Only jobs listing this tool")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *source == "" {
		fmt.Fprint(stderr, pterm.Error.Sprintln("A jobs source is required (-source or JOBS_SOURCE_URL)"))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := feed.NewSource(*source, 0)
	if err != nil {
		fmt.Fprint(stderr, pterm.Error.Sprintln(err))
		return 2
	}

	loader := usecase.NewJobLoader(src)
	loader.Load(ctx)

	snap := loader.Snapshot()
	if snap.State != domain.LoadReady {
		fmt.Fprint(stderr, pterm.Error.Sprintfln("Failed to load job listings: %s", snap.Error))
		return 1
	}
	fmt.Fprint(stdout, pterm.Success.Sprintfln("Loaded %s jobs", humanize.Comma(int64(len(snap.Jobs)))))

	if *showOptions {
		printOptions(stdout, *snap.Options)
		return 0
	}

	sel := domain.Selection{Role: role.value, Language: language.value, Tool: tool.value}
	if err := printJobs(stdout, usecase.FilterJobs(snap.Jobs, sel), len(snap.Jobs), sel); err != nil {
		fmt.Fprint(stderr, pterm.Error.Sprintln(err))
		return 1
	}
	return 0
}

func printOptions(w io.Writer, opts domain.FilterOptions) {
	fmt.Fprint(w, pterm.DefaultSection.Sprintln("Filter options"))
	fmt.Fprintln(w, pterm.Bold.Sprint("Roles:     ")+strings.Join(opts.Roles, ", "))
	fmt.Fprintln(w, pterm.Bold.Sprint("Languages: ")+strings.Join(opts.Languages, ", "))
	fmt.Fprintln(w, pterm.Bold.Sprint("Tools:     ")+strings.Join(opts.Tools, ", "))
}

func printJobs(w io.Writer, jobs []domain.Job, total int, sel domain.Selection) error {
	if !sel.IsEmpty() {
		fmt.Fprint(w, pterm.Info.Sprintfln("Showing %s of %s jobs", humanize.Comma(int64(len(jobs))), humanize.Comma(int64(total))))
	}
	if len(jobs) == 0 {
		fmt.Fprint(w, pterm.Warning.Sprintln("No jobs match the selected filters"))
		return nil
	}

	data := pterm.TableData{{"Company", "Position", "Posted", "Tags"}}
	for _, job := range jobs {
		data = append(data, []string{
			companyCell(job),
			job.Position,
			fmt.Sprintf("%s • %s • %s", job.PostedAt, job.Contract, job.Location),
			strings.Join(job.Tags(), ", "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

func companyCell(job domain.Job) string {
	cell := job.Company
	if job.Featured {
		cell = pterm.Cyan(cell)
	}
	if job.New {
		cell += " " + pterm.LightCyan("NEW!")
	}
	if job.Featured {
		cell += " " + pterm.Gray("FEATURED")
	}
	return cell
}
