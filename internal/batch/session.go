package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/raphi011/docbatch/internal/format"
	"github.com/raphi011/docbatch/internal/log"
	"github.com/raphi011/docbatch/internal/naming"
	"github.com/raphi011/docbatch/internal/output"
	"github.com/raphi011/docbatch/internal/storage"
	"github.com/raphi011/docbatch/internal/ui/prompt"
	"github.com/raphi011/docbatch/internal/ui/static"
	"github.com/raphi011/docbatch/internal/ui/styles"
)

// Prompt texts.
const (
	TemplatePrompt      = "Enter the naming convention"
	TemplatePlaceholder = "File-0-Content"
	SelectionPrompt     = "Enter the number of your choice:"
	CountPrompt         = "Enter the number of copies to create:"
	RepeatPrompt        = "Do you want to run the program again?"
)

// Options configure a Session.
type Options struct {
	OutputDir string        // root directory; per-format subdirectories go below it
	Format    string        // optional query that replaces the format menu
	DryRun    bool          // print planned paths instead of writing files
	Writer    format.Writer // document writers

	// Placeholder is shown as the template hint; TemplatePlaceholder when
	// empty. After each run it becomes the template just used.
	Placeholder string

	// Record, when set, is called after every completed run that wrote
	// files. A failure is logged and does not end the session.
	Record func(template, ext string, count int) error
}

// Session holds the state of one interactive session. A session may cover
// several runs when the user chooses to repeat.
type Session struct {
	prompter prompt.Prompter
	opts     Options

	state State

	// current run
	base    string
	format  format.Format
	count   int
	created int

	// whole session
	runs  int
	total int
}

// New creates a session reading answers from p.
func New(p prompt.Prompter, opts Options) *Session {
	return &Session{prompter: p, opts: opts, state: CollectTemplate}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Runs returns the number of completed runs.
func (s *Session) Runs() int { return s.runs }

// Total returns the number of files created over all runs.
func (s *Session) Total() int { return s.total }

// Run drives the session until Done or the first error. The context is
// checked between states; a batch in progress is never interrupted.
func (s *Session) Run(ctx context.Context) error {
	for s.state != Done {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx)
		if err != nil {
			return err
		}
		log.FromContext(ctx).Debug("state", "from", s.state, "to", next)
		s.state = next
	}
	return nil
}

func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case CollectTemplate:
		return s.collectTemplate()
	case SelectFormat:
		return s.selectFormat(ctx)
	case CollectCount:
		return s.collectCount()
	case Generate:
		return s.generate(ctx)
	case Report:
		return s.report(ctx)
	case AskRepeat:
		return s.askRepeat()
	default:
		return Done, nil
	}
}

func (s *Session) collectTemplate() (State, error) {
	s.base, s.count, s.created = "", 0, 0

	placeholder := s.opts.Placeholder
	if placeholder == "" {
		placeholder = TemplatePlaceholder
	}
	raw, err := s.prompter.Input(TemplatePrompt, placeholder)
	if err != nil {
		return s.state, err
	}
	base := naming.Sanitize(raw)
	if base == "" {
		return s.state, &EmptyInputError{Input: raw}
	}
	s.base = base
	return SelectFormat, nil
}

func (s *Session) selectFormat(ctx context.Context) (State, error) {
	if s.opts.Format != "" {
		f, ok := format.Resolve(s.opts.Format)
		if !ok {
			return s.state, &InvalidSelectionError{Input: s.opts.Format, Max: len(format.Formats), Query: true}
		}
		log.FromContext(ctx).Debug("format preselected", "query", s.opts.Format, "ext", f.Ext)
		s.format = f
		return CollectCount, nil
	}

	out := output.FromContext(ctx)
	out.Println(styles.WarningStyle.Render("Select file type:"))
	out.Print(Menu())

	answer, err := s.prompter.Input(SelectionPrompt, "1-"+strconv.Itoa(len(format.Formats)))
	if err != nil {
		return s.state, err
	}
	n, err := ParseSelection(answer, len(format.Formats))
	if err != nil {
		return s.state, err
	}
	s.format, _ = format.ByNumber(n)
	return CollectCount, nil
}

func (s *Session) collectCount() (State, error) {
	answer, err := s.prompter.Input(CountPrompt, "")
	if err != nil {
		return s.state, err
	}
	n, err := ParseCount(answer)
	if err != nil {
		return s.state, err
	}
	s.count = n
	return Generate, nil
}

func (s *Session) generate(ctx context.Context) (State, error) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	names, err := naming.Generate(s.base, s.count, s.format.Ext)
	if err != nil {
		return s.state, &InvalidCountError{Input: strconv.Itoa(s.count)}
	}

	dir := filepath.Join(s.opts.OutputDir, s.format.Dir())
	if !s.opts.DryRun {
		for _, d := range []string{s.opts.OutputDir, dir} {
			if err := storage.EnsureDir(d); err != nil {
				return s.state, &FilesystemError{Op: "mkdir", Path: d, Err: err}
			}
		}
	}

	create := s.opts.Writer.Creator(s.format.Kind)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if s.opts.DryRun {
			out.Println(path)
			continue
		}
		if err := create(path); err != nil {
			s.total += s.created
			return s.state, &FilesystemError{Op: "create", Path: path, Err: err}
		}
		l.Debug("created", "path", path, "kind", s.format.Kind)
		s.created++
	}
	return Report, nil
}

func (s *Session) report(ctx context.Context) (State, error) {
	out := output.FromContext(ctx)
	if s.opts.DryRun {
		out.Println(styles.InfoStyle.Render(fmt.Sprintf("Dry run: %d files would be created", s.count)))
	} else {
		out.Println(styles.SuccessStyle.Render(fmt.Sprintf("Total files created: %d", s.created)))
		if s.opts.Record != nil {
			if err := s.opts.Record(s.base, s.format.Ext, s.created); err != nil {
				log.FromContext(ctx).Warnf("record history: %v", err)
			}
		}
	}
	s.opts.Placeholder = s.base
	s.total += s.created
	s.runs++
	return AskRepeat, nil
}

func (s *Session) askRepeat() (State, error) {
	again, err := s.prompter.Confirm(RepeatPrompt)
	if errors.Is(err, prompt.ErrCancelled) {
		return Done, nil
	}
	if err != nil {
		return s.state, err
	}
	if again {
		return CollectTemplate, nil
	}
	return Done, nil
}

// Menu renders the numbered list of supported formats.
func Menu() string {
	rows := make([][]string, 0, len(format.Formats))
	for i, f := range format.Formats {
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Label()})
	}
	return static.RenderTable([]string{"#", "FILE TYPE"}, rows, &styles.AccentStyle)
}
