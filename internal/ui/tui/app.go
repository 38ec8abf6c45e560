package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/datasplit/internal/domain"
)

type phase int

const (
	phasePlanning phase = iota
	phaseCopying
	phaseDone
)

// runProgram is replaced in tests.
var runProgram = func(p *tea.Program) (tea.Model, error) { return p.Run() }

type model struct {
	theme Theme
	deps  Deps

	phase   phase
	spinner spinner.Model
	bar     progress.Model

	total  int
	done   int
	counts map[domain.Subset]int

	result jobDoneMsg
	cancel context.CancelFunc
	notice string
}

// Run shows a progress view while job runs and returns the job's result.
// The view quits on its own when the job finishes.
func Run(ctx context.Context, deps Deps, job Job, opts ...tea.ProgramOption) (domain.SplitReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(deps, cancel)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), opts...)

	hooks := Hooks{
		OnPartition: func(c domain.Counts) { p.Send(partitionedMsg{counts: c}) },
		OnItem:      func(s domain.Subset, _ domain.Item) { p.Send(itemCopiedMsg{subset: s}) },
	}

	done := make(chan jobDoneMsg, 1)
	go func() {
		rep, err := job(ctx, hooks)
		res := jobDoneMsg{report: rep, err: err}
		done <- res
		p.Send(res)
	}()

	final, err := runProgram(p)
	if err != nil {
		// The job only checks ctx between files; wait so no write is left in flight.
		cancel()
		<-done
		return domain.SplitReport{}, fmt.Errorf("tui: %w", err)
	}
	sm, ok := final.(safeModel)
	if !ok {
		return domain.SplitReport{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	fm := sm.m
	if deps.Logger != nil && fm.result.err != nil {
		deps.Logger.Error("tui.job_failed", "error", fm.result.err)
	}
	return fm.result.report, fm.result.err
}

func newModel(deps Deps, cancel context.CancelFunc) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	title := deps.Title
	if title == "" {
		title = "datasplit"
	}
	deps.Title = title

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		phase:   phasePlanning,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		counts:  map[domain.Subset]int{},
		cancel:  cancel,
	}
}

func (m model) Init() tea.Cmd { return m.spinner.Tick }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancel != nil {
				m.cancel()
			}
			// Keep running until the job reports back so the caller gets its error.
			return m, nil
		}
		return m, nil

	case partitionedMsg:
		m.total = msg.counts.Total
		m.phase = phaseCopying
		return m, nil

	case itemCopiedMsg:
		m.done++
		m.counts[msg.subset]++
		return m, nil

	case jobDoneMsg:
		m.result = msg
		m.phase = phaseDone
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		if bar, ok := pm.(progress.Model); ok {
			m.bar = bar
		}
		return m, cmd
	}

	return m, nil
}

func (m model) percent() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.deps.Title))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePlanning:
		b.WriteString(m.spinner.View())
		b.WriteString(" discovering and partitioning images...\n")

	case phaseCopying:
		b.WriteString(m.bar.ViewAs(m.percent()))
		b.WriteString(fmt.Sprintf("\n%d/%d copied", m.done, m.total))
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("  train %d  validation %d  test %d",
			m.counts[domain.SubsetTrain], m.counts[domain.SubsetValidation], m.counts[domain.SubsetTest])))
		b.WriteString("\n")

	case phaseDone:
		if m.result.err != nil {
			b.WriteString(m.theme.Error.Render("failed: " + m.result.err.Error()))
		} else {
			c := m.result.report.Counts
			b.WriteString(m.theme.Card.Render(fmt.Sprintf("Total images: %d\nTrain: %d, Val: %d, Test: %d",
				c.Total, c.Train, c.Val, c.Test)))
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(m.theme.Error.Render(m.notice))
		b.WriteString("\n")
	}
	if m.phase != phaseDone {
		b.WriteString(m.theme.Help.Render("\nctrl+c: cancel"))
		b.WriteString("\n")
	}
	return b.String()
}
