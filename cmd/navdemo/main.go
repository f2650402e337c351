// Command navdemo is a small showcase for the navstack library: a
// multi-screen bubbletea program exercising push, targeted pops, sheet
// presentation and deferred navigation.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/navstack/navstack/internal/config"
	"github.com/navstack/navstack/internal/logging"
	"github.com/navstack/navstack/internal/version"
	"github.com/navstack/navstack/navigation"
	"github.com/navstack/navstack/view"
)

var rootCmd = &cobra.Command{
	Use:     "navdemo",
	Short:   "Interactive demo of the navstack navigation controller.",
	Version: version.String(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	config.Load()

	logger, err := logging.Init(logging.Config{
		Enabled:  config.GetBool("log_enabled", false),
		Level:    config.Get("log_level", "info"),
		Dir:      config.Get("log_dir", ""),
		MaxFiles: config.GetInt("log_max_files", 10),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Shutdown()

	// Late-bound send so the deferred-call scheduler can reach the
	// program created below.
	var program *tea.Program
	send := func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}

	nav := view.NewModel(
		[]navigation.ControllerOption{
			navigation.WithDefaultNavBar(config.GetBool("default_nav_bar", true)),
			navigation.WithScheduler(view.ProgramScheduler(send)),
			navigation.WithLogger(logger),
		},
		view.WithAnimation(
			config.GetBool("animation_enabled", true),
			config.GetInt("animation_fps", 60),
		),
	)
	nav.Controller().Push(homeScreen(), navigation.WithID("home"))

	program = tea.NewProgram(&demoModel{nav: nav}, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// demoModel wraps the navigation host with demo-specific key handling.
type demoModel struct {
	nav *view.Model
}

func (d *demoModel) Init() tea.Cmd {
	return d.nav.Init()
}

func (d *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		ctrl := d.nav.Controller()
		switch k.String() {
		case "1":
			ctrl.Push(detailScreen("First detail"), navigation.WithID("detail-1"))
			return d, nil
		case "2":
			ctrl.Push(detailScreen("Transient step"), navigation.WithRetained(false))
			return d, nil
		case "3":
			modal := ctrl.PresentSheet(sheetScreen("Settings"))
			if modal != nil {
				modal.Push(detailScreen("Inside the sheet"))
			}
			return d, nil
		case "4":
			ctrl.PushAfter(2*time.Second, detailScreen("Deferred arrival"))
			return d, nil
		case "0":
			ctrl.Dismiss(navigation.ToView("home"))
			return d, nil
		}
	}
	_, cmd := d.nav.Update(msg)
	return d, cmd
}

func (d *demoModel) View() string {
	footer := lipgloss.NewStyle().Faint(true).Render(
		"1 push · 2 transient · 3 sheet · 4 deferred · 0 home · esc back · q close sheet · ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left, d.nav.View(), footer)
}

// demoScreen is a minimal navigation.View with a title for the nav bar.
type demoScreen struct {
	title string
	body  string
}

func (s demoScreen) Render() string { return s.body }
func (s demoScreen) Title() string  { return s.title }

func homeScreen() navigation.View {
	return demoScreen{
		title: "Home",
		body:  "Welcome to navdemo.\nPush screens, open sheets, navigate back.",
	}
}

func detailScreen(text string) navigation.View {
	return demoScreen{title: "Detail", body: text}
}

func sheetScreen(text string) navigation.View {
	return demoScreen{title: text, body: "This sheet has its own back-stack."}
}
