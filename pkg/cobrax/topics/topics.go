// Package topics provides a topic-based help system for Cobra applications:
// arbitrary documentation files become `help <topic>` pages.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic represents one help topic.
type Topic struct {
	Name    string
	Format  string // file extension, used for render format detection
	Content string
}

// Manager holds the topics discovered in a documentation filesystem.
type Manager struct {
	topics       map[string]*Topic
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// Options configures the Manager.
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New scans docsFS for topic files.
func New(docsFS fs.FS, opts Options) (*Manager, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}

	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}

	err := fs.WalkDir(docsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		supported := false
		for _, validExt := range opts.Extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(docsFS, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[name]
	return topic, ok
}

// List returns all topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for the terminal.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Format)
}

// Initialize wires the topics into rootCmd: a `help [command or topic]`
// command replaces Cobra's default so topics and commands share one help
// entry point.
func Initialize(rootCmd *cobra.Command, docsFS fs.FS, opts Options) error {
	m, err := New(docsFS, opts)
	if err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				names := m.List()
				if len(names) == 0 {
					fmt.Println("No help topics available.")
					return
				}
				fmt.Println("Available help topics:")
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
				fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootCmd.Name())
				return
			}

			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(topic))
				return
			}

			// Not a topic, fall back to command help.
			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(topic))
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}
