package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"utilkit/internal/tui"
	"utilkit/pkg/sysexit"
	"utilkit/pkg/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Inspect a tree file",
}

var treePrintCmd = &cobra.Command{
	Use:   "print FILE",
	Short: "Render the tree as indented branch lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTree(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.Render(t))
		return nil
	},
}

var treeFlattenCmd = &cobra.Command{
	Use:   "flatten FILE",
	Short: "List node data in pre-order, one node per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTree(args[0])
		if err != nil {
			return err
		}
		for _, n := range t.Flatten() {
			data, ok := n.Data()
			if !ok {
				data = "<none>"
			}
			fmt.Fprintln(cmd.OutOrStdout(), data)
		}
		return nil
	},
}

var treeCountCmd = &cobra.Command{
	Use:   "count FILE",
	Short: "Print node and descendant counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTree(args[0])
		if err != nil {
			return err
		}
		descendants := t.Root().DescendantCount()
		fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d\ndescendants of root: %d\n",
			1+descendants, descendants)
		return nil
	},
}

var treeViewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse the tree interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTree(args[0])
		if err != nil {
			return err
		}
		logger.Debug("Starting tree viewer", zap.String("file", args[0]))
		model := tui.NewModel(filepath.Base(args[0]), t)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return sysexit.Wrap(sysexit.Software, fmt.Errorf("running viewer: %w", err))
		}
		return nil
	},
}

func init() {
	treeCmd.AddCommand(treePrintCmd)
	treeCmd.AddCommand(treeFlattenCmd)
	treeCmd.AddCommand(treeCountCmd)
	treeCmd.AddCommand(treeViewCmd)
}

// loadTree reads a YAML or JSON tree file into a string-labeled tree.
func loadTree(path string) (*tree.Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sysexit.Wrap(sysexit.NoInput, fmt.Errorf("reading %s: %w", path, err))
	}

	root := tree.New[string]()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, root)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, root)
	default:
		return nil, sysexit.Wrapf(sysexit.Usage, "unsupported tree file extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, sysexit.Wrap(sysexit.DataErr, fmt.Errorf("parsing %s: %w", path, err))
	}

	t, err := tree.NewTree(root)
	if err != nil {
		return nil, sysexit.Wrap(sysexit.DataErr, err)
	}
	if logger != nil {
		logger.Debug("Loaded tree",
			zap.String("file", path),
			zap.Int("nodes", 1+t.Root().DescendantCount()))
	}
	return t, nil
}
