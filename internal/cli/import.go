package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtoledo/credtrack/internal/app"
	"github.com/mtoledo/credtrack/internal/domain"
	"github.com/mtoledo/credtrack/internal/store"
)

// importFile is the YAML document accepted by the import command.
type importFile struct {
	Lists []listDraft `yaml:"lists"`
}

// listDraft describes one task list to create.
type listDraft struct {
	Name  string      `yaml:"name"`
	Tasks []taskDraft `yaml:"tasks"`
}

// taskDraft describes one task to create. Missing fields keep the
// add-task defaults.
type taskDraft struct {
	Name        string   `yaml:"name"`
	BacklogURL  string   `yaml:"backlog_url"`
	SprintStart string   `yaml:"sprint_start"`
	SprintEnd   string   `yaml:"sprint_end"`
	Priority    string   `yaml:"priority"`
	Status      string   `yaml:"status"`
	Hours       *float64 `yaml:"hours"`
	Estimate    *float64 `yaml:"estimate"`
}

// patch converts the draft to a TaskPatch, validating enum fields.
func (d taskDraft) patch() (domain.TaskPatch, error) {
	var p domain.TaskPatch
	if d.Name != "" {
		name := d.Name
		p.Name = &name
	}
	if d.BacklogURL != "" {
		url := d.BacklogURL
		p.BacklogURL = &url
	}
	if d.SprintStart != "" {
		start := d.SprintStart
		p.SprintStart = &start
	}
	if d.SprintEnd != "" {
		end := d.SprintEnd
		p.SprintEnd = &end
	}
	if d.Priority != "" {
		prio, ok := domain.ParsePriority(d.Priority)
		if !ok {
			return p, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, d.Priority)
		}
		p.Priority = &prio
	}
	if d.Status != "" {
		status, ok := domain.ParseStatus(d.Status)
		if !ok {
			return p, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, d.Status)
		}
		p.Status = &status
	}
	p.Hours = d.Hours
	p.Estimate = d.Estimate
	return p, nil
}

// parseImport parses and validates the YAML document.
func parseImport(content []byte) (*importFile, error) {
	var doc importFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	for i, l := range doc.Lists {
		if l.Name == "" {
			return nil, fmt.Errorf("list %d: name is required", i+1)
		}
		for j, t := range l.Tasks {
			if _, err := t.patch(); err != nil {
				return nil, fmt.Errorf("list %q task %d: %w", l.Name, j+1, err)
			}
		}
	}
	return &doc, nil
}

// applyImport creates the drafted lists and tasks through the store's
// regular operations.
func applyImport(st *store.Store, doc *importFile) {
	for _, l := range doc.Lists {
		listID := st.AddList()
		st.RenameList(listID, l.Name)
		for _, t := range l.Tasks {
			taskID := st.AddTask(listID)
			patch, _ := t.patch() // validated by parseImport
			if !patch.IsZero() {
				st.UpdateTask(listID, taskID, patch)
			}
		}
	}
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Bulk-create lists and tasks from a YAML file",
		GroupID: groupStructure,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			doc, err := parseImport(content)
			if err != nil {
				return err
			}

			tasks := 0
			for _, l := range doc.Lists {
				tasks += len(l.Tasks)
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "would import %d lists, %d tasks\n", len(doc.Lists), tasks)
				return nil
			}

			applyImport(c.Store, doc)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d lists, %d tasks\n", len(doc.Lists), tasks)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without applying")
	return cmd
}
