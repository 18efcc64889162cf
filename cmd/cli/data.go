package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"executive-assistant/internal/app"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/project"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func projectsCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects of the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				projects := a.Projects.Snapshot().All()
				if query != "" {
					projects = a.Resolver.Lookup(query)
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"ID", "Name", "%", "Status", "Phase", "Open tasks"})
				for _, p := range projects {
					open := 0
					for _, t := range p.Tasks {
						if t.IsOpen() {
							open++
						}
					}
					tw.AppendRow(table.Row{p.ID, p.Name, fmt.Sprintf("%.0f", p.PercentComplete), p.Status, p.CurrentPhase(), open})
				}
				tw.AppendFooter(table.Row{"", "Total", "", "", "", len(projects)})
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by project name")
	return cmd
}

func notesCmd() *cobra.Command {
	var (
		projectName string
		limit       int
	)
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List or add manager notes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				opt := repository.ListOptions{Limit: limit}
				if projectName != "" {
					p, err := resolveOne(a.Resolver, projectName)
					if err != nil {
						return err
					}
					opt.ProjectID = p
				}

				notes, err := a.Notes.List(ctx, opt)
				if err != nil {
					return err
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"When", "Project", "Note"})
				for _, n := range notes {
					tw.AppendRow(table.Row{n.CreatedAt.Format("02/01/2006 15:04"), n.ProjectName, n.Text})
				}
				tw.Render()
				return nil
			})
		},
	}
	list.Flags().StringVarP(&projectName, "project", "p", "", "project name")
	list.Flags().IntVarP(&limit, "limit", "n", 20, "maximum notes")

	add := &cobra.Command{
		Use:   "add <project> <text>",
		Short: "Append a note to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				id, err := resolveOne(a.Resolver, args[0])
				if err != nil {
					return err
				}
				p, _ := a.Projects.Snapshot().Get(id)
				n, err := a.Notes.Append(ctx, repository.AppendOptions{
					ProjectID:   p.ID,
					ProjectName: p.Name,
					Text:        strings.Join(args[1:], " "),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Name, n)
				return nil
			})
		},
	}

	cmd.AddCommand(list, add)
	return cmd
}

// resolveOne returns the id of the single project matching name.
func resolveOne(r *project.Resolver, name string) (string, error) {
	matches := r.Lookup(name)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no project matches %q", name)
	case 1:
		return matches[0].ID, nil
	default:
		names := make([]string, len(matches))
		for i, p := range matches {
			names[i] = p.Name
		}
		fmt.Fprintln(os.Stderr, "candidates:", strings.Join(names, ", "))
		return "", fmt.Errorf("%q matches %d projects", name, len(matches))
	}
}

func toolsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools available to the action planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				schemas := a.Registry.SchemaTable().Schemas()
				if asJSON {
					out := make(map[string]any, len(schemas))
					for _, s := range schemas {
						out[s.Name] = s.JSONSchema()
					}
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(out)
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Tool", "Params", "Description"})
				for _, s := range schemas {
					names := make([]string, 0, len(s.Params))
					for _, p := range s.Params {
						names = append(names, p.Name)
					}
					tw.AppendRow(table.Row{s.Name, strings.Join(names, ", "), s.Description})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the JSON schemas")
	return cmd
}
