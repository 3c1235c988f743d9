package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/peacock/pkg/config"
	"github.com/dd0wney/peacock/pkg/layout"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
)

var version = "0.3.0"

// session is the state shared by every subcommand.
type session struct {
	configPath string
	graphPath  string

	cfg    config.Config
	logger logging.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:           "nodeedit",
		Short:         "Edit node graphs in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s.closer != nil {
				return s.closer.Close()
			}
			return nil
		},
	}
	root.SetVersionTemplate("nodeedit {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVarP(&s.graphPath, "graph", "g", "", "graph file in the node text format (default: built-in library)")

	root.AddCommand(
		runCmd(s),
		exportCmd(s),
	)
	return root
}

// load reads the config and opens the log file.
func (s *session) load() error {
	s.cfg = config.Default()
	if s.configPath != "" {
		cfg, err := config.Load(s.configPath)
		if err != nil {
			return err
		}
		s.cfg = cfg
	}
	logger, closer, err := logging.OpenFile(s.cfg.Log.File, s.cfg.LogLevel())
	if err != nil {
		return err
	}
	s.logger = logger.With(logging.Component("nodeedit"))
	s.closer = closer
	return nil
}

// graph parses the graph file, or the built-in library when none is given.
func (s *session) graph() (model.Graph, error) {
	text := model.Library
	if s.graphPath != "" {
		data, err := os.ReadFile(s.graphPath)
		if err != nil {
			return model.Graph{}, fmt.Errorf("read graph: %w", err)
		}
		text = string(data)
	}
	g, err := model.ParseGraph(text, s.cfg.Placement())
	if err != nil {
		return model.Graph{}, err
	}
	arrange, err := s.cfg.Arrangement()
	if err != nil {
		return model.Graph{}, err
	}
	g = layout.Apply(g, arrange)
	s.logger.Info("graph loaded",
		logging.Path(s.graphPath),
		logging.String("layout", s.cfg.Layout.Arrange),
		logging.Int("nodes", len(g.Nodes)),
		logging.Int("connections", len(g.Connections)))
	return g, nil
}
