package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/ui"
)

// exportMargin is added around the nodes when no size is given.
const exportMargin = 40

func exportCmd(s *session) *cobra.Command {
	var (
		out           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the graph as SVG",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			timer := logging.StartTimer(s.logger, "export", logging.Path(out))
			defer func() {
				if err != nil {
					timer.EndError(err)
					return
				}
				timer.End()
			}()

			g, err := s.graph()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, finish, ferr := openOutput(out)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if ferr := finish(); ferr != nil && err == nil {
						err = ferr
					}
				}()
				w = f
			}
			return export(w, s, g, width, height)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default: fit the graph)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default: fit the graph)")
	return cmd
}

func export(w io.Writer, s *session, g model.Graph, width, height int) error {
	m := ui.NewManager(s.cfg.Factory(), ui.WithLogger(s.logger))
	if err := m.Rebuild(g); err != nil {
		return err
	}
	fw, fh := extent(g)
	if width <= 0 {
		width = fw
	}
	if height <= 0 {
		height = fh
	}
	doc := canvas.NewSVG(w, width, height)
	m.Draw(doc)
	doc.Close()
	return nil
}

// openOutput returns a buffered writer on path and a func that flushes and
// closes it.
func openOutput(path string) (io.Writer, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	finish := func() error {
		if err := w.Flush(); err != nil {
			return errors.Join(fmt.Errorf("write %s: %w", path, err), f.Close())
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		return nil
	}
	return w, finish, nil
}

// extent returns the size that fits every node plus a margin.
func extent(g model.Graph) (int, int) {
	var maxX, maxY float64
	for _, n := range g.Nodes {
		br := n.Rect.BottomRight()
		maxX, maxY = math.Max(maxX, br.X), math.Max(maxY, br.Y)
	}
	return int(math.Ceil(maxX)) + exportMargin, int(math.Ceil(maxY)) + exportMargin
}
