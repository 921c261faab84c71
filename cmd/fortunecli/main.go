package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nnikolov/fortune2d"
	"github.com/nnikolov/fortune2d/options"
)

func main() {
	cmd := &cli.Command{
		Name:      "fortunecli",
		Usage:     "Computes a planar Voronoi diagram for a set of sites and prints it as JSON",
		UsageText: "fortunecli --site x,y [--site x,y ...] --clip x1,y1,x2,y2",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "site",
				Usage:    "a site, as \"x,y\"; repeat for each site",
				Aliases:  []string{"s"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "clip",
				Usage:    "the clip rectangle, as \"x1,y1,x2,y2\" (opposite corners)",
				OnlyOnce: true,
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "tolerance used for floating-point comparisons",
				Value:    fortune2d.DefaultEpsilon,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "max-steps",
				Usage:    "stop after this many sweep steps; -1 runs to completion",
				Value:    -1,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func parsePoint(s string) (fortune2d.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fortune2d.Point{}, fmt.Errorf("%q: want \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fortune2d.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fortune2d.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	return fortune2d.NewPoint(x, y), nil
}

func parseClip(s string) (fortune2d.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fortune2d.Rectangle{}, fmt.Errorf("%q: want \"x1,y1,x2,y2\"", s)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fortune2d.Rectangle{}, fmt.Errorf("%q: %w", s, err)
		}
		vals[i] = v
	}
	x1, y1, x2, y2 := vals[0], vals[1], vals[2], vals[3]
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return fortune2d.NewRectangle(x1, y1, x2-x1, y2-y1), nil
}

type cellOutput struct {
	Site     fortune2d.Point  `json:"site"`
	Boundary []fortune2d.Point `json:"boundary"`
}

type diagramOutput struct {
	Complete bool         `json:"complete"`
	Cells    []cellOutput `json:"cells"`
	Vertices []fortune2d.Point `json:"vertices"`
}

func app(_ context.Context, cmd *cli.Command) error {
	rawSites := cmd.StringSlice("site")
	sites := make([]fortune2d.Point, 0, len(rawSites))
	for _, raw := range rawSites {
		p, err := parsePoint(raw)
		if err != nil {
			return fmt.Errorf("site: %w", err)
		}
		sites = append(sites, p)
	}

	clip, err := parseClip(cmd.String("clip"))
	if err != nil {
		return fmt.Errorf("clip: %w", err)
	}

	diagram := fortune2d.NewDiagram()
	complete := fortune2d.Compute(sites, diagram, clip, int(cmd.Int("max-steps")), options.WithEpsilon(cmd.Float("epsilon")))

	out := diagramOutput{
		Complete: complete,
		Vertices: diagram.Vertices(),
	}
	for _, cell := range diagram.Cells() {
		out.Cells = append(out.Cells, cellOutput{
			Site:     cell.Site,
			Boundary: cell.HullVerticesCCW(),
		})
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
