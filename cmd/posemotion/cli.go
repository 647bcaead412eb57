package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	posemotion "github.com/swdee/go-posemotion"
	"github.com/swdee/go-posemotion/dataset"
	"github.com/swdee/go-posemotion/pose"
	"github.com/swdee/go-posemotion/window"
)

// newApp creates the CLI application with all commands
func newApp() *cli.App {
	return &cli.App{
		Name:  "posemotion",
		Usage: "Build motion descriptor datasets from pose frame files",
		Commands: []*cli.Command{
			extractCmd(),
			listCmd(),
		},
	}
}

// configFlags are the descriptor configuration flags shared by commands
// that build vectors
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "joints", Value: pose.LayoutJoints,
			Usage: "Number of joints per pose frame"},
		&cli.StringFlag{Name: "exclude", Value: "0,1,2,3,4,13,14,15,16",
			Usage: "Comma separated joint indexes to exclude"},
		&cli.IntFlag{Name: "reference", Value: pose.Neck,
			Usage: "Reference joint index for body velocity"},
		&cli.IntFlag{Name: "repeats", Value: 10,
			Usage: "Times the body velocity is repeated in the vector"},
	}
}

// configFromFlags builds and validates the descriptor configuration from
// the CLI flags
func configFromFlags(c *cli.Context) (posemotion.Config, error) {

	var excluded []int

	for _, field := range strings.Split(c.String("exclude"), ",") {
		field = strings.TrimSpace(field)

		if field == "" {
			continue
		}

		j, err := strconv.Atoi(field)

		if err != nil {
			return posemotion.Config{}, fmt.Errorf("invalid exclude index %q", field)
		}

		excluded = append(excluded, j)
	}

	cfg := posemotion.Config{
		JointCount:      c.Int("joints"),
		ExcludedJoints:  excluded,
		ReferenceJoint:  c.Int("reference"),
		VelocityRepeats: c.Int("repeats"),
	}

	return cfg, cfg.Validate()
}

// extractCmd creates the extract command
func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract labeled descriptor records from pose frame files",
		ArgsUsage: "FILE...",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "label", Aliases: []string{"l"}, Required: true,
				Usage: "Class label written with each record"},
			&cli.IntFlag{Name: "window", Aliases: []string{"w"}, Value: 5,
				Usage: "Number of consecutive frames per descriptor"},
			&cli.IntFlag{Name: "stride", Value: 1,
				Usage: "Frames to advance between windows"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "motion.tsv",
				Usage: "Output dataset file"},
			&cli.StringFlag{Name: "db",
				Usage: "Write records to an SQLite store instead of a file"},
		}, configFlags()...),
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {

	if c.NArg() == 0 {
		return fmt.Errorf("no input files given")
	}

	cfg, err := configFromFlags(c)

	if err != nil {
		return err
	}

	windowSize := c.Int("window")
	stride := c.Int("stride")

	if windowSize < 1 || stride < 1 {
		return fmt.Errorf("window and stride must be positive")
	}

	// set up the record sink, either an SQLite store or a dataset file
	var put func(label string, vector []float64) error

	if dbPath := c.String("db"); dbPath != "" {
		store, err := dataset.OpenStore(dbPath)

		if err != nil {
			return err
		}

		defer store.Close()

		put = func(label string, vector []float64) error {
			_, err := store.Put(label, vector)
			return err
		}

	} else {
		w, err := dataset.NewFileWriter(c.String("out"))

		if err != nil {
			return err
		}

		defer w.Close()

		put = w.Append
	}

	label := c.String("label")
	col := window.NewCollector(windowSize)
	total := 0

	for _, path := range c.Args().Slice() {
		frames, err := pose.LoadFrames(path, cfg.JointCount)

		if err != nil {
			return err
		}

		// windows never span input files
		col.Reset()
		count := 0

		for i, frame := range frames {
			col.Push(0, frame)

			if !col.Full(0) || (i+1-windowSize)%stride != 0 {
				continue
			}

			desc, err := posemotion.NewDescriptor(col.Frames(0), cfg)

			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if err := put(label, desc.Vector()); err != nil {
				return err
			}

			count++
		}

		log.Printf("%s: %d frames, %d records", path, len(frames), count)
		total += count
	}

	log.Printf("wrote %d records", total)

	return nil
}

// listCmd creates the list command
func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the records in a dataset file or SQLite store",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db",
				Usage: "Read records from an SQLite store instead of a file"},
		},
		Action: runList,
	}
}

func runList(c *cli.Context) error {

	records, err := listRecords(c)

	if err != nil {
		return err
	}

	for i, rec := range records {
		fmt.Printf("%4d  %-16s %d\n", i+1, rec.Label, len(rec.Vector))
	}

	return nil
}

// listRecords loads records from the selected source
func listRecords(c *cli.Context) ([]dataset.Record, error) {

	if dbPath := c.String("db"); dbPath != "" {
		store, err := dataset.OpenStore(dbPath)

		if err != nil {
			return nil, err
		}

		defer store.Close()

		return store.List()
	}

	if c.NArg() != 1 {
		return nil, fmt.Errorf("a dataset file argument is required")
	}

	return dataset.ReadFile(c.Args().First())
}
