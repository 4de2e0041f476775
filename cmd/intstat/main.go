package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	ints "github.com/variantkit/go-ints"

	"github.com/urfave/cli/v2"
)

func readValues(c *cli.Context) ([]int, error) {
	var reader io.Reader
	if c.IsSet("input") {
		f, err := os.Open(c.String("input"))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	var values []int
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", scanner.Text(), err)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative value: %d", v)
		}
		values = append(values, v)
	}
	return values, scanner.Err()
}

// storageBytes estimates the backing storage for the chosen variant.
func storageBytes(ia ints.IntArray, valueSize int) int {
	n := ia.Size()
	switch ia.(type) {
	case *ints.PackedIntArray:
		bits := 4
		if valueSize <= 2 {
			bits = 1
		} else if valueSize <= 4 {
			bits = 2
		}
		return (n*bits + 7) / 8
	case *ints.Uint8Array:
		return n
	case *ints.Uint16Array:
		return 2 * n
	default:
		return 4 * n
	}
}

func main() {
	app := &cli.App{
		Name:  "intstat",
		Usage: "inspect compact integer-sequence encodings",
		Commands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "encode a list of non-negative integers and describe the chosen representation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "disable the sub-byte packed tier (1/2/4 bytes per value only)",
					},
				},
				Action: func(c *cli.Context) error {
					values, err := readValues(c)
					if err != nil {
						return fmt.Errorf("encode: %w", err)
					}
					if len(values) == 0 {
						return fmt.Errorf("encode: no values read")
					}
					valueSize := ints.ValueSizeOf(values)
					var ia ints.IntArray
					if c.Bool("plain") {
						ia = ints.New(values, valueSize)
					} else {
						ia = ints.NewPacked(values, valueSize)
					}
					bytes := storageBytes(ia, valueSize)
					fmt.Printf("%d values, value size %d\n", ia.Size(), valueSize)
					fmt.Printf("representation %T\n", ia)
					fmt.Printf("storage %d bytes (%.3f bytes/value, raw ints %d bytes)\n",
						bytes, float64(bytes)/float64(ia.Size()), 8*ia.Size())
					fmt.Printf("min %d max %d\n", ints.Min(ia), ints.Max(ia))
					return nil
				},
			},
			{
				Name:  "dedup",
				Usage: "remap values onto a dense index space in first-seen order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
					&cli.BoolFlag{
						Name:    "mapping",
						Aliases: []string{"m"},
						Usage:   "print the value->index mapping instead of the remapped stream",
					},
				},
				Action: func(c *cli.Context) error {
					values, err := readValues(c)
					if err != nil {
						return fmt.Errorf("dedup: %w", err)
					}
					capacity := len(values)
					if capacity < 1 {
						capacity = 1
					}
					index := ints.NewIntIntMap(capacity)
					remapped := make([]int, len(values))
					for j, v := range values {
						i := index.Get(v, -1)
						if i == -1 {
							i = index.Size()
							index.Put(v, i)
						}
						remapped[j] = i
					}
					w := bufio.NewWriter(os.Stdout)
					defer w.Flush()
					if c.Bool("mapping") {
						for j := 0; j < index.Size(); j++ {
							k := index.Key(j)
							fmt.Fprintf(w, "%d -> %d\n", k, index.Get(k, -1))
						}
					} else {
						for _, i := range remapped {
							fmt.Fprintln(w, i)
						}
					}
					fmt.Fprintf(os.Stderr, "%d values, %d distinct\n", len(values), index.Size())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
