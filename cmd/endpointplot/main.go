// endpointplot reduces grouped time-series intensity measurements to their
// final recorded timepoint, compares the two groups with a Mann-Whitney U
// test, and renders a bar-and-scatter figure with a significance annotation.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"endpointplot/compare"
	_ "endpointplot/compileinfoprint"
	"endpointplot/endpoint"
	"endpointplot/figure"
)

func main() {
	var input, output, timecourse string

	flag.StringVar(&input, "input", "in_vivo_gRNA14_gRNA7.csv", "CSV with 'file', 'group', and one or more time_<N> columns.")
	flag.StringVar(&output, "output", "", "Output PNG path. Defaults to the input name with a .png extension.")
	flag.StringVar(&timecourse, "timecourse", "", "Optional PNG path for a companion line chart of group means over all timepoints.")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}

	if err := run(input, output, timecourse); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(input, output, timecourse string) error {
	samples, lastCol, err := endpoint.Load(input)
	if err != nil {
		return err
	}

	log.Printf("Loaded %d samples from %s; last timepoint column is %s", len(samples), input, lastCol)

	groups, err := compare.Summarize(samples)
	if err != nil {
		return err
	}

	res, err := compare.Run(groups)
	if err != nil {
		return err
	}

	compare.Report(os.Stdout, groups, res)

	star := ""
	if res != nil {
		star = compare.StarCode(res.P)
	}

	img, err := figure.Render(groups, lastCol, star, figure.DefaultStyle())
	if err != nil {
		return err
	}

	if err := figure.SavePNG(output, img); err != nil {
		return err
	}
	log.Println("Wrote", output)

	if timecourse == "" {
		return nil
	}

	series, err := endpoint.LoadSeries(input)
	if err != nil {
		return err
	}

	if err := figure.RenderTimecourse(series, figure.DefaultStyle(), timecourse); err != nil {
		return err
	}
	log.Println("Wrote", timecourse)

	return nil
}
