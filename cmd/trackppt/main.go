// Command trackppt writes a tracking-report presentation.
//
// Usage:
//
//	trackppt [-o out.pptx] [-png dir] [-seed n] [deck.yaml]
//
// Without a deck file a demo deck with random data is generated: a device
// timeline, a line chart and a pie chart. TRACKPPT_OUTPUT, TRACKPPT_PNG_DIR
// and TRACKPPT_FONT_DIRS (a path list) provide defaults and may be set in a
// .env file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/VantageDataChat/trackppt"
	"github.com/VantageDataChat/trackppt/internal/deck"
	"github.com/VantageDataChat/trackppt/internal/demodata"
)

const demoDevices = 10

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	} else {
		log.Println("[INFO] Loaded environment variables from .env file")
	}

	output := flag.String("o", envOr("TRACKPPT_OUTPUT", "trackppt.pptx"), "output .pptx path")
	pngDir := flag.String("png", os.Getenv("TRACKPPT_PNG_DIR"), "also render every slide as PNG into this directory")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the demo deck")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [deck.yaml]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var d *deck.Deck
	switch flag.NArg() {
	case 0:
		log.Printf("[INFO] No deck given, generating demo data with seed %d", *seed)
		d = demoDeck(*seed)
	case 1:
		var err error
		if d, err = deck.Load(flag.Arg(0)); err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		log.Printf("[INFO] Loaded %d slides from %s", len(d.Slides), flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}

	pres, err := d.Build()
	if err != nil {
		log.Fatalf("[ERROR] build presentation: %v", err)
	}
	if err := pres.Save(*output); err != nil {
		log.Fatalf("[ERROR] save %s: %v", *output, err)
	}
	log.Printf("[INFO] Wrote %d slides to %s", pres.GetSlideCount(), *output)

	if *pngDir == "" {
		return
	}
	opts := trackppt.DefaultRenderOptions()
	opts.FontDirs = filepath.SplitList(os.Getenv("TRACKPPT_FONT_DIRS"))
	pattern := filepath.Join(*pngDir, "slide%02d.png")
	if err := pres.SaveSlidesAsImages(pattern, opts); err != nil {
		log.Printf("[WARN] render previews: %v", err)
		return
	}
	log.Printf("[INFO] Rendered %d previews to %s", pres.GetSlideCount(), *pngDir)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// demoDeck builds a timeline, a line chart and a pie chart from random data.
// Pie slices are sorted largest first.
func demoDeck(seed int64) *deck.Deck {
	rng := demodata.NewRand(seed)

	timeline := deck.Slide{Kind: deck.KindGantt, Title: "设备跟踪时间线"}
	for _, iv := range demodata.TrackingDevices(rng, demoDevices) {
		timeline.Intervals = append(timeline.Intervals, deck.Interval{Category: iv.Category, Start: iv.Start, End: iv.End})
	}

	lines := deck.Slide{Kind: deck.KindLine, Title: "指标趋势"}
	for _, s := range demodata.Lines(rng) {
		lines.Series = append(lines.Series, deck.Series{Name: s.Name, Values: s.Values})
	}

	pie := deck.Slide{Kind: deck.KindPie, Title: "指标占比"}
	slices := demodata.PieSlices(rng)
	demodata.SortSlicesDescending(slices)
	for _, s := range slices {
		pie.Slices = append(pie.Slices, deck.Slice{Name: s.Name, Value: s.Value})
	}

	return &deck.Deck{
		Title:  "跟踪报告",
		Slides: []deck.Slide{timeline, lines, pie},
	}
}
