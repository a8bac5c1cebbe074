package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wbrown/img2paint"
	"github.com/wbrown/img2paint/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "out.png",
		"Path to save the rendered output image")
	mode := flag.String("mode", "ascii",
		"Conversion mode: ascii or paint")
	maxWidth := flag.Int("maxwidth", 0,
		"Downscale the source to this width before converting (0 = keep)")
	seed := flag.Int64("seed", 0,
		"Seed for the stochastic paint layers (0 = time-seeded)")

	// ASCII mode options
	cols := flag.Int("cols", 100,
		"Target column count for ascii mode (min 20)")
	fontSize := flag.Int("fontsize", 12,
		"Glyph size in pixels for ascii mode (needs -font)")
	fontPath := flag.String("font", "",
		"Path to a TTF font for ascii mode (default: built-in bitmap face)")
	textFile := flag.String("text", "",
		"Also write the ascii glyph string to this path")

	// Paint mode options
	cellSize := flag.Int("cellsize", 8,
		"Sampling cell size in pixels for paint mode (min 2)")
	pixels := flag.Bool("pixels", true,
		"Enable the flat pixel-block layer")
	brush := flag.Bool("brush", true,
		"Enable the jittered brush-daub layer")
	impressionist := flag.Bool("impressionist", false,
		"Enable the sparse impressionist-dab layer")
	watercolor := flag.Bool("watercolor", false,
		"Enable the additive watercolor-wash layer")
	gallery := flag.Bool("gallery", false,
		"Enable the canvas texture overlay")
	brushStrength := flag.Float64("brushstrength", 0.6,
		"Brush daub opacity, 0 to 1")
	textureStrength := flag.Float64("texturestrength", 0.0,
		"Canvas texture weight, 0 to 1 (non-zero implies the overlay)")

	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	startLoad := time.Now()
	src, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	if *maxWidth > 0 && src.Width() > *maxWidth {
		src = imageutil.ResizeToWidth(src, *maxWidth, imageutil.InterpolationArea)
	}

	var opts []img2paint.ConverterOption
	if *seed != 0 {
		opts = append(opts, img2paint.WithSeed(*seed))
	}
	if *fontPath != "" {
		ttf, err := img2paint.LoadFont(*fontPath)
		if err != nil {
			fmt.Printf("Error loading font: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, img2paint.WithFont(ttf))
	}

	conv, err := img2paint.NewConverter(src.RGBA, opts...)
	if err != nil {
		fmt.Printf("Error creating converter: %v\n", err)
		os.Exit(1)
	}
	endLoad := time.Now()

	req := img2paint.Request{
		Mode: img2paint.Mode(*mode),
		Text: img2paint.TextOptions{
			FontSize: *fontSize,
			Columns:  *cols,
		},
		Paint: img2paint.PaintOptions{
			Pixels:          *pixels,
			Brush:           *brush,
			Impressionist:   *impressionist,
			Watercolor:      *watercolor,
			Gallery:         *gallery,
			CellSize:        *cellSize,
			BrushStrength:   *brushStrength,
			TextureStrength: *textureStrength,
		},
	}

	text, err := conv.Convert(req)
	if err != nil {
		fmt.Printf("Error converting image: %v\n", err)
		os.Exit(1)
	}
	endConvert := time.Now()

	if err := imageutil.SaveImage(conv.Output().RGBA, *outputFile); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output written to %s\n", *outputFile)

	if *textFile != "" && text != "" {
		if err := os.WriteFile(*textFile, []byte(text), 0644); err != nil {
			fmt.Printf("Error writing text output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Glyph text written to %s\n", *textFile)
	}

	fmt.Printf("Source size: %dx%d\n", src.Width(), src.Height())
	fmt.Printf("Load time: %v\n", endLoad.Sub(startLoad))
	fmt.Printf("Conversion time: %v\n", endConvert.Sub(endLoad))
	if text != "" {
		fmt.Printf("Glyph string length: %d\n", len(text))
	}
}
