package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/smasonuk/swordforge"
)

func main() {
	var (
		outDir      = flag.String("out", "out", "output directory for exported files")
		formats     = flag.String("formats", "obj", "comma separated export formats: obj, ply, dxf")
		preview     = flag.Bool("preview", false, "render a lineup preview image (webp)")
		size        = flag.Int("size", 1024, "preview image size in pixels")
		supersample = flag.Int("supersample", 2, "preview supersampling factor")
		stylesPath  = flag.String("styles", "", "TOML file with extra sword styles")
		appendOnly  = flag.Bool("append", false, "with -styles, add to the built-in catalog instead of replacing it")
		weatherSeed = flag.Int64("weather", 0, "apply a weathering pass with this noise seed (0 disables)")
		weatherAmt  = flag.Float64("weather-amount", 0.02, "weathering displacement amount")
		view        = flag.Bool("view", false, "open the interactive viewer after generating")
		profileMode = flag.String("profile", "", "write a profile: cpu or mem")
	)
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	styles := swordforge.Catalog()
	if *stylesPath != "" {
		extra, err := swordforge.LoadStyles(*stylesPath)
		if err != nil {
			log.Fatal(err)
		}
		if *appendOnly {
			styles = append(styles, extra...)
		} else {
			styles = extra
		}
	}

	scene := swordforge.NewScene()
	count, err := swordforge.Generate(scene, styles)
	if err != nil {
		log.Fatal(err)
	}

	if *weatherSeed != 0 {
		for _, sw := range scene.Swords() {
			swordforge.Weather(sw, *weatherSeed, *weatherAmt)
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, format := range strings.Split(*formats, ",") {
		switch strings.TrimSpace(format) {
		case "obj":
			path := filepath.Join(*outDir, "swords.obj")
			if err := swordforge.SaveOBJ(path, scene); err != nil {
				log.Fatal(err)
			}
		case "ply":
			for _, sw := range scene.Swords() {
				path := filepath.Join(*outDir, sw.Name+".ply")
				if err := swordforge.SavePLY(path, sw); err != nil {
					log.Fatal(err)
				}
			}
		case "dxf":
			for _, sw := range scene.Swords() {
				path := filepath.Join(*outDir, sw.Name+".dxf")
				if err := swordforge.SaveDXF(path, sw); err != nil {
					log.Fatal(err)
				}
			}
		case "":
		default:
			log.Fatalf("unknown export format %q", format)
		}
	}

	if *preview {
		path := filepath.Join(*outDir, "lineup.webp")
		if err := swordforge.SavePreviewWebP(path, scene, *size, *supersample); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Generated %d unique low-poly swords.\n", count)

	if *view {
		if err := swordforge.RunViewer(scene, 1280, 720); err != nil {
			log.Fatal(err)
		}
	}
}
