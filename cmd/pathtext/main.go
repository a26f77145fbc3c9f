// Command pathtext renders a text-on-a-curve scene to SVG and/or PNG.
//
// The scene file describes anchors, texts and styling in YAML:
//
//	width: 800
//	height: 600
//	background: mountains.jpg
//	font: NotoSansJP.ttf
//	fontSize: 28
//	text: 飛騨山脈
//	translations:
//	  en: Hida Mountains
//	source: primary
//	followCurve: true
//	showCurve: true
//	anchors:
//	  - {x: 100, y: 400}
//	  - {x: 300, y: 300}
//	  - {x: 500, y: 270}
//	  - {x: 700, y: 300}
//
// Usage:
//
//	pathtext -scene scene.yaml -svg out.svg
//	pathtext -scene scene.yaml -png out.png
//	pathtext -scene scene.yaml -png out.png -screenshot
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
	"github.com/JumpeiSaito99/svg-pathtext-trial/render"
	"github.com/JumpeiSaito99/svg-pathtext-trial/svg"

	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		scenePath  = flag.String("scene", "", "scene YAML file (required)")
		svgOut     = flag.String("svg", "", "write an SVG document to this path")
		pngOut     = flag.String("png", "", "write a PNG image to this path")
		screenshot = flag.Bool("screenshot", false, "produce the PNG by screenshotting the SVG in headless Chrome instead of rasterizing natively")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *svgOut == "" && *pngOut == "" {
		log.Fatal("nothing to do: pass -svg and/or -png")
	}
	if *verbose {
		pathtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := LoadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(scene, *svgOut, *pngOut, *screenshot); err != nil {
		log.Fatal(err)
	}
}

func run(scene *Scene, svgOut, pngOut string, screenshot bool) error {
	text, cfg, err := resolveText(scene)
	if err != nil {
		return err
	}

	curve := pathtext.BuildCurve(scene.anchors())
	rc := pathtext.Realize(curve)

	font, err := loadFont(scene)
	if err != nil {
		return err
	}

	var chars []pathtext.CharPlacement
	if scene.Proportional {
		chars = pathtext.PlaceProportional(rc, text, font.Advances(text, scene.FontSize), cfg.FollowCurve)
	} else {
		chars = pathtext.PlaceCharacters(rc, text, cfg.FollowCurve)
	}

	if svgOut != "" || screenshot {
		doc := buildDocument(scene)
		out := doc.Render(curve, chars)
		if svgOut != "" {
			if err := os.WriteFile(svgOut, []byte(out), 0o644); err != nil {
				return fmt.Errorf("failed to write SVG: %w", err)
			}
			fmt.Printf("wrote %s\n", svgOut)
		}
		if pngOut != "" && screenshot {
			buf, err := screenshotSVG(out, int(scene.Width), int(scene.Height))
			if err != nil {
				return err
			}
			if err := os.WriteFile(pngOut, buf, 0o644); err != nil {
				return fmt.Errorf("failed to write PNG: %w", err)
			}
			fmt.Printf("wrote %s\n", pngOut)
		}
	}

	if pngOut != "" && !screenshot {
		if err := rasterize(scene, font, rc, chars, pngOut); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngOut)
	}
	return nil
}

// resolveText picks the display string per the scene's source
// selector.
func resolveText(scene *Scene) (string, pathtext.DisplayConfig, error) {
	source, err := pathtext.ParseTextSource(scene.Source)
	if err != nil {
		return "", pathtext.DisplayConfig{}, err
	}
	cfg := pathtext.DisplayConfig{
		Source:      source,
		Custom:      scene.Custom,
		FollowCurve: scene.FollowCurve,
	}
	display := pathtext.Display{
		Primary:      scene.Text,
		Translations: scene.Translations,
	}

	var prefs []language.Tag
	if scene.Lang != "" {
		tag, err := language.Parse(scene.Lang)
		if err != nil {
			return "", cfg, fmt.Errorf("bad lang %q: %w", scene.Lang, err)
		}
		prefs = append(prefs, tag)
	}
	return display.Text(cfg, prefs...), cfg, nil
}

func loadFont(scene *Scene) (*render.Font, error) {
	if scene.Font == "" {
		return render.NewFont(goregular.TTF)
	}
	return render.LoadFont(scene.Font)
}

func buildDocument(scene *Scene) svg.Document {
	doc := svg.Document{
		Width:     scene.Width,
		Height:    scene.Height,
		ShowCurve: scene.ShowCurve,
		FontSize:  scene.FontSize,
	}
	if scene.Background != "" {
		uri, err := svg.EmbedImage(scene.Background)
		if err != nil {
			// Keep the reference as-is; the viewer may resolve it.
			pathtext.Logger().Warn("could not embed background, linking instead", "err", err)
			uri = scene.Background
		}
		doc.Background = uri
	}
	return doc
}

func rasterize(scene *Scene, font *render.Font, rc *pathtext.Realized, chars []pathtext.CharPlacement, out string) error {
	var background image.Image
	if scene.Background != "" {
		bg, err := render.LoadBackground(scene.Background)
		if err != nil {
			return err
		}
		background = bg
	}

	r := render.New(font, render.Options{
		Width:     int(scene.Width),
		Height:    int(scene.Height),
		ShowCurve: scene.ShowCurve,
		FontSize:  scene.FontSize,
	})
	img, err := r.Render(background, rc, chars)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create PNG: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
