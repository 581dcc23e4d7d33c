// Example plays a scripted settings screen against the recording toolkit
// and prints the calls made in every frame.
//
//	go run ./example/                        # play the bundled scenario
//	go run ./example/ -script my.yaml -v     # custom script, debug logging
//
// Each frame is drawn through sweet.Checked, so a begin without its end
// stops the run with a non-zero exit code.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-theft-auto/sweet"
	"github.com/go-theft-auto/sweet/enums"
	"github.com/go-theft-auto/sweet/sweettest"
)

//go:embed scenario.yaml
var scenario []byte

type quality int

const (
	qualityLow quality = iota
	qualityMedium
	qualityHigh
	qualityUltra
)

var qualities = enums.New(
	enums.E(qualityLow, "Low"),
	enums.E(qualityMedium, "Medium"),
	enums.E(qualityHigh, "High"),
	enums.E(qualityUltra, "Ultra"),
)

type windowMode uint8

const (
	windowed windowMode = iota
	borderless
	fullscreen
)

var windowModes = enums.New(
	enums.E(windowed, "Windowed"),
	enums.E(borderless, "Borderless"),
	enums.E(fullscreen, "Fullscreen"),
)

type hud uint32

const (
	hudNone    hud = 0
	hudMinimap hud = 1 << 0
	hudSpeed   hud = 1 << 1
	hudWanted  hud = 1 << 2
)

var hudFlags = enums.NewFlags(
	enums.E(hudNone, "None"),
	enums.E(hudMinimap, "Minimap"),
	enums.E(hudSpeed, "Speedometer"),
	enums.E(hudWanted, "Wanted level"),
)

type settings struct {
	quality quality
	mode    windowMode
	vsync   bool
	hud     hud
}

func main() {
	scriptPath := flag.String("script", "", "YAML script to play (defaults to the bundled scenario)")
	verbose := flag.Bool("v", false, "log every begin and end")
	flag.Parse()

	sweet.SetVerbose(*verbose)

	if err := run(*scriptPath, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scriptPath string, w io.Writer) error {
	var src io.Reader = bytes.NewReader(scenario)
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		src = f
	}

	script, err := sweettest.LoadScript(src)
	if err != nil {
		return err
	}

	rec := sweettest.New()
	tk := sweet.NewChecked(rec)
	s := settings{quality: qualityMedium, hud: hudMinimap | hudSpeed}

	for i, frame := range script.Frames {
		frame.Apply(rec)
		drawSettings(tk, &s)
		if err := tk.EndFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		fmt.Fprintf(w, "-- frame %d\n", i)
		for _, line := range rec.Trace() {
			fmt.Fprintln(w, line)
		}
	}

	mode, _ := windowModes.Name(s.mode)
	q, _ := qualities.Name(s.quality)
	fmt.Fprintf(w, "-- result: quality=%s mode=%s vsync=%t hud=%v\n", q, mode, s.vsync, hudFlags.Split(s.hud))
	return nil
}

func drawSettings(tk sweet.Toolkit, s *settings) {
	sweet.Window(tk, "Settings", nil, sweet.WindowFlagsAlwaysAutoResize).Do(func() {
		sweet.TabBar(tk, "tabs", 0).Do(func() {
			sweet.TabItem(tk, "Graphics", nil, 0).Do(func() {
				sweet.ItemWidth(tk, 160).Do(func() {
					if sweet.EnumCombo(tk, "Quality", "", &s.quality, qualities) {
						sweet.Text(tk, "quality changed")
					}
				})
				sweet.SetTooltip(tk, "%d presets", qualities.Count())
				sweet.EnumRadio(tk, "Display", &s.mode, windowModes)
				tk.Checkbox("VSync", &s.vsync)
			})
			sweet.TabItem(tk, "HUD", nil, 0).Do(func() {
				sweet.EnumCheckboxFlags(tk, "Elements", &s.hud, hudFlags)
				shown := hudFlags.Split(s.hud)
				sweet.Indent(tk, 8).Do(func() {
					sweet.TextDisabled(tk, "%d of %d shown", len(shown), hudFlags.Count()-1)
					for i, name := range shown {
						sweet.ChildFrame(tk, sweet.HashIDInt("hud", i), sweet.Vec2{Y: 20}, 0).Do(func() {
							tk.TextUnformatted(name)
						})
					}
				})
			})
		})
		if s.quality == qualityUltra {
			sweet.TextColored(tk, sweet.ColorVec4(sweet.ColorYellow), "Ultra may drop below %d fps", 60)
		}
	})
}
