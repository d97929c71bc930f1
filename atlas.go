package willowui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasRegion is a named sub-rectangle of an atlas page.
type AtlasRegion struct {
	Page          int
	X, Y          int
	Width, Height int
	// Rotated regions are stored 90 degrees clockwise; painters ignore
	// rotation and draw them as packed.
	Rotated bool
}

// Atlas holds the page images of a skin's TexturePacker sheet and its named
// regions. Provider.Region names index into it.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]AtlasRegion
	warned  map[string]bool
}

// Region returns the named region and whether it exists.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	if a == nil {
		return AtlasRegion{}, false
	}
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.regions)
}

// SubImage returns the image for the named region. Unknown names, and
// regions on pages that were not supplied, log a warning once and return a
// 1×1 magenta placeholder so a broken skin is visible rather than blank.
func (a *Atlas) SubImage(name string) *ebiten.Image {
	r, ok := a.Region(name)
	if ok && r.Page < len(a.Pages) && a.Pages[r.Page] != nil {
		rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		return a.Pages[r.Page].SubImage(rect).(*ebiten.Image)
	}
	if a != nil && !a.warned[name] {
		if a.warned == nil {
			a.warned = make(map[string]bool)
		}
		a.warned[name] = true
		log.Printf("willowui: atlas region %q not found, using magenta placeholder", name)
	}
	return ensureMagentaImage()
}

// magenta placeholder singleton (no sync.Once; painting is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Both the hash format (single "frames" object) and the array
// format ("textures" array with per-page frame lists) are accepted.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var shape struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &shape); err != nil {
		return nil, fmt.Errorf("willowui: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{Pages: pages, regions: make(map[string]AtlasRegion)}
	switch {
	case shape.Textures != nil:
		var textures []struct {
			Image  string                    `json:"image"`
			Frames map[string]atlasJSONFrame `json:"frames"`
		}
		if err := json.Unmarshal(shape.Textures, &textures); err != nil {
			return nil, fmt.Errorf("willowui: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			atlas.add(tex.Frames, i)
		}
	case shape.Frames != nil:
		var frames map[string]atlasJSONFrame
		if err := json.Unmarshal(shape.Frames, &frames); err != nil {
			return nil, fmt.Errorf("willowui: failed to parse atlas frames: %w", err)
		}
		atlas.add(frames, 0)
	default:
		return nil, fmt.Errorf("willowui: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type atlasJSONFrame struct {
	Frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

func (a *Atlas) add(frames map[string]atlasJSONFrame, page int) {
	for name, f := range frames {
		a.regions[name] = AtlasRegion{
			Page:    page,
			X:       f.Frame.X,
			Y:       f.Frame.Y,
			Width:   f.Frame.W,
			Height:  f.Frame.H,
			Rotated: f.Rotated,
		}
	}
}
