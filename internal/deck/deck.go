package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Unit is one slide's extracted text: page number, slide title and the raw
// content lines. Produced by an external slide exporter; the pipeline never
// looks behind it.
type Unit struct {
	Page  int
	Title string
	Text  string
}

// Deck is an ordered set of slide images with their text units. Images and
// Units share page order; Units may be shorter when some slides carry no
// text sidecar.
type Deck struct {
	Title  string
	Units  []Unit
	Images []string
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// Load reads a deck directory: slide images in name order, each with an
// optional sidecar .txt of the same stem (first non-empty line is the slide
// title, the rest are content lines). The deck title is the directory name.
func Load(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deck dir: %w", err)
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			images = append(images, filepath.Join(dir, e.Name()))
		}
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no slide images in %s", dir)
	}
	sort.Strings(images)

	d := &Deck{
		Title:  filepath.Base(filepath.Clean(dir)),
		Images: images,
	}

	for i, img := range images {
		page := i + 1
		sidecar := strings.TrimSuffix(img, filepath.Ext(img)) + ".txt"
		data, err := os.ReadFile(sidecar)
		if err != nil {
			// Slide without text; the schedule drops it from narration.
			continue
		}
		title, text := splitSidecar(string(data))
		if title == "" && text == "" {
			continue
		}
		d.Units = append(d.Units, Unit{Page: page, Title: title, Text: text})
	}

	return d, nil
}

// splitSidecar separates the title line from the content body.
func splitSidecar(s string) (string, string) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	title := ""
	var body []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title == "" {
			title = line
			continue
		}
		body = append(body, line)
	}
	return title, strings.Join(body, "\n")
}
