package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
)

const snapshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .summary {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
        .floor { color: #888; }
        .wall { color: #1a1a2e; }
        .wall-edge { color: #666; }
        .obstacle { color: #ffff00; font-weight: bold; }
        .entry { color: #00ff00; font-weight: bold; }
        .legend { margin-top: 10px; color: #888; }
    </style>
`

// kindHTMLInfo returns the icon and CSS class for a placement kind
func kindHTMLInfo(k placement.Kind) (string, string) {
	switch k {
	case placement.KindFloor:
		return "·", "floor"
	case placement.KindWallEdge:
		return "▒", "wall-edge"
	case placement.KindObstacle:
		return "■", "obstacle"
	case placement.KindEntry:
		return "@", "entry"
	default:
		return " ", "wall"
	}
}

// WriteSnapshotHTML writes a self-contained HTML page showing the whole map
func WriteSnapshotHTML(w io.Writer, res *generator.Result) error {
	if res == nil || res.Grid == nil {
		return ErrNoGrid
	}

	var page strings.Builder

	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    <meta charset=\"UTF-8\">\n")
	page.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(messages.Get("APP_TITLE"))))
	page.WriteString(snapshotStyle)
	page.WriteString("</head>\n<body>\n")

	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(messages.Get("APP_TITLE"))))
	page.WriteString(fmt.Sprintf(`    <div class="summary">%s</div>`+"\n", html.EscapeString(Summary(res))))

	page.WriteString(`    <div class="map-container">` + "\n")
	surface := placement.Surface(placement.Commands(res), res.Grid.Width(), res.Grid.Height())
	for _, row := range surface {
		page.WriteString(`        <div class="map-row">`)
		for _, kind := range row {
			icon, class := kindHTMLInfo(kind)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`    <div class="legend">`)
	for i, kind := range placement.AllKinds() {
		if i > 0 {
			page.WriteString("  ")
		}
		icon, class := kindHTMLInfo(kind)
		page.WriteString(fmt.Sprintf(`<span class="%s">%s</span> %s`, class, icon, html.EscapeString(messages.Get(kind.String()))))
	}
	page.WriteString("</div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, page.String())
	return err
}

// SaveSnapshotHTML writes the snapshot to path, or to a timestamped file when
// path is empty, and returns the file name used.
func SaveSnapshotHTML(res *generator.Result, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("snapshot-%s.html", time.Now().Format("20060102-150405"))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteSnapshotHTML(f, res); err != nil {
		return path, err
	}
	return path, nil
}

// Summary returns the one-line, user-facing description of a result
func Summary(res *generator.Result) string {
	cfg := res.Config
	if res.IsEmpty() {
		return messages.Get("SUMMARY_EMPTY", res.Grid.Width(), res.Grid.Height(), cfg.MapSeed)
	}
	return messages.Get("SUMMARY", res.Grid.Width(), res.Grid.Height(), cfg.MapSeed, cfg.ObstacleSeed,
		len(res.FloorTiles), len(res.Obstacles), res.Requested)
}
