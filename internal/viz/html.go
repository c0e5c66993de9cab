package viz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout string // "chain", "circle", or "grid"
	Title  string
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Layout: "chain",
		Title:  "Reaction Conversion Path",
	}
}

// GenerateHTML generates a self-contained HTML page for the diagram.
func GenerateHTML(data *GraphData, opts HTMLOptions) (string, error) {
	if data == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}

	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}

	if data.IsEmpty() {
		return generateEmptyHTML(opts.Title), nil
	}

	graphJSON, err := data.ToCytoscapeJSON()
	if err != nil {
		return "", err
	}

	layoutJSON, err := json.Marshal(layoutOptions(opts.Layout, data))
	if err != nil {
		return "", fmt.Errorf("marshaling layout options: %w", err)
	}

	td := templateData{
		Title:      opts.Title,
		GraphJSON:  template.JS(graphJSON),
		LayoutJSON: template.JS(layoutJSON),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, td); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "chain", "circle", "grid":
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be chain, circle, or grid", layout)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	Title      string
	GraphJSON  template.JS
	LayoutJSON template.JS
}

// layoutOptions converts a layout name into Cytoscape.js layout options. A
// chain of path-only nodes is laid out on a single row in path order; a chain
// over the whole network is laid out breadth-first, rooted at the start
// compound when a path is highlighted.
func layoutOptions(layout string, data *GraphData) map[string]any {
	switch layout {
	case "circle":
		return map[string]any{"name": "circle"}
	case "grid":
		return map[string]any{"name": "grid"}
	}

	offPath, hasStart := false, false
	for _, n := range data.Nodes {
		if !n.OnPath {
			offPath = true
		}
		if n.Role == RoleStart {
			hasStart = true
		}
	}
	if !offPath {
		return map[string]any{"name": "grid", "rows": 1}
	}

	opts := map[string]any{
		"name":          "breadthfirst",
		"directed":      true,
		"spacingFactor": 1.2,
	}
	if hasStart {
		opts["roots"] = `node[role="start"]`
	}
	return opts
}

// generateEmptyHTML returns HTML for a search without a path.
func generateEmptyHTML(title string) string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>` + template.HTMLEscapeString(title) + `</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state {
      text-align: center;
      color: #666;
    }
    .empty-state h2 {
      margin-bottom: 0.5em;
      color: #333;
    }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No conversion path</h2>
    <p>There is nothing to draw for this search.</p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    h1 {
      font-size: 20px;
      color: #1f3b73;
      margin: 12px 16px;
    }
    #cy {
      width: 100%;
      height: calc(100vh - 52px);
      background: white;
    }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div id="cy"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const layout = {{.LayoutJSON}};

      cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          {
            selector: 'node',
            style: {
              'background-color': '#87CEEB',
              'label': 'data(label)',
              'color': '#1f3b73',
              'font-size': '12px',
              'text-valign': 'center',
              'text-halign': 'center',
              'width': '80px',
              'height': '80px'
            }
          },
          {
            selector: 'node[role="compound"]',
            style: {
              'background-color': '#dddddd',
              'color': '#777',
              'width': '50px',
              'height': '50px',
              'font-size': '10px'
            }
          },
          {
            selector: 'node[role="start"]',
            style: { 'border-width': 3, 'border-color': '#27AE60' }
          },
          {
            selector: 'node[role="end"]',
            style: { 'border-width': 3, 'border-color': '#E74C3C' }
          },
          {
            selector: 'edge',
            style: {
              'label': 'data(label)',
              'font-size': '10px',
              'color': '#1f3b73',
              'text-background-color': '#ffffff',
              'text-background-opacity': 1,
              'line-color': '#cccccc',
              'target-arrow-color': '#cccccc',
              'target-arrow-shape': 'triangle',
              'curve-style': 'bezier',
              'width': 1
            }
          },
          {
            selector: 'edge[?onPath]',
            style: {
              'line-color': '#555555',
              'target-arrow-color': '#555555',
              'width': 3
            }
          }
        ],
        layout: Object.assign({ animate: false }, layout)
      });
    })();
  </script>
</body>
</html>`
