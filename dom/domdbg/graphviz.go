package domdbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/minilayout/dom/style"
	"github.com/npillmayer/minilayout/layout"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a layout tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the layout tree, a Writer, and an optional list of style property groups.
// The diagram will include all declarations belonging to one of the
// property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *layout.Node, w io.Writer, styleGroups []string) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("layoutnode").Parse(layoutNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("layoutedge").Parse(layoutEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	tmpl := template.Must(template.New("layout").Parse(graphHeadTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*layout.Node]string, 64)
		if err := nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a layout node and a testing.T, it will
// create a Graphiviz image of the layout tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *layout.Node, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "layout.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing layout digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing layout tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N     *layout.Node
	Name  string
	Label string
}

func nodes(n *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType) error {
	if err := layoutNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := layoutEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *layout.Node, dict map[*layout.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func layoutNode(n *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	label := fmt.Sprintf("%s %s\n%v", n.BlockType().Symbol(),
		n.StyNode().Element().Type(), n.Box().Content)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name, label}); err != nil {
		return err
	}
	return styleGroups(n, w, dict, gparams)
}

// propertyGroup is a named set of declarations of a node.
type propertyGroup struct {
	Node       string
	Name       string
	Properties []style.Declaration
}

func (pg *propertyGroup) ID() string {
	return "pg" + pg.Node + strings.ToLower(pg.Name)
}

func styleGroups(n *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	var prev *propertyGroup
	for _, g := range gparams.StyleGroups {
		pg := &propertyGroup{Node: name, Name: g}
		for _, d := range n.StyNode().Declarations() {
			if d.Property.Group() == g {
				pg.Properties = append(pg.Properties, d)
			}
		}
		if len(pg.Properties) == 0 {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pg)
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 string
}

func layoutEdge(n1 *layout.Node, n2 *layout.Node, w io.Writer, dict map[*layout.Node]string,
	gparams *graphParamsType) error {
	//
	return gparams.EdgeTmpl.Execute(w, edge{dict[n1], dict[n2]})
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const layoutNodeTmpl = `{{ if .N.BlockType.IsBlock }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=grey95 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Property }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const layoutEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Node }} -> {{ .ID }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ (index . 0).ID }} -> {{ (index . 1).ID }} [dir=none weight=1 style="dashed"] ;
`
