package img2oc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// luaEscaper escapes the two characters a double-quoted Lua string cannot
// hold raw. Everything else, glyphs included, is written as UTF-8.
var luaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func luaString(s string) string {
	return `"` + luaEscaper.Replace(s) + `"`
}

// luaColorTable formats rows of packed colors as a nested Lua table with
// decimal literals, one row per line.
func luaColorTable(rows [][]uint32) string {
	parts := make([]string, len(rows))
	var sb strings.Builder
	for y, row := range rows {
		sb.Reset()
		sb.WriteString("    {")
		for x, v := range row {
			if x > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		sb.WriteByte('}')
		parts[y] = sb.String()
	}
	return "{\n" + strings.Join(parts, ",\n") + "\n}"
}

// sceneTable returns the frame as a Lua table constructor:
//
//	{
//	  w = 2,
//	  h = 1,
//	  chars = {
//	  "⠉⠀"
//	  },
//	  fg = {
//	    {16777215, 0}
//	},
//	  bg = {
//	    {0, 0}
//	}
//	}
func sceneTable(f *Frame) (string, error) {
	if f.Width == 0 || f.Height == 0 {
		return "", ErrEmptyFrame
	}

	chars := f.Chars()
	quoted := make([]string, len(chars))
	for i, line := range chars {
		quoted[i] = luaString(line)
	}

	lines := []string{
		"{",
		fmt.Sprintf("  w = %d,", utf8.RuneCountInString(chars[0])),
		fmt.Sprintf("  h = %d,", len(chars)),
		"  chars = {",
		"  " + strings.Join(quoted, ",\n  "),
		"  },",
		"  fg = " + luaColorTable(f.Foreground()) + ",",
		"  bg = " + luaColorTable(f.Background()),
		"}",
	}
	return strings.Join(lines, "\n"), nil
}

// SceneString returns the scene descriptor for f: a Lua chunk that returns
// a table with the grid size, one string of glyphs per row and the packed
// foreground and background colors of every cell. There is no trailing
// newline.
func SceneString(f *Frame) (string, error) {
	table, err := sceneTable(f)
	if err != nil {
		return "", err
	}
	return "return " + table, nil
}

// EncodeScene writes the scene descriptor for f to w.
func EncodeScene(w io.Writer, f *Frame) error {
	scene, err := SceneString(f)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, scene)
	return err
}

// WriteText writes the glyph rows of f, each terminated by a newline.
func WriteText(w io.Writer, f *Frame) error {
	for _, line := range f.Chars() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
