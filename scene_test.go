package img2oc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSceneStringSingleRow(t *testing.T) {
	f := inkedFrame([][]uint8{{0x09, 0}})

	got, err := SceneString(f)
	if err != nil {
		t.Fatal(err)
	}
	want := "return {\n" +
		"  w = 2,\n" +
		"  h = 1,\n" +
		"  chars = {\n" +
		"  \"⠉⠀\"\n" +
		"  },\n" +
		"  fg = {\n" +
		"    {16777215, 0}\n" +
		"},\n" +
		"  bg = {\n" +
		"    {0, 0}\n" +
		"}\n" +
		"}"
	if got != want {
		t.Errorf("SceneString() =\n%s\nwant\n%s", got, want)
	}
}

func TestSceneStringRows(t *testing.T) {
	f := NewFrame(ModeHalfBlock, 1, 2)
	f.Cells[0][0] = CellResult{Glyph: '▀', FG: red, BG: Color{0, 128, 0}}
	f.Cells[1][0] = CellResult{Glyph: '▀', FG: Color{1, 2, 3}, BG: blue}

	got, err := SceneString(f)
	if err != nil {
		t.Fatal(err)
	}
	want := "return {\n" +
		"  w = 1,\n" +
		"  h = 2,\n" +
		"  chars = {\n" +
		"  \"▀\",\n" +
		"  \"▀\"\n" +
		"  },\n" +
		"  fg = {\n" +
		"    {16711680},\n" +
		"    {66051}\n" +
		"},\n" +
		"  bg = {\n" +
		"    {32768},\n" +
		"    {255}\n" +
		"}\n" +
		"}"
	if got != want {
		t.Errorf("SceneString() =\n%s\nwant\n%s", got, want)
	}
}

func TestSceneEscaping(t *testing.T) {
	f := NewFrame(ModeBraille, 3, 1)
	f.Cells[0] = []CellResult{{Glyph: '"'}, {Glyph: '\\'}, {Glyph: '⣿'}}

	got, err := SceneString(f)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "  \"\\\"\\\\⣿\"\n") {
		t.Errorf("chars row not escaped as expected:\n%s", got)
	}
	if !strings.Contains(got, "  w = 3,") {
		t.Errorf("w should count code points:\n%s", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("scene should not end with a newline")
	}
}

func TestSceneEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeScene(&buf, NewFrame(ModeBraille, 0, 0))
	if !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("expected ErrEmptyFrame, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an empty frame")
	}
}

func TestEncodeSceneMatchesSceneString(t *testing.T) {
	f := inkedFrame([][]uint8{{0x01, 0x02}, {0x04, 0x08}})
	var buf bytes.Buffer
	if err := EncodeScene(&buf, f); err != nil {
		t.Fatal(err)
	}
	want, _ := SceneString(f)
	if buf.String() != want {
		t.Error("EncodeScene and SceneString differ")
	}
}

func TestWriteText(t *testing.T) {
	f := inkedFrame([][]uint8{{0x09, 0}, {0, 0xFF}})
	var buf bytes.Buffer
	if err := WriteText(&buf, f); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "⠉⠀\n⠀⣿\n"; got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestEncodeMakepic(t *testing.T) {
	f := inkedFrame([][]uint8{{0x09, 0}})

	var buf bytes.Buffer
	if err := EncodeMakepic(&buf, f, "/home/it's.pic"); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	table, _ := sceneTable(f)
	for _, want := range []string{
		"local gpu = component.gpu\n",
		"local img = " + table + "\n",
		"gpu.setResolution(maxW, maxH)\n",
		"    gpu.setBackground(img.bg[y][x])\n",
		"shell.execute('pic save /home/it\\'s.pic')\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("makepic script missing %q", want)
		}
	}

	buf.Reset()
	if err := EncodeMakepic(&buf, f, ""); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "pic save") {
		t.Error("no save command expected without a path")
	}
}

func TestANSIString(t *testing.T) {
	f := NewFrame(ModeBraille, 3, 1)
	f.Cells[0] = []CellResult{
		{Glyph: '⠉', FG: white, BG: Black},
		{Glyph: '⣿', FG: white, BG: Black},
		{Glyph: '⠀', FG: red, BG: red},
	}

	want := "\x1b[38;2;255;255;255;48;2;0;0;0m⠉⣿" +
		"\x1b[38;2;255;0;0;48;2;255;0;0m⠀" +
		"\x1b[0m\n"
	if got := ANSIString(f); got != want {
		t.Errorf("ANSIString() = %q, want %q", got, want)
	}
}
