package img2oc

import (
	"io"
	"strings"
)

const makepicHeader = `-- generated: draw unicode image (fg/bg per cell)
local component = require('component')
local term = require('term')
local shell = require('shell')
local unicode = require('unicode')
local gpu = component.gpu

`

const makepicDraw = `

local maxW, maxH = gpu.maxResolution()
gpu.setResolution(maxW, maxH)
term.clear()

local sw, sh = gpu.getResolution()
local ox = math.floor((sw - img.w) / 2) + 1
local oy = math.floor((sh - img.h) / 2) + 1
if ox < 1 then ox = 1 end
if oy < 1 then oy = 1 end

for y = 1, img.h do
  local yy = oy + y - 1
  if yy > sh then break end
  local line = img.chars[y]
  local lw = unicode.len(line)
  for x = 1, lw do
    local xx = ox + x - 1
    if xx > sw then break end
    gpu.setBackground(img.bg[y][x])
    gpu.setForeground(img.fg[y][x])
    gpu.set(xx, yy, unicode.sub(line, x, x))
  end
end
`

var luaQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// EncodeMakepic writes an OpenOS Lua program that draws f centred on the
// screen at the GPU's maximum resolution. When picPath is not empty the
// program finishes by saving the screen with "pic save picPath".
func EncodeMakepic(w io.Writer, f *Frame, picPath string) error {
	table, err := sceneTable(f)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(makepicHeader)
	sb.WriteString("local img = ")
	sb.WriteString(table)
	sb.WriteString(makepicDraw)
	if picPath != "" {
		safe := luaQuoteEscaper.Replace(picPath)
		sb.WriteString("\nshell.execute('pic save " + safe + "')\n")
		sb.WriteString("print('Saved: " + safe + "')\n")
	}

	_, err = io.WriteString(w, sb.String())
	return err
}
