package game

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// buildFontAtlas rasterizes printable ASCII into a grid of FontCellW x
// FontCellH cells, starting at FontFirst. The FontSolid cell is opaque.
func buildFontAtlas() *image.Alpha {
	atlas := image.NewAlpha(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: atlas, Src: image.Opaque, Face: face}
	for ch := FontFirst; ch < FontSolid; ch++ {
		x, y := fontCell(rune(ch))
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	x, y := fontCell(FontSolid)
	draw.Draw(atlas, image.Rect(x, y, x+FontCellW, y+FontCellH), image.Opaque, image.Point{}, draw.Src)
	return atlas
}

func fontCell(ch rune) (x, y int) {
	i := int(ch) - FontFirst
	return (i % FontCols) * FontCellW, (i / FontCols) * FontCellH
}

// InitFont builds the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return err
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, col RGB, a float32) {
	c := col.Vec()
	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		x0, y0, u0, v0, c[0], c[1], c[2], a,
		x1, y0, u1, v0, c[0], c[1], c[2], a,
		x0, y1, u0, v1, c[0], c[1], c[2], a,
		x1, y0, u1, v0, c[0], c[1], c[2], a,
		x1, y1, u1, v1, c[0], c[1], c[2], a,
		x0, y1, u0, v1, c[0], c[1], c[2], a,
	)
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch < FontFirst || ch >= FontSolid {
		return
	}
	x, y := fontCell(ch)
	u0 := float32(x) / FontAtlasW
	v0 := float32(y) / FontAtlasH
	u1 := float32(x+FontCellW) / FontAtlasW
	v1 := float32(y+FontCellH) / FontAtlasH
	r.quad(sx, sy, sx+FontCellW*scale, sy+FontCellH*scale, u0, v0, u1, v1, col, 1)
}

// DrawRect queues a solid rectangle using the atlas' opaque cell.
func (r *Renderer) DrawRect(x, y, w, h float32, col RGB, alpha float32) {
	cx, cy := fontCell(FontSolid)
	u := (float32(cx) + FontCellW*0.5) / FontAtlasW
	v := (float32(cy) + FontCellH*0.5) / FontAtlasH
	r.quad(x, y, x+w, y+h, u, v, u, v, col, alpha)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
