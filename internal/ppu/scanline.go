package ppu

import "sort"

// grayShades maps a 2-bit color index to a packed 0xAARRGGBB pixel. Index 0
// is the lightest shade, 3 the darkest, matching the four-shade DMG
// palette.
var grayShades = [4]uint32{
	0xFFFFFFFF,
	0xFFAAAAAA,
	0xFF555555,
	0xFF000000,
}

func applyPalette(palette uint8, index uint8) uint32 {
	shade := (palette >> (index * 2)) & 0x03
	return grayShades[shade]
}

type spriteEntry struct {
	y          int // screen-space row of the sprite's top edge; can be negative
	x          uint8
	tile, attr uint8
}

// renderScanline composes one 160-pixel row of the frame buffer: the
// background layer, the window layer where it covers the row, and up to
// ten sprites selected from OAM for this line.
func (p *PPU) renderScanline(ly uint8) {
	if ly >= ScreenHeight {
		return
	}

	lcdc := p.lcdc()
	bgEnabled := lcdc&0x01 != 0
	windowEnabled := lcdc&0x20 != 0
	spritesEnabled := lcdc&0x02 != 0

	bgp := p.bus.ReadByte(0xFF47)
	scy := p.bus.ReadByte(0xFF42)
	scx := p.bus.ReadByte(0xFF43)
	wy := p.bus.ReadByte(0xFF4A)
	wx := int(p.bus.ReadByte(0xFF4B)) - 7

	bgTileData := lcdc&0x10 != 0
	bgTileMap := uint16(0x9800)
	if lcdc&0x08 != 0 {
		bgTileMap = 0x9C00
	}
	winTileMap := uint16(0x9800)
	if lcdc&0x40 != 0 {
		winTileMap = 0x9C00
	}

	row := int(ly) * ScreenWidth
	bgIndex := [ScreenWidth]uint8{}

	windowActive := windowEnabled && int(ly) >= int(wy) && wx < ScreenWidth

	for x := 0; x < ScreenWidth; x++ {
		var colorIdx uint8

		if windowActive && x >= wx {
			wxPix := x - wx
			colorIdx = p.tilePixel(winTileMap, bgTileData, wxPix, p.windowLine)
		} else if bgEnabled {
			bgX := (int(scx) + x) & 0xFF
			bgY := (int(scy) + int(ly)) & 0xFF
			colorIdx = p.tilePixel(bgTileMap, bgTileData, bgX, bgY)
		}

		bgIndex[x] = colorIdx
		p.Framebuffer[row+x] = applyPalette(bgp, colorIdx)
	}

	if windowActive {
		p.windowLine++
	}

	if spritesEnabled {
		p.renderSprites(ly, bgIndex[:])
	}
}

// tilePixel resolves the 2-bit color index for the background/window pixel
// at (x, y) in the 256x256 tile-map space, given the selected tile map and
// tile data addressing mode (signed 0x8800 base vs unsigned 0x8000 base).
func (p *PPU) tilePixel(tileMap uint16, unsignedAddressing bool, x, y int) uint8 {
	tileCol := x / 8
	tileRow := y / 8
	mapAddr := tileMap + uint16(tileRow*32+tileCol)
	tileNum := p.bus.ReadByte(mapAddr)

	var tileAddr uint16
	if unsignedAddressing {
		tileAddr = 0x8000 + uint16(tileNum)*16
	} else {
		tileAddr = uint16(0x9000 + int(int8(tileNum))*16)
	}

	lineInTile := y % 8
	lo := p.bus.ReadByte(tileAddr + uint16(lineInTile)*2)
	hi := p.bus.ReadByte(tileAddr + uint16(lineInTile)*2 + 1)

	bit := 7 - (x % 8)
	lsb := (lo >> bit) & 1
	msb := (hi >> bit) & 1
	return msb<<1 | lsb
}

// renderSprites scans OAM for up to ten sprites intersecting this scanline,
// sorted by X coordinate (then OAM order) so the composite matches
// hardware priority, and blends them over the background row already
// written by renderScanline. bgIndex carries the background's color index
// per pixel so the transparent-background-over-sprite priority rule can be
// applied (an opaque OBJ.priority sprite still loses to a nonzero bg pixel).
func (p *PPU) renderSprites(ly uint8, bgIndex []uint8) {
	lcdc := p.lcdc()
	tall := lcdc&0x04 != 0
	height := 8
	if tall {
		height = 16
	}

	var candidates []spriteEntry
	for i := uint16(0); i < 40 && len(candidates) < 10; i++ {
		base := 0xFE00 + i*4
		// OAM Y is stored with a +16 offset so sprites can be scrolled in
		// from above the visible area; a Y byte below 16 must underflow to
		// a negative screen row rather than wrap as an unsigned byte.
		y := int(p.bus.ReadByte(base)) - 16
		x := p.bus.ReadByte(base + 1)
		tile := p.bus.ReadByte(base + 2)
		attr := p.bus.ReadByte(base + 3)

		if int(ly) < y || int(ly) >= y+height {
			continue
		}
		candidates = append(candidates, spriteEntry{y: y, x: x, tile: tile, attr: attr})
	}

	// DMG priority: lower X wins, OAM order breaks ties. SliceStable keeps
	// the OAM scan order for equal X so the tie-break falls out naturally.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].x < candidates[j].x
	})

	row := int(ly) * ScreenWidth

	for idx := len(candidates) - 1; idx >= 0; idx-- {
		s := candidates[idx]
		if s.x == 0 || s.x >= 168 {
			continue
		}

		yFlip := s.attr&0x40 != 0
		xFlip := s.attr&0x20 != 0
		behindBG := s.attr&0x80 != 0
		palette := p.bus.ReadByte(0xFF48)
		if s.attr&0x10 != 0 {
			palette = p.bus.ReadByte(0xFF49)
		}

		line := int(ly) - s.y
		if yFlip {
			line = height - 1 - line
		}

		tile := s.tile
		if tall {
			tile &^= 0x01
			if line >= 8 {
				tile |= 0x01
				line -= 8
			}
		}

		tileAddr := 0x8000 + uint16(tile)*16
		lo := p.bus.ReadByte(tileAddr + uint16(line)*2)
		hi := p.bus.ReadByte(tileAddr + uint16(line)*2 + 1)

		for col := 0; col < 8; col++ {
			screenX := int(s.x) - 8 + col
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}

			bit := col
			if !xFlip {
				bit = 7 - col
			}
			lsb := (lo >> bit) & 1
			msb := (hi >> bit) & 1
			colorIdx := msb<<1 | lsb
			if colorIdx == 0 {
				continue // sprite color 0 is always transparent
			}
			if behindBG && bgIndex[screenX] != 0 {
				continue
			}
			p.Framebuffer[row+screenX] = applyPalette(palette, colorIdx)
		}
	}
}
