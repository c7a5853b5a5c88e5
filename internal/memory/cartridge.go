package memory

// MinCartridgeSize is the smallest accepted cartridge image: the flat,
// ROM-only 32 KiB case this core supports. MBC bank switching is left as
// an extension point, not implemented.
const MinCartridgeSize = 32 * 1024

// nintendoLogo is the reference bitmap stored at 0x0104-0x0133 in every
// licensed cartridge. It is read for diagnostic purposes only; a mismatch
// is logged as a warning, never rejected.
var nintendoLogo = [48]uint8{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// CartridgeHeader is the classification information read from bytes
// 0x0100-0x014F once the cartridge is mapped. It exists for diagnostics;
// the core never branches on cartridge type since MBC switching is out of
// scope.
type CartridgeHeader struct {
	Title          string
	CartridgeType  uint8
	ROMSizeCode    uint8
	RAMSizeCode    uint8
	LogoMatches    bool
	HeaderChecksum uint8
}

func readCartridgeHeader(rom []uint8) CartridgeHeader {
	h := CartridgeHeader{
		CartridgeType:  rom[0x0147],
		ROMSizeCode:    rom[0x0148],
		RAMSizeCode:    rom[0x0149],
		HeaderChecksum: rom[0x014D],
	}

	title := make([]byte, 0, 16)
	for i := 0x0134; i <= 0x0143; i++ {
		b := rom[i]
		if b == 0 {
			break
		}
		title = append(title, b)
	}
	h.Title = string(title)

	h.LogoMatches = true
	for i, want := range nintendoLogo {
		if rom[0x0104+i] != want {
			h.LogoMatches = false
			break
		}
	}

	return h
}
