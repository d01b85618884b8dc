package parameter

import "time"

// Display
const (
	// FrameRate is the default frames per second of the animation loop
	FrameRate = 60
	// CellWidth/CellHeight are the logical pixel size of one terminal cell
	CellWidth  = 8
	CellHeight = 16
	// BannerRows is the default banner height in rows, 0 uses the whole screen
	BannerRows = 12
	// MinBannerRows is the smallest non-zero banner height that fits a stage box and tooltip
	MinBannerRows = 6
	// TooltipMaxWidth caps tooltip width in cells
	TooltipMaxWidth = 44
)

// Pager
const (
	// ScrollFrequency/ScrollDamping tune the smooth scroll spring
	ScrollFrequency = 6.0
	ScrollDamping   = 1.0
	// ScrollSettle is the offset distance (rows) below which scroll snaps to target
	ScrollSettle = 0.05
)

// Audio
const (
	// PopToneBase is the pop tone frequency for link 0, each link steps a fifth up
	PopToneBase = 523.25
	// PopToneDuration is the total pop sound length
	PopToneDuration = 90 * time.Millisecond
	// PopToneAttack/PopToneRelease shape the pop envelope
	PopToneAttack  = 4 * time.Millisecond
	PopToneRelease = 70 * time.Millisecond
	// PopToneVolume is the beep effects.Volume level (base 2)
	PopToneVolume = -1.5
)
